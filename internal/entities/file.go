package entities

import "time"

// File is binary asset metadata (avatars, delivery signatures). Rows are
// immutable once created.
type File struct {
	ID        int64
	Name      string
	Path      string
	URL       string
	CreatedAt time.Time
}
