package file

import "errors"

var (
	ErrMissingFile  = errors.New("missing file")
	ErrFileNotFound = errors.New("file not found")
)
