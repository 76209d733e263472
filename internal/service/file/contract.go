//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=file_test
package file

import (
	"context"
	"io"

	"fastfeet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, name, path, url string) (*entities.File, error)
	GetByID(ctx context.Context, id int64) (*entities.File, error)
}

// StoredObject locates a blob written by a Storage backend.
type StoredObject struct {
	Path string
	URL  string
}

type Storage interface {
	Save(ctx context.Context, name string, src io.Reader) (StoredObject, error)
}
