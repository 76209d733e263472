package file

import (
	"context"
	"fmt"
	"io"

	"fastfeet/internal/entities"
)

type File struct {
	repository Repository
	storage    Storage
}

func New(repository Repository, storage Storage) *File {
	return &File{
		repository: repository,
		storage:    storage,
	}
}

// StoreFile writes the blob to storage and records its metadata. The original
// file name is kept for display; storage picks its own object name.
func (s *File) StoreFile(ctx context.Context, name string, src io.Reader) (*entities.File, error) {
	if name == "" || src == nil {
		return nil, ErrMissingFile
	}

	stored, err := s.storage.Save(ctx, name, src)
	if err != nil {
		return nil, fmt.Errorf("save blob: %w", err)
	}

	created, err := s.repository.Create(ctx, name, stored.Path, stored.URL)
	if err != nil {
		return nil, fmt.Errorf("create file record: %w", err)
	}
	return created, nil
}

func (s *File) GetFile(ctx context.Context, id int64) (*entities.File, error) {
	fileEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	return fileEntity, nil
}
