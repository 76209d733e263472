package file

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"fastfeet/internal/entities"
	"fastfeet/internal/repository"
	"fastfeet/internal/service/file"
)

const columns = "id, name, path, url, created_at"

type FileDB struct {
	ID        int64
	Name      string
	Path      string
	URL       string
	CreatedAt time.Time
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, name, path, url string) (*entities.File, error) {
	query := `INSERT INTO files (name, path, url)
		VALUES ($1, $2, $3)
		RETURNING ` + columns

	var fileModel FileDB
	err := r.querier.QueryRow(ctx, query, name, path, url).Scan(
		&fileModel.ID,
		&fileModel.Name,
		&fileModel.Path,
		&fileModel.URL,
		&fileModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected file repository create error: %w", err)
	}

	return ToDomain(&fileModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.File, error) {
	query := `SELECT ` + columns + `
		FROM files
		WHERE id = $1`

	var fileModel FileDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&fileModel.ID,
		&fileModel.Name,
		&fileModel.Path,
		&fileModel.URL,
		&fileModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, file.ErrFileNotFound
		}
		return nil, fmt.Errorf("unexpected file repository getbyid error: %w", err)
	}

	return ToDomain(&fileModel), nil
}

func ToDomain(f *FileDB) *entities.File {
	if f == nil {
		return nil
	}

	return &entities.File{
		ID:        f.ID,
		Name:      f.Name,
		Path:      f.Path,
		URL:       f.URL,
		CreatedAt: f.CreatedAt,
	}
}
