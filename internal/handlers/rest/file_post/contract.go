//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=file_post_test
package file_post

import (
	"context"
	"io"

	"fastfeet/internal/entities"
	"fastfeet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	StoreFile(ctx context.Context, name string, src io.Reader) (*entities.File, error)
}
