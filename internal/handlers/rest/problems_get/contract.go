//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=problems_get_test
package problems_get

import (
	"context"

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
	GetProblems(ctx context.Context, page int64) ([]entities.ProblemDetails, error)
}
