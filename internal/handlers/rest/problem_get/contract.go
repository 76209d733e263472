//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=problem_get_test
package problem_get

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
	GetProblem(ctx context.Context, problemID int64) (*entities.DeliveryProblem, error)
}
