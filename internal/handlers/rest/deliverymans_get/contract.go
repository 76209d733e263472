//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliverymans_get_test
package deliverymans_get

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
	GetDeliverymen(ctx context.Context, page int64, query string) ([]entities.Deliveryman, error)
}
