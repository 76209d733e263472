//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivered_get_test
package delivered_get

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
	CompletedDeliveries(ctx context.Context, deliverymanID, page int64) ([]entities.OrderDetails, error)
}
