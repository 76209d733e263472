//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivered_put_test
package delivered_put

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
	Deliver(ctx context.Context, orderID, deliverymanID int64, signatureID *int64) (*entities.Order, error)
}
