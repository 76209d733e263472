//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=withdrawal_put_test
package withdrawal_put

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
	Withdraw(ctx context.Context, orderID, deliverymanID int64) (*entities.Order, error)
}
