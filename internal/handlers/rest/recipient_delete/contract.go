//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=recipient_delete_test
package recipient_delete

import (
	"context"

	"fastfeet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteRecipient(ctx context.Context, id int64) error
}
