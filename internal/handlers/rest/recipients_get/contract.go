//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=recipients_get_test
package recipients_get

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
	GetRecipients(ctx context.Context, page int64, query string) ([]entities.Recipient, error)
}
