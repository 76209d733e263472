//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=recipient_test
package recipient

import (
	"context"

	"fastfeet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error)
	GetByID(ctx context.Context, id int64) (*entities.Recipient, error)
	List(ctx context.Context, page int64, query string) ([]entities.Recipient, error)
	Update(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// Orders answers whether a recipient still has an order awaiting a signature,
// which blocks deletion.
type Orders interface {
	HasUnsignedByRecipient(ctx context.Context, recipientID int64) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
