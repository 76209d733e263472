//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryman_test
package deliveryman

import (
	"context"

	"fastfeet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliverymanModify entities.DeliverymanModify) (*entities.Deliveryman, error)
	GetByID(ctx context.Context, id int64) (*entities.Deliveryman, error)
	GetByEmail(ctx context.Context, email string) (*entities.Deliveryman, error)
	List(ctx context.Context, page int64, query string) ([]entities.Deliveryman, error)
	Update(ctx context.Context, deliverymanModify entities.DeliverymanModify) (*entities.Deliveryman, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
