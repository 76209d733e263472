//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"fastfeet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetDetails(ctx context.Context, id int64) (*entities.OrderDetails, error)
	List(ctx context.Context, page int64, query string) ([]entities.OrderDetails, error)
	ListOpenByDeliveryman(ctx context.Context, deliverymanID, page int64) ([]entities.OrderDetails, error)
	ListDeliveredByDeliveryman(ctx context.Context, deliverymanID, page int64) ([]entities.OrderDetails, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

// RecipientChecker and DeliverymanChecker are the narrow existence checks the
// order rules need before touching order rows.
type RecipientChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type DeliverymanChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}
