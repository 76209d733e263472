//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=problem_test
package problem

import (
	"context"

	"fastfeet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, problemModify entities.DeliveryProblemModify) (*entities.DeliveryProblem, error)
	GetByID(ctx context.Context, id int64) (*entities.DeliveryProblem, error)
	List(ctx context.Context, page int64) ([]entities.ProblemDetails, error)
}

// OrderService is the slice of the order service a problem report depends on.
type OrderService interface {
	GetOrder(ctx context.Context, id int64) (*entities.OrderDetails, error)
	CancelOrder(ctx context.Context, id int64) (*entities.Order, error)
}

type DeliverymanChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Notifier announces cancellations to deliverymen. Delivery of the notice is
// best effort; implementations log failures instead of returning them.
type Notifier interface {
	SendCancellation(ctx context.Context, notice entities.CancellationNotice)
}
