package problem

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fastfeet/internal/entities"
	"fastfeet/internal/service/order"
)

type Problem struct {
	repository  Repository
	orders      OrderService
	deliverymen DeliverymanChecker
	notifier    Notifier
}

func New(
	repository Repository,
	orders OrderService,
	deliverymen DeliverymanChecker,
	notifier Notifier,
) *Problem {
	return &Problem{
		repository:  repository,
		orders:      orders,
		deliverymen: deliverymen,
		notifier:    notifier,
	}
}

// CreateProblem registers an issue reported by a deliveryman against one of
// their own orders.
func (s *Problem) CreateProblem(ctx context.Context, deliverymanID, deliveryID int64, description string) (*entities.DeliveryProblem, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrMissingRequiredFields
	}

	exists, err := s.deliverymen.Exists(ctx, deliverymanID)
	if err != nil {
		return nil, fmt.Errorf("check deliveryman: %w", err)
	}
	if !exists {
		return nil, ErrDeliverymanNotFound
	}

	details, err := s.orders.GetOrder(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) || errors.Is(err, order.ErrInvalidOrderID) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("load order: %w", err)
	}
	if details.DeliverymanID != deliverymanID {
		return nil, ErrNotOrderOwner
	}

	created, err := s.repository.Create(ctx, entities.DeliveryProblemModify{
		DeliveryID:  &deliveryID,
		Description: &description,
	})
	if err != nil {
		return nil, fmt.Errorf("create problem: %w", err)
	}
	return created, nil
}

// GetProblems lists all reported problems joined with their orders.
func (s *Problem) GetProblems(ctx context.Context, page int64) ([]entities.ProblemDetails, error) {
	problems, err := s.repository.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	return problems, nil
}

// GetProblem returns a single reported problem by its id.
func (s *Problem) GetProblem(ctx context.Context, problemID int64) (*entities.DeliveryProblem, error) {
	if problemID <= 0 {
		return nil, ErrInvalidProblemID
	}

	problemEntity, err := s.repository.GetByID(ctx, problemID)
	if err != nil {
		return nil, fmt.Errorf("load problem: %w", err)
	}
	return problemEntity, nil
}

// CancelDelivery cancels the order a problem was reported against and notifies
// the assigned deliveryman. Cancellation of an already canceled order fails;
// the notice goes out only after the cancellation is recorded.
func (s *Problem) CancelDelivery(ctx context.Context, problemID int64) (*entities.Order, error) {
	if problemID <= 0 {
		return nil, ErrInvalidProblemID
	}

	problemEntity, err := s.repository.GetByID(ctx, problemID)
	if err != nil {
		return nil, fmt.Errorf("load problem: %w", err)
	}

	details, err := s.orders.GetOrder(ctx, problemEntity.DeliveryID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("load order: %w", err)
	}

	canceled, err := s.orders.CancelOrder(ctx, problemEntity.DeliveryID)
	if err != nil {
		return nil, err
	}

	s.notifier.SendCancellation(ctx, entities.CancellationNotice{
		DeliverymanName:  details.Deliveryman.Name,
		DeliverymanEmail: details.Deliveryman.Email,
		Product:          details.Product,
		CanceledAt:       *canceled.CanceledAt,
	})

	return canceled, nil
}
