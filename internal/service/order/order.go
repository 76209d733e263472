package order

import (
	"context"
	"fmt"

	"fastfeet/internal/entities"
)

type Order struct {
	repository  Repository
	recipients  RecipientChecker
	deliverymen DeliverymanChecker
	txManager   TxManager
	clock       Clock
}

func New(
	repository Repository,
	recipients RecipientChecker,
	deliverymen DeliverymanChecker,
	txManager TxManager,
	clock Clock,
) *Order {
	return &Order{
		repository:  repository,
		recipients:  recipients,
		deliverymen: deliverymen,
		txManager:   txManager,
		clock:       clock,
	}
}

func (s *Order) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.Product == nil ||
		orderModify.RecipientID == nil ||
		orderModify.DeliverymanID == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidProduct(*orderModify.Product) {
		return nil, ErrInvalidProduct
	}

	if err := s.checkReferences(ctx, *orderModify.RecipientID, *orderModify.DeliverymanID); err != nil {
		return nil, err
	}

	created, err := s.repository.Create(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return created, nil
}

func (s *Order) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil ||
		orderModify.Product == nil ||
		orderModify.RecipientID == nil ||
		orderModify.DeliverymanID == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidProduct(*orderModify.Product) {
		return nil, ErrInvalidProduct
	}

	if err := s.checkReferences(ctx, *orderModify.RecipientID, *orderModify.DeliverymanID); err != nil {
		return nil, err
	}

	updated, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return updated, nil
}

func (s *Order) GetOrder(ctx context.Context, id int64) (*entities.OrderDetails, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}

	details, err := s.repository.GetDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return details, nil
}

func (s *Order) GetOrders(ctx context.Context, page int64, query string) ([]entities.OrderDetails, error) {
	orders, err := s.repository.List(ctx, page, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// CancelOrder sets canceled_at once. A second cancellation is rejected with
// AlreadyCanceledError; the flag is never cleared.
func (s *Order) CancelOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}

	var canceled *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		if current.Canceled() {
			return &AlreadyCanceledError{CanceledAt: *current.CanceledAt}
		}

		now := s.clock.Now()
		canceled, err = s.repository.Update(ctx, entities.OrderModify{
			ID:         &id,
			CanceledAt: &now,
		})
		if err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return canceled, nil
}

// Withdraw records the pickup of an order by its deliveryman. The guards run
// in a fixed order and the first failure wins: deliveryman exists, order
// exists, ownership, not canceled, time window.
func (s *Order) Withdraw(ctx context.Context, orderID, deliverymanID int64) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	if err := s.checkDeliveryman(ctx, deliverymanID); err != nil {
		return nil, err
	}

	var withdrawn *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		if current.DeliverymanID != deliverymanID {
			return ErrNotOrderOwner
		}
		if current.Canceled() {
			return &AlreadyCanceledError{CanceledAt: *current.CanceledAt}
		}

		now := s.clock.Now()
		if !withinWithdrawalWindow(now) {
			return ErrOutsideWithdrawalWindow
		}

		withdrawn, err = s.repository.Update(ctx, entities.OrderModify{
			ID:        &orderID,
			StartDate: &now,
		})
		if err != nil {
			return fmt.Errorf("record withdrawal: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return withdrawn, nil
}

// Deliver completes an order: sets end_date and records the signature file
// when one was provided.
func (s *Order) Deliver(ctx context.Context, orderID, deliverymanID int64, signatureID *int64) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	if err := s.checkDeliveryman(ctx, deliverymanID); err != nil {
		return nil, err
	}

	var delivered *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		if current.DeliverymanID != deliverymanID {
			return ErrNotOrderOwner
		}
		if current.Canceled() {
			return &AlreadyCanceledError{CanceledAt: *current.CanceledAt}
		}

		now := s.clock.Now()
		delivered, err = s.repository.Update(ctx, entities.OrderModify{
			ID:          &orderID,
			EndDate:     &now,
			SignatureID: signatureID,
		})
		if err != nil {
			return fmt.Errorf("record delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return delivered, nil
}

// OpenDeliveries lists a deliveryman's orders that are neither canceled nor
// completed.
func (s *Order) OpenDeliveries(ctx context.Context, deliverymanID, page int64) ([]entities.OrderDetails, error) {
	if !isValidID(deliverymanID) {
		return nil, ErrDeliverymanNotFound
	}

	orders, err := s.repository.ListOpenByDeliveryman(ctx, deliverymanID, page)
	if err != nil {
		return nil, fmt.Errorf("list open deliveries: %w", err)
	}
	return orders, nil
}

// CompletedDeliveries lists a deliveryman's orders with end_date set.
func (s *Order) CompletedDeliveries(ctx context.Context, deliverymanID, page int64) ([]entities.OrderDetails, error) {
	if !isValidID(deliverymanID) {
		return nil, ErrDeliverymanNotFound
	}

	orders, err := s.repository.ListDeliveredByDeliveryman(ctx, deliverymanID, page)
	if err != nil {
		return nil, fmt.Errorf("list completed deliveries: %w", err)
	}
	return orders, nil
}

func (s *Order) checkReferences(ctx context.Context, recipientID, deliverymanID int64) error {
	recipientExists, err := s.recipients.Exists(ctx, recipientID)
	if err != nil {
		return fmt.Errorf("check recipient: %w", err)
	}
	deliverymanExists, err := s.deliverymen.Exists(ctx, deliverymanID)
	if err != nil {
		return fmt.Errorf("check deliveryman: %w", err)
	}
	if !recipientExists || !deliverymanExists {
		return ErrRecipientOrDeliverymanNotFound
	}
	return nil
}

func (s *Order) checkDeliveryman(ctx context.Context, deliverymanID int64) error {
	exists, err := s.deliverymen.Exists(ctx, deliverymanID)
	if err != nil {
		return fmt.Errorf("check deliveryman: %w", err)
	}
	if !exists {
		return ErrDeliverymanNotFound
	}
	return nil
}
