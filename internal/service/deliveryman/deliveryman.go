package deliveryman

import (
	"context"
	"errors"
	"fmt"

	"fastfeet/internal/entities"
)

type Deliveryman struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Deliveryman {
	return &Deliveryman{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Deliveryman) CreateDeliveryman(ctx context.Context, deliverymanModify entities.DeliverymanModify) (*entities.Deliveryman, error) {
	if deliverymanModify.Name == nil || deliverymanModify.Email == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidName(*deliverymanModify.Name) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(*deliverymanModify.Email) {
		return nil, ErrInvalidEmail
	}

	var created *entities.Deliveryman
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.checkEmailFree(ctx, *deliverymanModify.Email); err != nil {
			return err
		}

		var err error
		created, err = s.repository.Create(ctx, deliverymanModify)
		if err != nil {
			return fmt.Errorf("create deliveryman: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateDeliveryman re-checks email uniqueness only when the email actually
// changes, so a deliveryman can be saved with their own current address.
func (s *Deliveryman) UpdateDeliveryman(ctx context.Context, deliverymanModify entities.DeliverymanModify) (*entities.Deliveryman, error) {
	if deliverymanModify.ID == nil {
		return nil, ErrInvalidDeliverymanID
	}
	if deliverymanModify.Name != nil && !isValidName(*deliverymanModify.Name) {
		return nil, ErrMissingRequiredFields
	}
	if deliverymanModify.Email != nil && !isValidEmail(*deliverymanModify.Email) {
		return nil, ErrInvalidEmail
	}

	var updated *entities.Deliveryman
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, *deliverymanModify.ID)
		if err != nil {
			return fmt.Errorf("load deliveryman: %w", err)
		}

		if deliverymanModify.Email != nil && *deliverymanModify.Email != current.Email {
			if err := s.checkEmailFree(ctx, *deliverymanModify.Email); err != nil {
				return err
			}
		}

		updated, err = s.repository.Update(ctx, deliverymanModify)
		if err != nil {
			return fmt.Errorf("update deliveryman: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Deliveryman) GetDeliveryman(ctx context.Context, id int64) (*entities.Deliveryman, error) {
	if !isValidID(id) {
		return nil, ErrInvalidDeliverymanID
	}

	deliverymanEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get deliveryman: %w", err)
	}
	return deliverymanEntity, nil
}

func (s *Deliveryman) GetDeliverymen(ctx context.Context, page int64, query string) ([]entities.Deliveryman, error) {
	deliverymen, err := s.repository.List(ctx, page, query)
	if err != nil {
		return nil, fmt.Errorf("list deliverymen: %w", err)
	}
	return deliverymen, nil
}

func (s *Deliveryman) DeleteDeliveryman(ctx context.Context, id int64) error {
	if !isValidID(id) {
		return ErrInvalidDeliverymanID
	}

	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return fmt.Errorf("load deliveryman: %w", err)
	}
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete deliveryman: %w", err)
	}
	return nil
}

func (s *Deliveryman) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.repository.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrEmailTaken
	case errors.Is(err, ErrDeliverymanNotFound):
		return nil
	default:
		return fmt.Errorf("check email: %w", err)
	}
}
