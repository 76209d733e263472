package recipient

import (
	"context"
	"fmt"

	"fastfeet/internal/entities"
)

type Recipient struct {
	repository Repository
	orders     Orders
	txManager  TxManager
}

func New(repository Repository, orders Orders, txManager TxManager) *Recipient {
	return &Recipient{
		repository: repository,
		orders:     orders,
		txManager:  txManager,
	}
}

func (s *Recipient) CreateRecipient(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error) {
	if err := validateRequired(&recipientModify); err != nil {
		return nil, err
	}

	created, err := s.repository.Create(ctx, recipientModify)
	if err != nil {
		return nil, fmt.Errorf("create recipient: %w", err)
	}
	return created, nil
}

func (s *Recipient) UpdateRecipient(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error) {
	if recipientModify.ID == nil {
		return nil, ErrInvalidRecipientID
	}
	if err := validateRequired(&recipientModify); err != nil {
		return nil, err
	}

	updated, err := s.repository.Update(ctx, recipientModify)
	if err != nil {
		return nil, fmt.Errorf("update recipient: %w", err)
	}
	return updated, nil
}

func (s *Recipient) GetRecipient(ctx context.Context, id int64) (*entities.Recipient, error) {
	recipientEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recipient: %w", err)
	}
	return recipientEntity, nil
}

func (s *Recipient) GetRecipients(ctx context.Context, page int64, query string) ([]entities.Recipient, error) {
	recipients, err := s.repository.List(ctx, page, query)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}
	return recipients, nil
}

// DeleteRecipient removes a recipient unless an order addressed to it is
// still waiting for a signature.
func (s *Recipient) DeleteRecipient(ctx context.Context, id int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repository.GetByID(ctx, id); err != nil {
			return fmt.Errorf("load recipient: %w", err)
		}

		pending, err := s.orders.HasUnsignedByRecipient(ctx, id)
		if err != nil {
			return fmt.Errorf("check unsigned deliveries: %w", err)
		}
		if pending {
			return ErrHasPendingDelivery
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete recipient: %w", err)
		}
		return nil
	})
}
