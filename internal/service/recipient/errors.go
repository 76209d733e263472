package recipient

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRecipientID    = errors.New("invalid recipient id")

	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrHasPendingDelivery = errors.New("recipient still has a delivery to receive")
)
