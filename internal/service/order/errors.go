package order

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidProduct        = errors.New("invalid product")

	ErrOrderNotFound                  = errors.New("order not found")
	ErrDeliverymanNotFound            = errors.New("deliveryman not found")
	ErrRecipientOrDeliverymanNotFound = errors.New("recipient or deliveryman not found")

	ErrNotOrderOwner           = errors.New("order does not belong to this deliveryman")
	ErrOutsideWithdrawalWindow = errors.New("withdrawal outside business hours")
)

// AlreadyCanceledError rejects any transition on a canceled order. It carries
// the cancellation timestamp because the response message includes it.
type AlreadyCanceledError struct {
	CanceledAt time.Time
}

func (e *AlreadyCanceledError) Error() string {
	return fmt.Sprintf("order was canceled at %s", e.CanceledAt.Format(time.RFC3339))
}
