package deliveryman

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidDeliverymanID  = errors.New("invalid deliveryman id")

	ErrDeliverymanNotFound = errors.New("deliveryman not found")
	ErrEmailTaken          = errors.New("email already exists")
)
