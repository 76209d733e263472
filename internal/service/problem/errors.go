package problem

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidProblemID      = errors.New("invalid problem id")

	ErrProblemNotFound     = errors.New("problem not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrDeliverymanNotFound = errors.New("deliveryman not found")
	ErrNotOrderOwner       = errors.New("order is assigned to another deliveryman")
)
