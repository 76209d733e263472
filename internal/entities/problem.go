package entities

import "time"

// DeliveryProblem is an issue reported against an order. Deleting a problem
// cancels the order it references.
type DeliveryProblem struct {
	ID          int64
	DeliveryID  int64
	Description string
	CreatedAt   time.Time
}

type DeliveryProblemModify struct {
	ID          *int64
	DeliveryID  *int64
	Description *string
}

// ProblemDetails is a problem joined with its order projection.
type ProblemDetails struct {
	DeliveryProblem
	Order Order
}

// CancellationNotice carries everything the notifier needs to announce an
// order cancellation to its deliveryman.
type CancellationNotice struct {
	DeliverymanName  string
	DeliverymanEmail string
	Product          string
	CanceledAt       time.Time
}
