package problem

import "time"

type DeliveryProblemDB struct {
	ID          int64
	DeliveryID  int64
	Description string
	CreatedAt   time.Time
}

// ProblemDetailsDB is a problem row joined with its order's projection.
type ProblemDetailsDB struct {
	DeliveryProblemDB

	Product       string
	RecipientID   int64
	DeliverymanID int64
	StartDate     *time.Time
	EndDate       *time.Time
	CanceledAt    *time.Time
}
