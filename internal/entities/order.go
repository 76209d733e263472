package entities

import "time"

// Order is a single delivery task from a deliveryman to a recipient.
//
// Lifecycle: created -> withdrawn (StartDate set) -> delivered (EndDate set),
// with an orthogonal terminal canceled flag (CanceledAt set).
type Order struct {
	ID            int64
	Product       string
	RecipientID   int64
	DeliverymanID int64
	SignatureID   *int64
	StartDate     *time.Time
	EndDate       *time.Time
	CanceledAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (o *Order) Canceled() bool {
	return o.CanceledAt != nil
}

func (o *Order) Withdrawn() bool {
	return o.StartDate != nil
}

func (o *Order) Delivered() bool {
	return o.EndDate != nil
}

type OrderModify struct {
	ID            *int64
	Product       *string
	RecipientID   *int64
	DeliverymanID *int64
	SignatureID   *int64
	StartDate     *time.Time
	EndDate       *time.Time
	CanceledAt    *time.Time
}

// OrderDetails is an order joined with the rows its feeds project:
// recipient, deliveryman (with avatar) and the signature file when present.
type OrderDetails struct {
	Order
	Recipient   Recipient
	Deliveryman Deliveryman
	Signature   *File
}
