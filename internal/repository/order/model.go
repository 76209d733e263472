package order

import "time"

type OrderDB struct {
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

// OrderDetailsDB is one row of the details join: order plus recipient,
// deliveryman (with avatar) and the signature file when present.
type OrderDetailsDB struct {
	OrderDB

	RecipientName       string
	RecipientStreet     string
	RecipientNumber     int64
	RecipientComplement *string
	RecipientState      string
	RecipientCity       string
	RecipientZipCode    int64

	DeliverymanName  string
	DeliverymanEmail string
	AvatarID         *int64
	AvatarPath       *string
	AvatarURL        *string

	SignaturePath *string
	SignatureURL  *string
}
