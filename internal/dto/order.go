package dto

import "time"

type OrderCreate struct {
	Product       string `json:"product"`
	RecipientID   *int64 `json:"recipient_id"`
	DeliverymanID *int64 `json:"deliveryman_id"`
}

type OrderCreateResponse struct {
	ID            int64  `json:"id"`
	Product       string `json:"product"`
	RecipientID   int64  `json:"recipient_id"`
	DeliverymanID int64  `json:"deliveryman_id"`
}

// RecipientRef is the narrow recipient projection nested in order feeds.
type RecipientRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Order struct {
	ID          int64          `json:"id"`
	Product     string         `json:"product"`
	SignatureID *int64         `json:"signature_id"`
	CanceledAt  *time.Time     `json:"canceled_at"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	Recipient   Recipient      `json:"recipient"`
	Deliveryman DeliverymanRef `json:"deliveryman"`
	Signature   *FileRef       `json:"signature"`
}

type OrderDetails struct {
	ID          int64          `json:"id"`
	Product     string         `json:"product"`
	Recipient   RecipientRef   `json:"recipient"`
	Deliveryman DeliverymanRef `json:"deliveryman"`
}

// OrderState is the full row projection returned by state transitions.
type OrderState struct {
	ID            int64      `json:"id"`
	Product       string     `json:"product"`
	RecipientID   int64      `json:"recipient_id"`
	DeliverymanID int64      `json:"deliveryman_id"`
	SignatureID   *int64     `json:"signature_id"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	CanceledAt    *time.Time `json:"canceled_at"`
}

type WithdrawalRequest struct {
	DeliverymanID *int64 `json:"deliveryman_id"`
}

type DeliveredRequest struct {
	DeliverymanID *int64 `json:"deliveryman_id"`
	SignatureID   *int64 `json:"signature_id"`
}

// Delivery is the projection of the deliveryman feed endpoints.
type Delivery struct {
	ID          int64          `json:"id"`
	Product     string         `json:"product"`
	CanceledAt  *time.Time     `json:"canceled_at,omitempty"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	Recipient   RecipientRef   `json:"recipient"`
	Deliveryman DeliverymanRef `json:"deliveryman"`
}
