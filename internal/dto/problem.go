package dto

import "time"

type ProblemCreate struct {
	DeliveryID  *int64 `json:"delivery_id"`
	Description string `json:"description"`
}

type ProblemCreateResponse struct {
	ID          int64  `json:"id"`
	DeliveryID  int64  `json:"delivery_id"`
	Description string `json:"description"`
}

type OrderRef struct {
	ID      int64  `json:"id"`
	Product string `json:"product"`
}

type Problem struct {
	ID          int64    `json:"id"`
	DeliveryID  int64    `json:"delivery_id"`
	Description string   `json:"description"`
	Order       OrderRef `json:"order"`
}

type ProblemDetails struct {
	ID          int64     `json:"id"`
	DeliveryID  int64     `json:"delivery_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
