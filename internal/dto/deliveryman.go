package dto

import "time"

type DeliverymanCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	AvatarID *int64 `json:"avatar_id"`
}

type DeliverymanUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	AvatarID *int64  `json:"avatar_id"`
}

type Deliveryman struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	AvatarID *int64   `json:"avatar_id"`
	Avatar   *FileRef `json:"avatar"`
}

type DeliverymanDetails struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Avatar    *FileRef  `json:"avatar"`
}

// DeliverymanRef is the narrow deliveryman projection nested in order feeds.
type DeliverymanRef struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Avatar *FileRef `json:"avatar,omitempty"`
}
