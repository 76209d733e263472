package entities

import "time"

type Recipient struct {
	ID         int64
	Name       string
	Street     string
	Number     int64
	Complement string
	State      string
	City       string
	ZipCode    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type RecipientModify struct {
	ID         *int64
	Name       *string
	Street     *string
	Number     *int64
	Complement *string
	State      *string
	City       *string
	ZipCode    *int64
}
