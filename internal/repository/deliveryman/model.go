package deliveryman

import "time"

type DeliverymanDB struct {
	ID        int64
	Name      string
	Email     string
	AvatarID  *int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// avatar columns from the files join, all null when no avatar is set
	AvatarName *string
	AvatarPath *string
	AvatarURL  *string
}
