package deliveryman

import (
	"fastfeet/internal/entities"
)

func ToDomain(d *DeliverymanDB) *entities.Deliveryman {
	if d == nil {
		return nil
	}

	deliverymanEntity := &entities.Deliveryman{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		AvatarID:  d.AvatarID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.AvatarID != nil && d.AvatarPath != nil {
		deliverymanEntity.Avatar = &entities.File{
			ID:   *d.AvatarID,
			Path: *d.AvatarPath,
		}
		if d.AvatarName != nil {
			deliverymanEntity.Avatar.Name = *d.AvatarName
		}
		if d.AvatarURL != nil {
			deliverymanEntity.Avatar.URL = *d.AvatarURL
		}
	}
	return deliverymanEntity
}

func ToDomainList(deliverymenDB []DeliverymanDB) []entities.Deliveryman {
	if len(deliverymenDB) == 0 {
		return []entities.Deliveryman{}
	}

	result := make([]entities.Deliveryman, len(deliverymenDB))
	for i, deliverymanDB := range deliverymenDB {
		result[i] = *ToDomain(&deliverymanDB)
	}
	return result
}
