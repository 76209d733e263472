package order

import (
	"fastfeet/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:            o.ID,
		Product:       o.Product,
		RecipientID:   o.RecipientID,
		DeliverymanID: o.DeliverymanID,
		SignatureID:   o.SignatureID,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
		CanceledAt:    o.CanceledAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func ToDomainDetails(o *OrderDetailsDB) *entities.OrderDetails {
	if o == nil {
		return nil
	}

	details := &entities.OrderDetails{
		Order: *ToDomain(&o.OrderDB),
		Recipient: entities.Recipient{
			ID:      o.RecipientID,
			Name:    o.RecipientName,
			Street:  o.RecipientStreet,
			Number:  o.RecipientNumber,
			State:   o.RecipientState,
			City:    o.RecipientCity,
			ZipCode: o.RecipientZipCode,
		},
		Deliveryman: entities.Deliveryman{
			ID:       o.DeliverymanID,
			Name:     o.DeliverymanName,
			Email:    o.DeliverymanEmail,
			AvatarID: o.AvatarID,
		},
	}
	if o.RecipientComplement != nil {
		details.Recipient.Complement = *o.RecipientComplement
	}
	if o.AvatarID != nil && o.AvatarPath != nil {
		details.Deliveryman.Avatar = &entities.File{
			ID:   *o.AvatarID,
			Path: *o.AvatarPath,
		}
		if o.AvatarURL != nil {
			details.Deliveryman.Avatar.URL = *o.AvatarURL
		}
	}
	if o.SignatureID != nil && o.SignaturePath != nil {
		details.Signature = &entities.File{
			ID:   *o.SignatureID,
			Path: *o.SignaturePath,
		}
		if o.SignatureURL != nil {
			details.Signature.URL = *o.SignatureURL
		}
	}
	return details
}

func ToDomainDetailsList(ordersDB []OrderDetailsDB) []entities.OrderDetails {
	if len(ordersDB) == 0 {
		return []entities.OrderDetails{}
	}

	result := make([]entities.OrderDetails, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomainDetails(&orderDB)
	}
	return result
}
