package recipient

import (
	"fastfeet/internal/entities"
)

func ToDomain(r *RecipientDB) *entities.Recipient {
	if r == nil {
		return nil
	}

	recipientEntity := &entities.Recipient{
		ID:        r.ID,
		Name:      r.Name,
		Street:    r.Street,
		Number:    r.Number,
		State:     r.State,
		City:      r.City,
		ZipCode:   r.ZipCode,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Complement != nil {
		recipientEntity.Complement = *r.Complement
	}
	return recipientEntity
}

func ToDomainList(recipientsDB []RecipientDB) []entities.Recipient {
	if len(recipientsDB) == 0 {
		return []entities.Recipient{}
	}

	result := make([]entities.Recipient, len(recipientsDB))
	for i, recipientDB := range recipientsDB {
		result[i] = *ToDomain(&recipientDB)
	}
	return result
}
