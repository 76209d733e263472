package problem

import (
	"fastfeet/internal/entities"
)

func ToDomain(p *DeliveryProblemDB) *entities.DeliveryProblem {
	if p == nil {
		return nil
	}

	return &entities.DeliveryProblem{
		ID:          p.ID,
		DeliveryID:  p.DeliveryID,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func ToDomainDetails(p *ProblemDetailsDB) *entities.ProblemDetails {
	if p == nil {
		return nil
	}

	return &entities.ProblemDetails{
		DeliveryProblem: *ToDomain(&p.DeliveryProblemDB),
		Order: entities.Order{
			ID:            p.DeliveryID,
			Product:       p.Product,
			RecipientID:   p.RecipientID,
			DeliverymanID: p.DeliverymanID,
			StartDate:     p.StartDate,
			EndDate:       p.EndDate,
			CanceledAt:    p.CanceledAt,
		},
	}
}

func ToDomainDetailsList(problemsDB []ProblemDetailsDB) []entities.ProblemDetails {
	if len(problemsDB) == 0 {
		return []entities.ProblemDetails{}
	}

	result := make([]entities.ProblemDetails, len(problemsDB))
	for i, problemDB := range problemsDB {
		result[i] = *ToDomainDetails(&problemDB)
	}
	return result
}
