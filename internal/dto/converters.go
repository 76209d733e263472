package dto

import (
	"fastfeet/internal/entities"
)

func NewRecipient(e *entities.Recipient) Recipient {
	return Recipient{
		ID:         e.ID,
		Name:       e.Name,
		Street:     e.Street,
		Number:     e.Number,
		Complement: e.Complement,
		State:      e.State,
		City:       e.City,
		ZipCode:    e.ZipCode,
	}
}

func NewRecipients(list []entities.Recipient) []Recipient {
	result := make([]Recipient, len(list))
	for i := range list {
		result[i] = NewRecipient(&list[i])
	}
	return result
}

func NewFileRef(e *entities.File) *FileRef {
	if e == nil {
		return nil
	}
	return &FileRef{
		ID:   e.ID,
		Path: e.Path,
		URL:  e.URL,
	}
}

func NewFile(e *entities.File) File {
	return File{
		ID:   e.ID,
		Name: e.Name,
		Path: e.Path,
		URL:  e.URL,
	}
}

func NewDeliveryman(e *entities.Deliveryman) Deliveryman {
	return Deliveryman{
		ID:       e.ID,
		Name:     e.Name,
		Email:    e.Email,
		AvatarID: e.AvatarID,
		Avatar:   NewFileRef(e.Avatar),
	}
}

func NewDeliverymen(list []entities.Deliveryman) []Deliveryman {
	result := make([]Deliveryman, len(list))
	for i := range list {
		result[i] = NewDeliveryman(&list[i])
	}
	return result
}

func NewDeliverymanDetails(e *entities.Deliveryman) DeliverymanDetails {
	return DeliverymanDetails{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
		Avatar:    NewFileRef(e.Avatar),
	}
}

func NewDeliverymanRef(e *entities.Deliveryman) DeliverymanRef {
	return DeliverymanRef{
		ID:     e.ID,
		Name:   e.Name,
		Avatar: NewFileRef(e.Avatar),
	}
}

func NewOrder(d *entities.OrderDetails) Order {
	return Order{
		ID:          d.ID,
		Product:     d.Product,
		SignatureID: d.SignatureID,
		CanceledAt:  d.CanceledAt,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Recipient:   NewRecipient(&d.Recipient),
		Deliveryman: NewDeliverymanRef(&d.Deliveryman),
		Signature:   NewFileRef(d.Signature),
	}
}

func NewOrders(list []entities.OrderDetails) []Order {
	result := make([]Order, len(list))
	for i := range list {
		result[i] = NewOrder(&list[i])
	}
	return result
}

func NewOrderDetails(d *entities.OrderDetails) OrderDetails {
	return OrderDetails{
		ID:      d.ID,
		Product: d.Product,
		Recipient: RecipientRef{
			ID:   d.Recipient.ID,
			Name: d.Recipient.Name,
		},
		Deliveryman: NewDeliverymanRef(&d.Deliveryman),
	}
}

func NewOrderState(o *entities.Order) OrderState {
	return OrderState{
		ID:            o.ID,
		Product:       o.Product,
		RecipientID:   o.RecipientID,
		DeliverymanID: o.DeliverymanID,
		SignatureID:   o.SignatureID,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
		CanceledAt:    o.CanceledAt,
	}
}

func NewDelivery(d *entities.OrderDetails) Delivery {
	return Delivery{
		ID:         d.ID,
		Product:    d.Product,
		CanceledAt: d.CanceledAt,
		StartDate:  d.StartDate,
		EndDate:    d.EndDate,
		Recipient: RecipientRef{
			ID:   d.Recipient.ID,
			Name: d.Recipient.Name,
		},
		Deliveryman: NewDeliverymanRef(&d.Deliveryman),
	}
}

func NewDeliveries(list []entities.OrderDetails) []Delivery {
	result := make([]Delivery, len(list))
	for i := range list {
		result[i] = NewDelivery(&list[i])
	}
	return result
}

func NewProblem(d *entities.ProblemDetails) Problem {
	return Problem{
		ID:          d.ID,
		DeliveryID:  d.DeliveryID,
		Description: d.Description,
		Order: OrderRef{
			ID:      d.Order.ID,
			Product: d.Order.Product,
		},
	}
}

func NewProblems(list []entities.ProblemDetails) []Problem {
	result := make([]Problem, len(list))
	for i := range list {
		result[i] = NewProblem(&list[i])
	}
	return result
}

func NewProblemDetails(p *entities.DeliveryProblem) ProblemDetails {
	return ProblemDetails{
		ID:          p.ID,
		DeliveryID:  p.DeliveryID,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func NewUser(e *entities.User) User {
	return User{
		ID:    e.ID,
		Name:  e.Name,
		Email: e.Email,
	}
}
