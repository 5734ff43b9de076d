package model

type TicketType struct {
	ID            int32  `json:"ticket_type_id"`
	EventID       int32  `json:"ticket_type_event_id"`
	Name          string `json:"ticket_type_name"`
	Price         int64  `json:"ticket_type_price"`
	Quantity      int32  `json:"ticket_type_quantity"`
	RealQuantity  int32  `json:"ticket_type_real_quantity"`
	TotalQuantity int32  `json:"ticket_type_total_quantity"`
	Description   string `json:"ticket_type_description"`
}

type CreateTicketTypeRequest struct {
	EventID       int32  `json:"ticket_type_event_id" validate:"required"`
	Name          string `json:"ticket_type_name" validate:"required,max=50"`
	Price         int64  `json:"ticket_type_price" validate:"min=0,max=16777215"`
	Quantity      int32  `json:"ticket_type_quantity" validate:"min=0"`
	RealQuantity  int32  `json:"ticket_type_real_quantity" validate:"min=0"`
	TotalQuantity int32  `json:"ticket_type_total_quantity" validate:"min=0"`
	Description   string `json:"ticket_type_description" validate:"required,max=16777215"`
}

type UpdateTicketTypeRequest struct {
	Name          *string `json:"ticket_type_name" validate:"omitempty,max=50"`
	Price         *int64  `json:"ticket_type_price" validate:"omitempty,min=0,max=16777215"`
	Quantity      *int32  `json:"ticket_type_quantity" validate:"omitempty,min=0"`
	RealQuantity  *int32  `json:"ticket_type_real_quantity" validate:"omitempty,min=0"`
	TotalQuantity *int32  `json:"ticket_type_total_quantity" validate:"omitempty,min=0"`
	Description   *string `json:"ticket_type_description" validate:"omitempty,max=16777215"`
}
