package model

import "time"

type Order struct {
	ID        int32     `json:"order_id"`
	Number    string    `json:"order_number"`
	EventID   int32     `json:"order_event_id"`
	Price     int64     `json:"order_price"`
	Type      string    `json:"order_type"`
	Payment   string    `json:"order_payment"`
	Info      string    `json:"order_info"`
	ApiKey    string    `json:"api_key"`
	CreatedOn time.Time `json:"order_created_on"`
}

type CreateOrderRequest struct {
	Number  string `json:"order_number" validate:"required,max=50"`
	EventID int32  `json:"order_event_id" validate:"required"`
	Price   int64  `json:"order_price" validate:"min=0,max=16777215"`
	Type    string `json:"order_type" validate:"required,max=50"`
	Payment string `json:"order_payment" validate:"required,max=100"`
	Info    string `json:"order_info" validate:"max=16777215"`
}

type UpdateOrderRequest struct {
	Price   *int64  `json:"order_price" validate:"omitempty,min=0,max=16777215"`
	Type    *string `json:"order_type" validate:"omitempty,max=50"`
	Payment *string `json:"order_payment" validate:"omitempty,max=100"`
	Info    *string `json:"order_info" validate:"omitempty,max=16777215"`
}

type ListOrdersResponse struct {
	Orders  []Order `json:"orders"`
	Page    int32   `json:"page"`
	PerPage int32   `json:"per_page"`
	Total   int64   `json:"total"`
}
