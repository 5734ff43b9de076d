package model

import "time"

type OrderIntent struct {
	ID             int32     `json:"order_intent_id"`
	EventID        int32     `json:"order_intent_event_id"`
	Price          int64     `json:"order_intent_price"`
	Type           string    `json:"order_intent_type"`
	UserEmail      string    `json:"user_email"`
	UserPhone      string    `json:"user_phone"`
	ExpirationDate time.Time `json:"expiration_date"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateOrderIntentRequest struct {
	EventID        int32  `json:"order_intent_event_id" validate:"required"`
	Price          int64  `json:"order_intent_price" validate:"min=0,max=16777215"`
	Type           string `json:"order_intent_type" validate:"required,max=50"`
	UserEmail      string `json:"user_email" validate:"required,email,max=100"`
	UserPhone      string `json:"user_phone" validate:"required,max=20"`
	ExpirationDate string `json:"expiration_date" validate:"required"`
}

type UpdateOrderIntentRequest struct {
	Price          *int64  `json:"order_intent_price" validate:"omitempty,min=0,max=16777215"`
	Type           *string `json:"order_intent_type" validate:"omitempty,max=50"`
	UserEmail      *string `json:"user_email" validate:"omitempty,email,max=100"`
	UserPhone      *string `json:"user_phone" validate:"omitempty,max=20"`
	ExpirationDate *string `json:"expiration_date"`
}

type CleanExpiredIntentsResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

type ValidateOrderIntentResponse struct {
	Message           string `json:"message"`
	OrderNumber       string `json:"order_number"`
	TicketDownloadUrl string `json:"ticket_download_url"`
}
