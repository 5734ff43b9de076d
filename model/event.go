package model

import "time"

type Event struct {
	ID          int32     `json:"event_id"`
	Title       string    `json:"event_title"`
	Description string    `json:"event_description"`
	Date        time.Time `json:"event_date"`
	Image       string    `json:"event_image"`
	Category    string    `json:"event_category"`
	City        string    `json:"event_city"`
	Address     string    `json:"event_address"`
	Status      string    `json:"event_status"`
}

type CreateEventRequest struct {
	Title       string `json:"event_title" validate:"required,max=30"`
	Description string `json:"event_description" validate:"required,max=16777215"`
	Date        string `json:"event_date" validate:"required"`
	Image       string `json:"event_image" validate:"required,max=200"`
	Category    string `json:"event_category" validate:"required"`
	City        string `json:"event_city" validate:"required,max=100"`
	Address     string `json:"event_address" validate:"required,max=200"`
	Status      string `json:"event_status" validate:"required"`
}

type UpdateEventRequest struct {
	Title       *string `json:"event_title" validate:"omitempty,max=30"`
	Description *string `json:"event_description" validate:"omitempty,max=16777215"`
	Date        *string `json:"event_date"`
	Image       *string `json:"event_image" validate:"omitempty,max=200"`
	Category    *string `json:"event_category"`
	City        *string `json:"event_city" validate:"omitempty,max=100"`
	Address     *string `json:"event_address" validate:"omitempty,max=200"`
	Status      *string `json:"event_status"`
}

type ListEventsResponse struct {
	Events  []Event `json:"events"`
	Page    int32   `json:"page"`
	PerPage int32   `json:"per_page"`
	Total   int64   `json:"total"`
}
