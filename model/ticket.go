package model

import "time"

type Ticket struct {
	ID           int32     `json:"ticket_id"`
	Key          string    `json:"ticket_key"`
	EventID      int32     `json:"ticket_event_id"`
	OrderID      int32     `json:"ticket_order_id"`
	TicketTypeID int32     `json:"ticket_ticket_type_id"`
	Email        string    `json:"ticket_email"`
	Phone        string    `json:"ticket_phone"`
	Price        int64     `json:"ticket_price"`
	Status       string    `json:"ticket_status"`
	CreatedOn    time.Time `json:"ticket_created_on"`
}

// TicketDetail is a ticket joined with the name of its ticket type, as
// rendered on the downloadable document.
type TicketDetail struct {
	Ticket
	TypeName string `json:"ticket_type_name"`
}
