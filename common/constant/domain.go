package constant

const (
	EventStatusUpcoming  = "upcoming"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

const (
	TicketStatusActive    = "active"
	TicketStatusValidated = "validated"
	TicketStatusExpired   = "expired"
	TicketStatusCancelled = "cancelled"
)

const OrderPaymentPending = "pending"

var EventCategories = map[string]bool{
	"Autre":             true,
	"Concert-Spectacle": true,
	"Diner Gala":        true,
	"Festival":          true,
	"Formation":         true,
}

var EventStatuses = map[string]bool{
	EventStatusUpcoming:  true,
	EventStatusCompleted: true,
	EventStatusCancelled: true,
}

var TicketStatuses = map[string]bool{
	TicketStatusActive:    true,
	TicketStatusValidated: true,
	TicketStatusExpired:   true,
	TicketStatusCancelled: true,
}
