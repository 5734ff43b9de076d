package constant

const (
	QueueStreamName = "event_ticket_queue_stream"
)

const (
	AllWildcard   = "events.>"
	EmailWildcard = "events.email.>"

	SubjectSendEmail = "events.email.send"
)
