package notifications

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	EventTicketSold       EventType = "ticket.sold"
	EventTicketReturned   EventType = "ticket.returned"
	EventTicketsGenerated EventType = "tickets.generated"
)

// TicketEvent is the message published for every ticket lifecycle change.
// Events for the same performance share a partition key so consumers see
// them in order.
type TicketEvent struct {
	Type          EventType `json:"type"`
	TicketID      string    `json:"ticket_id,omitempty"`
	PerformanceID string    `json:"performance_id"`
	Price         float64   `json:"price,omitempty"`
	TicketCount   int       `json:"ticket_count,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (e *TicketEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events of one performance to one partition.
func (e *TicketEvent) PartitionKey() string {
	return e.PerformanceID
}
