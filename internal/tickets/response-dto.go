package tickets

import (
	"time"

	"github.com/google/uuid"

	"curtaincall/internal/performances"
	"curtaincall/internal/seats"
)

type TicketResponse struct {
	ID            string              `json:"id"`
	PerformanceID string              `json:"performance_id"`
	Price         float64             `json:"price"`
	IsSold        bool                `json:"is_sold"`
	PurchasedAt   *time.Time          `json:"purchased_at"`
	Seat          *seats.SeatResponse `json:"seat,omitempty"`
}

// TicketDetail adds the performance context for single-ticket lookups.
type TicketDetail struct {
	TicketResponse
	Performance *performances.PerformanceListItem `json:"performance,omitempty"`
}

type SeatingPlanSeat struct {
	SeatNumber  int     `json:"seat_number"`
	IsVIP       bool    `json:"is_vip"`
	IsAvailable bool    `json:"is_available"`
	Price       float64 `json:"price"`
	TicketID    string  `json:"ticket_id"`
}

type SeatingPlanRow struct {
	Row   int               `json:"row"`
	Seats []SeatingPlanSeat `json:"seats"`
}

type SeatingPlan struct {
	PerformanceID  string           `json:"performance_id"`
	TotalSeats     int              `json:"total_seats"`
	AvailableSeats int              `json:"available_seats"`
	SoldSeats      int              `json:"sold_seats"`
	VIPSeats       int              `json:"vip_seats"`
	Rows           []SeatingPlanRow `json:"seating_plan"`
}

type Statistics struct {
	TotalTickets       int64   `json:"total_tickets"`
	SoldTickets        int64   `json:"sold_tickets"`
	AvailableTickets   int64   `json:"available_tickets"`
	TotalRevenue       float64 `json:"total_revenue"`
	AverageTicketPrice float64 `json:"average_ticket_price"`
	OccupancyRate      float64 `json:"occupancy_rate"`
}

type GenerateTicketsResponse struct {
	PerformanceID string `json:"performance_id"`
	TicketsCreated int   `json:"tickets_created"`
}

type SaleResult struct {
	TicketID string `json:"ticket_id"`
	Success  bool   `json:"success"`
}

func (t *Ticket) ToResponse() TicketResponse {
	resp := TicketResponse{
		ID:            t.ID.String(),
		PerformanceID: t.PerformanceID.String(),
		Price:         t.Price,
		IsSold:        t.IsSold,
		PurchasedAt:   t.PurchasedAt,
	}
	if t.Seat.ID != uuid.Nil {
		seat := t.Seat.ToResponse()
		resp.Seat = &seat
	}
	return resp
}

func toResponses(list []Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(list))
	for i := range list {
		out = append(out, list[i].ToResponse())
	}
	return out
}
