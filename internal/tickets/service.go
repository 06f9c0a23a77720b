package tickets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"curtaincall/internal/notifications"
	"curtaincall/internal/performances"
	"curtaincall/internal/seats"
)

var (
	ErrTicketNotFound          = errors.New("ticket not found")
	ErrPerformanceNotFound     = errors.New("performance not found")
	ErrTicketsAlreadyGenerated = errors.New("tickets already generated for performance")
)

// Returns close 24 hours before curtain.
const returnCutoff = 24 * time.Hour

// Service interface defines the contract for ticket business logic
type Service interface {
	GenerateTickets(ctx context.Context, performanceID uuid.UUID) (*GenerateTicketsResponse, error)
	SellTicket(ctx context.Context, id uuid.UUID) (bool, error)
	ReturnTicket(ctx context.Context, id uuid.UUID) (bool, error)
	GetTicketByID(ctx context.Context, id uuid.UUID) (*TicketDetail, error)
	GetTicketsForPerformance(ctx context.Context, performanceID uuid.UUID) ([]TicketResponse, error)
	GetAvailableTicketsForPerformance(ctx context.Context, performanceID uuid.UUID) ([]TicketResponse, error)
	GetSoldTicketsForPerformance(ctx context.Context, performanceID uuid.UUID) ([]TicketResponse, error)
	GetVIPTicketsForPerformance(ctx context.Context, performanceID uuid.UUID) ([]TicketResponse, error)
	GetTicketsByRow(ctx context.Context, performanceID uuid.UUID, row int) ([]TicketResponse, error)
	GetTicketsByPriceRange(ctx context.Context, performanceID uuid.UUID, minPrice, maxPrice *float64) ([]TicketResponse, error)
	GetAvailableSeats(ctx context.Context, performanceID uuid.UUID) ([]seats.SeatResponse, error)
	GetSeatingPlan(ctx context.Context, performanceID uuid.UUID) (*SeatingPlan, error)
	GetStatistics(ctx context.Context, performanceID uuid.UUID) (*Statistics, error)
	GetOverallStatistics(ctx context.Context) (*Statistics, error)
	DeleteTicket(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     Repository
	perfRepo performances.Repository
	seatRepo seats.Repository
	cache    *Cache
	producer notifications.Producer
	logger   *slog.Logger
}

// NewService creates a new ticket service instance. Cache and producer may
// be nil; both degrade to no-ops.
func NewService(repo Repository, perfRepo performances.Repository, seatRepo seats.Repository, cache *Cache, producer notifications.Producer) Service {
	return &service{
		repo:     repo,
		perfRepo: perfRepo,
		seatRepo: seatRepo,
		cache:    cache,
		producer: producer,
		logger:   slog.Default(),
	}
}

// GenerateTickets creates one unsold ticket per seat of the performance's
// hall, pricing VIP seats at the premium multiplier. Generation is one-shot:
// a performance that already has tickets is rejected.
func (s *service) GenerateTickets(ctx context.Context, performanceID uuid.UUID) (*GenerateTicketsResponse, error) {
	performance, err := s.perfRepo.GetByID(ctx, performanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	existing, err := s.repo.CountByPerformanceID(ctx, performanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}
	if existing > 0 {
		return nil, ErrTicketsAlreadyGenerated
	}

	hallSeats, err := s.seatRepo.GetByHallID(ctx, performance.HallID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hall seats: %w", err)
	}

	batch := make([]Ticket, 0, len(hallSeats))
	for _, seat := range hallSeats {
		price := performance.BasePrice
		if seat.IsVIP {
			price = round2(price * vipPriceMultiplier)
		}
		batch = append(batch, Ticket{
			PerformanceID: performanceID,
			SeatID:        seat.ID,
			Price:         price,
			IsSold:        false,
			PurchasedAt:   nil,
		})
	}

	if len(batch) > 0 {
		if err := s.repo.CreateBatch(ctx, batch); err != nil {
			return nil, fmt.Errorf("failed to create tickets: %w", err)
		}
	}

	s.cache.InvalidatePerformance(ctx, performanceID)
	s.publish(ctx, notifications.TicketEvent{
		Type:          notifications.EventTicketsGenerated,
		PerformanceID: performanceID.String(),
		TicketCount:   len(batch),
	})

	return &GenerateTicketsResponse{
		PerformanceID:  performanceID.String(),
		TicketsCreated: len(batch),
	}, nil
}

// SellTicket marks a ticket sold. The state guard lives in the UPDATE
// itself, so of two concurrent sales exactly one succeeds.
func (s *service) SellTicket(ctx context.Context, id uuid.UUID) (bool, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get ticket: %w", err)
	}

	affected, err := s.repo.MarkSold(ctx, id, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to sell ticket: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	s.cache.InvalidatePerformance(ctx, ticket.PerformanceID)
	s.publish(ctx, notifications.TicketEvent{
		Type:          notifications.EventTicketSold,
		TicketID:      id.String(),
		PerformanceID: ticket.PerformanceID.String(),
		Price:         ticket.Price,
	})
	return true, nil
}

// ReturnTicket releases a sold ticket back to inventory. Returns are blocked
// once less than 24 hours remain before the performance. The purchase
// timestamp is cleared, never set to a sentinel date.
func (s *service) ReturnTicket(ctx context.Context, id uuid.UUID) (bool, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get ticket: %w", err)
	}

	if !ticket.IsSold {
		return false, nil
	}
	if ticket.Performance.Date.Add(-returnCutoff).Before(time.Now()) {
		return false, nil
	}

	affected, err := s.repo.MarkReturned(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to return ticket: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	s.cache.InvalidatePerformance(ctx, ticket.PerformanceID)
	s.publish(ctx, notifications.TicketEvent{
		Type:          notifications.EventTicketReturned,
		TicketID:      id.String(),
		PerformanceID: ticket.PerformanceID.String(),
		Price:         ticket.Price,
	})
	return true, nil
}

func (s *service) GetTicketByID(ctx context.Context, id uuid.UUID) (*TicketDetail, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	performance := ticket.Performance.ToListItem()
	return &TicketDetail{
		TicketResponse: ticket.ToResponse(),
		Performance:    &performance,
	}, nil
}

func (s *service) GetTicketsForPerformance(ctx context.Context, performanceID uuid.UUID) ([]TicketResponse, error) {
	list, err := s.repo.GetByPerformanceID(ctx, performanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return toResponses(list), nil
}

func (s *service) GetAvailableTicketsForPerformance(ctx context.Context, performanceID uuid.UUID) ([]TicketResponse, error) {
	list, err := s.repo.GetAvailableByPerformanceID(ctx, performanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list available tickets: %w", err)
	}
	return toResponses(list), nil
}

func (s *service) GetSoldTicketsForPerformance(ctx context.Context, performanceID uuid.UUID) ([]TicketResponse, error) {
	list, err := s.repo.GetSoldByPerformanceID(ctx, performanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sold tickets: %w", err)
	}
	return toResponses(list), nil
}

func (s *service) GetVIPTicketsForPerformance(ctx context.Context, performanceID uuid.UUID) ([]TicketResponse, error) {
	list, err := s.repo.GetVIPByPerformanceID(ctx, performanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list VIP tickets: %w", err)
	}
	return toResponses(list), nil
}

func (s *service) GetTicketsByRow(ctx context.Context, performanceID uuid.UUID, row int) ([]TicketResponse, error) {
	list, err := s.repo.GetByRow(ctx, performanceID, row)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets by row: %w", err)
	}
	return toResponses(list), nil
}

func (s *service) GetTicketsByPriceRange(ctx context.Context, performanceID uuid.UUID, minPrice, maxPrice *float64) ([]TicketResponse, error) {
	list, err := s.repo.GetByPriceRange(ctx, performanceID, minPrice, maxPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets by price: %w", err)
	}
	return toResponses(list), nil
}

func (s *service) GetAvailableSeats(ctx context.Context, performanceID uuid.UUID) ([]seats.SeatResponse, error) {
	available, err := s.repo.GetAvailableSeats(ctx, performanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list available seats: %w", err)
	}
	return seats.ToResponses(available), nil
}

// GetSeatingPlan groups a performance's tickets by seat row, ascending, and
// by seat number within each row.
func (s *service) GetSeatingPlan(ctx context.Context, performanceID uuid.UUID) (*SeatingPlan, error) {
	if plan, ok := s.cache.GetSeatingPlan(ctx, performanceID); ok {
		return plan, nil
	}

	list, err := s.repo.GetByPerformanceID(ctx, performanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	plan := &SeatingPlan{
		PerformanceID: performanceID.String(),
		TotalSeats:    len(list),
		Rows:          []SeatingPlanRow{},
	}

	var currentRow *SeatingPlanRow
	for i := range list {
		ticket := &list[i]
		if ticket.IsSold {
			plan.SoldSeats++
		} else {
			plan.AvailableSeats++
		}
		if ticket.Seat.IsVIP {
			plan.VIPSeats++
		}

		if currentRow == nil || currentRow.Row != ticket.Seat.Row {
			plan.Rows = append(plan.Rows, SeatingPlanRow{Row: ticket.Seat.Row})
			currentRow = &plan.Rows[len(plan.Rows)-1]
		}
		currentRow.Seats = append(currentRow.Seats, SeatingPlanSeat{
			SeatNumber:  ticket.Seat.Number,
			IsVIP:       ticket.Seat.IsVIP,
			IsAvailable: !ticket.IsSold,
			Price:       ticket.Price,
			TicketID:    ticket.ID.String(),
		})
	}

	s.cache.SetSeatingPlan(ctx, performanceID, plan)
	return plan, nil
}

func (s *service) GetStatistics(ctx context.Context, performanceID uuid.UUID) (*Statistics, error) {
	key := statisticsKey(performanceID)
	if stats, ok := s.cache.GetStatistics(ctx, key); ok {
		return stats, nil
	}

	stats, err := s.repo.Aggregate(ctx, &performanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate statistics: %w", err)
	}
	finalizeStatistics(stats)

	s.cache.SetStatistics(ctx, key, stats)
	return stats, nil
}

func (s *service) GetOverallStatistics(ctx context.Context) (*Statistics, error) {
	if stats, ok := s.cache.GetStatistics(ctx, overallStatsKey); ok {
		return stats, nil
	}

	stats, err := s.repo.Aggregate(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate statistics: %w", err)
	}
	finalizeStatistics(stats)

	s.cache.SetStatistics(ctx, overallStatsKey, stats)
	return stats, nil
}

func (s *service) DeleteTicket(ctx context.Context, id uuid.UUID) error {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		return fmt.Errorf("failed to get ticket: %w", err)
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	s.cache.InvalidatePerformance(ctx, ticket.PerformanceID)
	return nil
}

// publish sends a ticket event when a producer is wired. Publish failures
// are logged, never surfaced: the sale already committed.
func (s *service) publish(ctx context.Context, event notifications.TicketEvent) {
	if s.producer == nil {
		return
	}
	if err := s.producer.PublishTicketEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish ticket event",
			slog.String("type", string(event.Type)),
			slog.String("performance_id", event.PerformanceID),
			slog.Any("error", err),
		)
	}
}

// finalizeStatistics derives occupancy and rounds the monetary aggregates.
func finalizeStatistics(stats *Statistics) {
	if stats.TotalTickets > 0 {
		stats.OccupancyRate = round2(float64(stats.SoldTickets) / float64(stats.TotalTickets) * 100)
	}
	stats.AverageTicketPrice = round2(stats.AverageTicketPrice)
	stats.TotalRevenue = round2(stats.TotalRevenue)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
