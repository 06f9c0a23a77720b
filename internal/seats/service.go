package seats

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"curtaincall/internal/halls"
)

var (
	ErrSeatNotFound   = errors.New("seat not found")
	ErrHallNotFound   = errors.New("hall not found")
	ErrSeatHasTickets = errors.New("seat still has tickets")
)

// Service interface defines the contract for seat business logic
type Service interface {
	CreateSeat(ctx context.Context, hallID uuid.UUID, req CreateSeatRequest) (*SeatResponse, error)
	CreateSeatBlock(ctx context.Context, hallID uuid.UUID, req CreateSeatBlockRequest) ([]SeatResponse, error)
	GetSeatsForHall(ctx context.Context, hallID uuid.UUID) ([]SeatResponse, error)
	GetVIPSeatsForHall(ctx context.Context, hallID uuid.UUID) ([]SeatResponse, error)
	DeleteSeat(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     Repository
	hallRepo halls.Repository
}

// NewService creates a new seat service instance
func NewService(repo Repository, hallRepo halls.Repository) Service {
	return &service{repo: repo, hallRepo: hallRepo}
}

func (s *service) CreateSeat(ctx context.Context, hallID uuid.UUID, req CreateSeatRequest) (*SeatResponse, error) {
	if err := s.ensureHall(ctx, hallID); err != nil {
		return nil, err
	}

	seat := &Seat{
		HallID: hallID,
		Row:    req.Row,
		Number: req.Number,
		IsVIP:  req.IsVIP,
	}
	if err := s.repo.Create(ctx, seat); err != nil {
		return nil, fmt.Errorf("failed to create seat: %w", err)
	}

	resp := seat.ToResponse()
	return &resp, nil
}

func (s *service) CreateSeatBlock(ctx context.Context, hallID uuid.UUID, req CreateSeatBlockRequest) ([]SeatResponse, error) {
	if err := s.ensureHall(ctx, hallID); err != nil {
		return nil, err
	}

	vipRows := make(map[int]bool, len(req.VIPRows))
	for _, row := range req.VIPRows {
		vipRows[row] = true
	}

	block := make([]Seat, 0, req.Rows*req.SeatsPerRow)
	for row := 1; row <= req.Rows; row++ {
		for number := 1; number <= req.SeatsPerRow; number++ {
			block = append(block, Seat{
				HallID: hallID,
				Row:    row,
				Number: number,
				IsVIP:  vipRows[row],
			})
		}
	}

	if err := s.repo.CreateBatch(ctx, block); err != nil {
		return nil, fmt.Errorf("failed to create seat block: %w", err)
	}
	return ToResponses(block), nil
}

func (s *service) GetSeatsForHall(ctx context.Context, hallID uuid.UUID) ([]SeatResponse, error) {
	if err := s.ensureHall(ctx, hallID); err != nil {
		return nil, err
	}

	seats, err := s.repo.GetByHallID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}
	return ToResponses(seats), nil
}

func (s *service) GetVIPSeatsForHall(ctx context.Context, hallID uuid.UUID) ([]SeatResponse, error) {
	if err := s.ensureHall(ctx, hallID); err != nil {
		return nil, err
	}

	seats, err := s.repo.GetVIPByHallID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("failed to list VIP seats: %w", err)
	}
	return ToResponses(seats), nil
}

// DeleteSeat is restricted while any ticket references the seat.
func (s *service) DeleteSeat(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.CountTickets(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count tickets: %w", err)
	}
	if count > 0 {
		return ErrSeatHasTickets
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete seat: %w", err)
	}
	if affected == 0 {
		return ErrSeatNotFound
	}
	return nil
}

func (s *service) ensureHall(ctx context.Context, hallID uuid.UUID) error {
	if _, err := s.hallRepo.GetByID(ctx, hallID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHallNotFound
		}
		return fmt.Errorf("failed to get hall: %w", err)
	}
	return nil
}
