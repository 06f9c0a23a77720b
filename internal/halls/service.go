package halls

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrHallNotFound = errors.New("hall not found")
	ErrHallInUse    = errors.New("hall still has seats or performances")
)

type Service interface {
	CreateHall(ctx context.Context, req CreateHallRequest) (*HallResponse, error)
	GetHallByID(ctx context.Context, id uuid.UUID) (*HallResponse, error)
	GetAllHalls(ctx context.Context) ([]HallListItem, error)
	UpdateHall(ctx context.Context, id uuid.UUID, req UpdateHallRequest) (*HallResponse, error)
	DeleteHall(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateHall(ctx context.Context, req CreateHallRequest) (*HallResponse, error) {
	hall := &Hall{
		Name:        req.Name,
		Capacity:    req.Capacity,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, hall); err != nil {
		return nil, fmt.Errorf("failed to create hall: %w", err)
	}
	return hall.ToResponse(0), nil
}

func (s *service) GetHallByID(ctx context.Context, id uuid.UUID) (*HallResponse, error) {
	hall, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHallNotFound
		}
		return nil, fmt.Errorf("failed to get hall: %w", err)
	}

	seatCount, err := s.repo.CountSeats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count seats: %w", err)
	}
	return hall.ToResponse(seatCount), nil
}

func (s *service) GetAllHalls(ctx context.Context) ([]HallListItem, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list halls: %w", err)
	}

	items := make([]HallListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, HallListItem{
			ID:                row.ID.String(),
			Name:              row.Name,
			Capacity:          row.Capacity,
			PerformancesCount: row.PerformancesCount,
		})
	}
	return items, nil
}

func (s *service) UpdateHall(ctx context.Context, id uuid.UUID, req UpdateHallRequest) (*HallResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHallNotFound
		}
		return nil, fmt.Errorf("failed to get hall: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update hall: %w", err)
		}
	}

	return s.GetHallByID(ctx, id)
}

// DeleteHall is restricted: a hall that still owns seats or is referenced by
// performances cannot be removed.
func (s *service) DeleteHall(ctx context.Context, id uuid.UUID) error {
	seatCount, err := s.repo.CountSeats(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count seats: %w", err)
	}
	perfCount, err := s.repo.CountPerformances(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count performances: %w", err)
	}
	if seatCount > 0 || perfCount > 0 {
		return ErrHallInUse
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete hall: %w", err)
	}
	if affected == 0 {
		return ErrHallNotFound
	}
	return nil
}
