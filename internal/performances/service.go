package performances

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPerformanceNotFound = errors.New("performance not found")
	ErrAuthorNotFound      = errors.New("author not found")
	ErrGenreNotFound       = errors.New("genre not found")
	ErrHallNotFound        = errors.New("hall not found")
	ErrHasTickets          = errors.New("performance still has tickets")
)

// Service interface defines the contract for performance business logic
type Service interface {
	CreatePerformance(ctx context.Context, req CreatePerformanceRequest) (*PerformanceDetail, error)
	GetPerformanceByID(ctx context.Context, id uuid.UUID) (*PerformanceDetail, error)
	GetAllPerformances(ctx context.Context) ([]PerformanceListItem, error)
	GetUpcomingPerformances(ctx context.Context) ([]PerformanceListItem, error)
	GetPerformancesByGenre(ctx context.Context, genreID uuid.UUID) ([]PerformanceListItem, error)
	GetPerformancesByAuthor(ctx context.Context, authorID uuid.UUID) ([]PerformanceListItem, error)
	GetPerformancesByHall(ctx context.Context, hallID uuid.UUID) ([]PerformanceListItem, error)
	UpdatePerformance(ctx context.Context, id uuid.UUID, req UpdatePerformanceRequest) (*PerformanceDetail, error)
	DeletePerformance(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService creates a new performance service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePerformance(ctx context.Context, req CreatePerformanceRequest) (*PerformanceDetail, error) {
	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}
	genreID, err := uuid.Parse(req.GenreID)
	if err != nil {
		return nil, fmt.Errorf("invalid genre id: %w", err)
	}
	hallID, err := uuid.Parse(req.HallID)
	if err != nil {
		return nil, fmt.Errorf("invalid hall id: %w", err)
	}

	if ok, err := s.repo.AuthorExists(ctx, authorID); err != nil {
		return nil, fmt.Errorf("failed to check author: %w", err)
	} else if !ok {
		return nil, ErrAuthorNotFound
	}
	if ok, err := s.repo.GenreExists(ctx, genreID); err != nil {
		return nil, fmt.Errorf("failed to check genre: %w", err)
	} else if !ok {
		return nil, ErrGenreNotFound
	}
	if ok, err := s.repo.HallExists(ctx, hallID); err != nil {
		return nil, fmt.Errorf("failed to check hall: %w", err)
	} else if !ok {
		return nil, ErrHallNotFound
	}

	performance := &Performance{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		BasePrice:       req.BasePrice,
		AuthorID:        authorID,
		GenreID:         genreID,
		HallID:          hallID,
	}
	if err := s.repo.Create(ctx, performance); err != nil {
		return nil, fmt.Errorf("failed to create performance: %w", err)
	}

	return s.GetPerformanceByID(ctx, performance.ID)
}

func (s *service) GetPerformanceByID(ctx context.Context, id uuid.UUID) (*PerformanceDetail, error) {
	performance, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	total, sold, err := s.repo.CountTickets(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	return &PerformanceDetail{
		ID:               performance.ID.String(),
		Title:            performance.Title,
		Description:      performance.Description,
		Date:             performance.Date,
		DurationMinutes:  performance.DurationMinutes,
		BasePrice:        performance.BasePrice,
		Author:           performance.Author.ToResponse(),
		Genre:            performance.Genre.ToResponse(),
		Hall:             performance.Hall.ToResponse(0),
		TotalTickets:     total,
		SoldTickets:      sold,
		AvailableTickets: total - sold,
	}, nil
}

func (s *service) GetAllPerformances(ctx context.Context) ([]PerformanceListItem, error) {
	performances, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list performances: %w", err)
	}
	return toListItems(performances), nil
}

func (s *service) GetUpcomingPerformances(ctx context.Context) ([]PerformanceListItem, error) {
	performances, err := s.repo.GetUpcoming(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming performances: %w", err)
	}
	return toListItems(performances), nil
}

func (s *service) GetPerformancesByGenre(ctx context.Context, genreID uuid.UUID) ([]PerformanceListItem, error) {
	performances, err := s.repo.GetByGenreID(ctx, genreID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performances by genre: %w", err)
	}
	return toListItems(performances), nil
}

func (s *service) GetPerformancesByAuthor(ctx context.Context, authorID uuid.UUID) ([]PerformanceListItem, error) {
	performances, err := s.repo.GetByAuthorID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performances by author: %w", err)
	}
	return toListItems(performances), nil
}

func (s *service) GetPerformancesByHall(ctx context.Context, hallID uuid.UUID) ([]PerformanceListItem, error) {
	performances, err := s.repo.GetByHallID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performances by hall: %w", err)
	}
	return toListItems(performances), nil
}

func (s *service) UpdatePerformance(ctx context.Context, id uuid.UUID, req UpdatePerformanceRequest) (*PerformanceDetail, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Date != nil {
		updates["performance_date"] = *req.Date
	}
	if req.DurationMinutes != nil {
		updates["duration_minutes"] = *req.DurationMinutes
	}
	if req.BasePrice != nil {
		updates["base_price"] = *req.BasePrice
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update performance: %w", err)
		}
	}

	return s.GetPerformanceByID(ctx, id)
}

// DeletePerformance is restricted while tickets exist for the performance.
func (s *service) DeletePerformance(ctx context.Context, id uuid.UUID) error {
	total, _, err := s.repo.CountTickets(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count tickets: %w", err)
	}
	if total > 0 {
		return ErrHasTickets
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete performance: %w", err)
	}
	if affected == 0 {
		return ErrPerformanceNotFound
	}
	return nil
}
