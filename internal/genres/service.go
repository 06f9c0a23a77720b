package genres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGenreNotFound = errors.New("genre not found")
	ErrGenreInUse    = errors.New("genre still has performances")
)

type Service interface {
	CreateGenre(ctx context.Context, req CreateGenreRequest) (*GenreResponse, error)
	GetGenreByID(ctx context.Context, id uuid.UUID) (*GenreResponse, error)
	GetAllGenres(ctx context.Context) ([]GenreListItem, error)
	UpdateGenre(ctx context.Context, id uuid.UUID, req UpdateGenreRequest) (*GenreResponse, error)
	DeleteGenre(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateGenre(ctx context.Context, req CreateGenreRequest) (*GenreResponse, error) {
	genre := &Genre{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, genre); err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return genre.ToResponse(), nil
}

func (s *service) GetGenreByID(ctx context.Context, id uuid.UUID) (*GenreResponse, error) {
	genre, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}
	return genre.ToResponse(), nil
}

func (s *service) GetAllGenres(ctx context.Context) ([]GenreListItem, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}

	items := make([]GenreListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, GenreListItem{
			ID:                row.ID.String(),
			Name:              row.Name,
			Description:       row.Description,
			PerformancesCount: row.PerformancesCount,
		})
	}
	return items, nil
}

func (s *service) UpdateGenre(ctx context.Context, id uuid.UUID, req UpdateGenreRequest) (*GenreResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update genre: %w", err)
		}
	}

	genre, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload genre: %w", err)
	}
	return genre.ToResponse(), nil
}

func (s *service) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.CountPerformances(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count performances: %w", err)
	}
	if count > 0 {
		return ErrGenreInUse
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}
	if affected == 0 {
		return ErrGenreNotFound
	}
	return nil
}
