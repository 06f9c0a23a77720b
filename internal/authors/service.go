package authors

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAuthorNotFound    = errors.New("author not found")
	ErrAuthorHasWorkload = errors.New("author still has performances")
)

// Service interface defines the contract for author business logic
type Service interface {
	CreateAuthor(ctx context.Context, req CreateAuthorRequest) (*AuthorResponse, error)
	GetAuthorByID(ctx context.Context, id uuid.UUID) (*AuthorResponse, error)
	GetAllAuthors(ctx context.Context) ([]AuthorListItem, error)
	UpdateAuthor(ctx context.Context, id uuid.UUID, req UpdateAuthorRequest) (*AuthorResponse, error)
	DeleteAuthor(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService creates a new author service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateAuthor(ctx context.Context, req CreateAuthorRequest) (*AuthorResponse, error) {
	author := &Author{
		FullName:  req.FullName,
		Biography: req.Biography,
		BirthDate: req.BirthDate,
	}
	if err := s.repo.Create(ctx, author); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return author.ToResponse(), nil
}

func (s *service) GetAuthorByID(ctx context.Context, id uuid.UUID) (*AuthorResponse, error) {
	author, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return author.ToResponse(), nil
}

func (s *service) GetAllAuthors(ctx context.Context) ([]AuthorListItem, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	items := make([]AuthorListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, AuthorListItem{
			ID:                row.ID.String(),
			FullName:          row.FullName,
			BirthDate:         row.BirthDate,
			PerformancesCount: row.PerformancesCount,
		})
	}
	return items, nil
}

func (s *service) UpdateAuthor(ctx context.Context, id uuid.UUID, req UpdateAuthorRequest) (*AuthorResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Biography != nil {
		updates["biography"] = *req.Biography
	}
	if req.BirthDate != nil {
		updates["birth_date"] = *req.BirthDate
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update author: %w", err)
		}
	}

	author, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload author: %w", err)
	}
	return author.ToResponse(), nil
}

func (s *service) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.CountPerformances(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count performances: %w", err)
	}
	if count > 0 {
		return ErrAuthorHasWorkload
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if affected == 0 {
		return ErrAuthorNotFound
	}
	return nil
}
