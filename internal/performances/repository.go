package performances

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"curtaincall/internal/authors"
	"curtaincall/internal/genres"
	"curtaincall/internal/halls"
)

// Repository interface for performance data access
type Repository interface {
	Create(ctx context.Context, performance *Performance) error
	GetByID(ctx context.Context, id uuid.UUID) (*Performance, error)
	GetAll(ctx context.Context) ([]Performance, error)
	GetUpcoming(ctx context.Context, after time.Time) ([]Performance, error)
	GetByGenreID(ctx context.Context, genreID uuid.UUID) ([]Performance, error)
	GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]Performance, error)
	GetByHallID(ctx context.Context, hallID uuid.UUID) ([]Performance, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	AuthorExists(ctx context.Context, id uuid.UUID) (bool, error)
	GenreExists(ctx context.Context, id uuid.UUID) (bool, error)
	HallExists(ctx context.Context, id uuid.UUID) (bool, error)
	CountTickets(ctx context.Context, performanceID uuid.UUID) (total int64, sold int64, err error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new performance repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genre").
		Preload("Hall")
}

func (r *repository) Create(ctx context.Context, performance *Performance) error {
	return r.db.WithContext(ctx).Create(performance).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Performance, error) {
	var performance Performance
	err := r.withDetails(ctx).First(&performance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &performance, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Performance, error) {
	var performances []Performance
	err := r.withDetails(ctx).Order("performance_date ASC").Find(&performances).Error
	return performances, err
}

func (r *repository) GetUpcoming(ctx context.Context, after time.Time) ([]Performance, error) {
	var performances []Performance
	err := r.withDetails(ctx).
		Where("performance_date > ?", after).
		Order("performance_date ASC").
		Find(&performances).Error
	return performances, err
}

func (r *repository) GetByGenreID(ctx context.Context, genreID uuid.UUID) ([]Performance, error) {
	var performances []Performance
	err := r.withDetails(ctx).
		Where("genre_id = ?", genreID).
		Order("performance_date ASC").
		Find(&performances).Error
	return performances, err
}

func (r *repository) GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]Performance, error) {
	var performances []Performance
	err := r.withDetails(ctx).
		Where("author_id = ?", authorID).
		Order("performance_date ASC").
		Find(&performances).Error
	return performances, err
}

func (r *repository) GetByHallID(ctx context.Context, hallID uuid.UUID) ([]Performance, error) {
	var performances []Performance
	err := r.withDetails(ctx).
		Where("hall_id = ?", hallID).
		Order("performance_date ASC").
		Find(&performances).Error
	return performances, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Performance{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&Performance{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *repository) AuthorExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&authors.Author{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) GenreExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&genres.Genre{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) HallExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&halls.Hall{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) CountTickets(ctx context.Context, performanceID uuid.UUID) (int64, int64, error) {
	var total, sold int64
	if err := r.db.WithContext(ctx).Table("tickets").Where("performance_id = ?", performanceID).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Table("tickets").Where("performance_id = ? AND is_sold = ?", performanceID, true).Count(&sold).Error; err != nil {
		return 0, 0, err
	}
	return total, sold, nil
}
