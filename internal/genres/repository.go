package genres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, genre *Genre) error
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)
	GetAll(ctx context.Context) ([]GenreWithCount, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	CountPerformances(ctx context.Context, id uuid.UUID) (int64, error)
}

type GenreWithCount struct {
	Genre
	PerformancesCount int
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, genre *Genre) error {
	return r.db.WithContext(ctx).Create(genre).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Genre, error) {
	var genre Genre
	err := r.db.WithContext(ctx).First(&genre, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *repository) GetAll(ctx context.Context) ([]GenreWithCount, error) {
	var rows []GenreWithCount
	err := r.db.WithContext(ctx).
		Model(&Genre{}).
		Select("genres.*, (SELECT COUNT(*) FROM performances WHERE performances.genre_id = genres.id) AS performances_count").
		Order("name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Genre{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&Genre{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *repository) CountPerformances(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("performances").Where("genre_id = ?", id).Count(&count).Error
	return count, err
}
