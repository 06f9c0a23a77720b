package halls

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, hall *Hall) error
	GetByID(ctx context.Context, id uuid.UUID) (*Hall, error)
	GetAll(ctx context.Context) ([]HallWithCount, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	CountSeats(ctx context.Context, id uuid.UUID) (int64, error)
	CountPerformances(ctx context.Context, id uuid.UUID) (int64, error)
}

type HallWithCount struct {
	Hall
	PerformancesCount int
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, hall *Hall) error {
	return r.db.WithContext(ctx).Create(hall).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Hall, error) {
	var hall Hall
	err := r.db.WithContext(ctx).First(&hall, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hall, nil
}

func (r *repository) GetAll(ctx context.Context) ([]HallWithCount, error) {
	var rows []HallWithCount
	err := r.db.WithContext(ctx).
		Model(&Hall{}).
		Select("halls.*, (SELECT COUNT(*) FROM performances WHERE performances.hall_id = halls.id) AS performances_count").
		Order("name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Hall{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&Hall{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *repository) CountSeats(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("seats").Where("hall_id = ?", id).Count(&count).Error
	return count, err
}

func (r *repository) CountPerformances(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("performances").Where("hall_id = ?", id).Count(&count).Error
	return count, err
}
