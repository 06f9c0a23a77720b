package authors

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for author data access
type Repository interface {
	Create(ctx context.Context, author *Author) error
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	GetAll(ctx context.Context) ([]AuthorWithCount, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	CountPerformances(ctx context.Context, id uuid.UUID) (int64, error)
}

// AuthorWithCount is the listing projection with the performance count.
type AuthorWithCount struct {
	Author
	PerformancesCount int
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new author repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, author *Author) error {
	return r.db.WithContext(ctx).Create(author).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Author, error) {
	var author Author
	err := r.db.WithContext(ctx).First(&author, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *repository) GetAll(ctx context.Context) ([]AuthorWithCount, error) {
	var rows []AuthorWithCount
	err := r.db.WithContext(ctx).
		Model(&Author{}).
		Select("authors.*, (SELECT COUNT(*) FROM performances WHERE performances.author_id = authors.id) AS performances_count").
		Order("full_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Author{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&Author{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *repository) CountPerformances(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("performances").Where("author_id = ?", id).Count(&count).Error
	return count, err
}
