package seats

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for seat data access
type Repository interface {
	Create(ctx context.Context, seat *Seat) error
	CreateBatch(ctx context.Context, seats []Seat) error
	GetByID(ctx context.Context, id uuid.UUID) (*Seat, error)
	GetByHallID(ctx context.Context, hallID uuid.UUID) ([]Seat, error)
	GetVIPByHallID(ctx context.Context, hallID uuid.UUID) ([]Seat, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	CountByHallID(ctx context.Context, hallID uuid.UUID) (int64, error)
	CountTickets(ctx context.Context, seatID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new seat repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, seat *Seat) error {
	return r.db.WithContext(ctx).Create(seat).Error
}

func (r *repository) CreateBatch(ctx context.Context, seats []Seat) error {
	return r.db.WithContext(ctx).CreateInBatches(seats, 200).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Seat, error) {
	var seat Seat
	err := r.db.WithContext(ctx).First(&seat, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *repository) GetByHallID(ctx context.Context, hallID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("hall_id = ?", hallID).
		Order("seat_row ASC, number ASC").
		Find(&seats).Error
	return seats, err
}

func (r *repository) GetVIPByHallID(ctx context.Context, hallID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("hall_id = ? AND is_vip = ?", hallID, true).
		Order("seat_row ASC, number ASC").
		Find(&seats).Error
	return seats, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&Seat{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *repository) CountByHallID(ctx context.Context, hallID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Seat{}).Where("hall_id = ?", hallID).Count(&count).Error
	return count, err
}

func (r *repository) CountTickets(ctx context.Context, seatID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("tickets").Where("seat_id = ?", seatID).Count(&count).Error
	return count, err
}
