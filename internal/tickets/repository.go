package tickets

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"curtaincall/internal/seats"
)

// Repository interface for ticket data access. Sell and return are single
// conditional updates: the WHERE clause carries the state guard so two
// concurrent sales of the same ticket cannot both succeed.
type Repository interface {
	CreateBatch(ctx context.Context, batch []Ticket) error
	GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error)
	GetByPerformanceID(ctx context.Context, performanceID uuid.UUID) ([]Ticket, error)
	GetAvailableByPerformanceID(ctx context.Context, performanceID uuid.UUID) ([]Ticket, error)
	GetSoldByPerformanceID(ctx context.Context, performanceID uuid.UUID) ([]Ticket, error)
	GetVIPByPerformanceID(ctx context.Context, performanceID uuid.UUID) ([]Ticket, error)
	GetByRow(ctx context.Context, performanceID uuid.UUID, row int) ([]Ticket, error)
	GetByPriceRange(ctx context.Context, performanceID uuid.UUID, minPrice, maxPrice *float64) ([]Ticket, error)
	GetAvailableSeats(ctx context.Context, performanceID uuid.UUID) ([]seats.Seat, error)
	CountByPerformanceID(ctx context.Context, performanceID uuid.UUID) (int64, error)
	MarkSold(ctx context.Context, id uuid.UUID, soldAt time.Time) (int64, error)
	MarkReturned(ctx context.Context, id uuid.UUID) (int64, error)
	Aggregate(ctx context.Context, performanceID *uuid.UUID) (*Statistics, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new ticket repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBatch(ctx context.Context, batch []Ticket) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(batch, 500).Error
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	var ticket Ticket
	err := r.db.WithContext(ctx).
		Preload("Seat").
		Preload("Performance").
		Preload("Performance.Author").
		Preload("Performance.Genre").
		Preload("Performance.Hall").
		First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// performanceTickets returns tickets for a performance ordered by seat
// position, with the seat preloaded.
func (r *repository) performanceTickets(ctx context.Context, performanceID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Seat").
		Joins("JOIN seats ON seats.id = tickets.seat_id").
		Where("tickets.performance_id = ?", performanceID).
		Order("seats.seat_row ASC, seats.number ASC")
}

func (r *repository) GetByPerformanceID(ctx context.Context, performanceID uuid.UUID) ([]Ticket, error) {
	var list []Ticket
	err := r.performanceTickets(ctx, performanceID).Find(&list).Error
	return list, err
}

func (r *repository) GetAvailableByPerformanceID(ctx context.Context, performanceID uuid.UUID) ([]Ticket, error) {
	var list []Ticket
	err := r.performanceTickets(ctx, performanceID).
		Where("tickets.is_sold = ?", false).
		Find(&list).Error
	return list, err
}

func (r *repository) GetSoldByPerformanceID(ctx context.Context, performanceID uuid.UUID) ([]Ticket, error) {
	var list []Ticket
	err := r.performanceTickets(ctx, performanceID).
		Where("tickets.is_sold = ?", true).
		Find(&list).Error
	return list, err
}

func (r *repository) GetVIPByPerformanceID(ctx context.Context, performanceID uuid.UUID) ([]Ticket, error) {
	var list []Ticket
	err := r.performanceTickets(ctx, performanceID).
		Where("seats.is_vip = ?", true).
		Find(&list).Error
	return list, err
}

func (r *repository) GetByRow(ctx context.Context, performanceID uuid.UUID, row int) ([]Ticket, error) {
	var list []Ticket
	err := r.performanceTickets(ctx, performanceID).
		Where("seats.seat_row = ?", row).
		Find(&list).Error
	return list, err
}

func (r *repository) GetByPriceRange(ctx context.Context, performanceID uuid.UUID, minPrice, maxPrice *float64) ([]Ticket, error) {
	query := r.performanceTickets(ctx, performanceID)
	if minPrice != nil {
		query = query.Where("tickets.price >= ?", *minPrice)
	}
	if maxPrice != nil {
		query = query.Where("tickets.price <= ?", *maxPrice)
	}

	var list []Ticket
	err := query.Find(&list).Error
	return list, err
}

func (r *repository) GetAvailableSeats(ctx context.Context, performanceID uuid.UUID) ([]seats.Seat, error) {
	var available []seats.Seat
	err := r.db.WithContext(ctx).
		Table("seats").
		Joins("JOIN tickets ON tickets.seat_id = seats.id").
		Where("tickets.performance_id = ? AND tickets.is_sold = ?", performanceID, false).
		Order("seats.seat_row ASC, seats.number ASC").
		Find(&available).Error
	return available, err
}

func (r *repository) CountByPerformanceID(ctx context.Context, performanceID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Ticket{}).Where("performance_id = ?", performanceID).Count(&count).Error
	return count, err
}

func (r *repository) MarkSold(ctx context.Context, id uuid.UUID, soldAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("id = ? AND is_sold = ?", id, false).
		Updates(map[string]interface{}{
			"is_sold":      true,
			"purchased_at": soldAt,
		})
	return result.RowsAffected, result.Error
}

func (r *repository) MarkReturned(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("id = ? AND is_sold = ?", id, true).
		Updates(map[string]interface{}{
			"is_sold":      false,
			"purchased_at": nil,
		})
	return result.RowsAffected, result.Error
}

func (r *repository) Aggregate(ctx context.Context, performanceID *uuid.UUID) (*Statistics, error) {
	var row struct {
		Total    int64
		Sold     int64
		Revenue  float64
		AvgPrice float64
	}

	query := r.db.WithContext(ctx).
		Table("tickets").
		Select("COUNT(*) AS total, " +
			"COALESCE(SUM(CASE WHEN is_sold THEN 1 ELSE 0 END), 0) AS sold, " +
			"COALESCE(SUM(CASE WHEN is_sold THEN price ELSE 0 END), 0) AS revenue, " +
			"COALESCE(AVG(price), 0) AS avg_price")
	if performanceID != nil {
		query = query.Where("performance_id = ?", *performanceID)
	}
	if err := query.Scan(&row).Error; err != nil {
		return nil, err
	}

	return &Statistics{
		TotalTickets:       row.Total,
		SoldTickets:        row.Sold,
		AvailableTickets:   row.Total - row.Sold,
		TotalRevenue:       row.Revenue,
		AverageTicketPrice: row.AvgPrice,
	}, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&Ticket{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
