package tickets

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"curtaincall/internal/performances"
	"curtaincall/internal/seats"
)

// Ticket price is fixed at generation time and never recomputed.
// IsSold and PurchasedAt move together: a sold ticket always carries a
// purchase timestamp, a returned one carries none.
type Ticket struct {
	ID            uuid.UUID                `json:"id" gorm:"type:uuid;primaryKey"`
	PerformanceID uuid.UUID                `json:"performance_id" gorm:"type:uuid;not null;index"`
	Performance   performances.Performance `json:"-" gorm:"foreignKey:PerformanceID"`
	SeatID        uuid.UUID                `json:"seat_id" gorm:"type:uuid;not null;index"`
	Seat          seats.Seat               `json:"-" gorm:"foreignKey:SeatID"`
	Price         float64                  `json:"price" gorm:"not null;check:price >= 0"`
	IsSold        bool                     `json:"is_sold" gorm:"not null;default:false;index"`
	PurchasedAt   *time.Time               `json:"purchased_at"`
	CreatedAt     time.Time                `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time                `json:"updated_at" gorm:"autoUpdateTime"`
}

// VIP seats are priced at 1.5x the performance base price.
const vipPriceMultiplier = 1.5

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
