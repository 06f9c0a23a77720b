package seats

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"curtaincall/internal/halls"
)

// Seat is unique within a hall by (row, number).
type Seat struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	HallID    uuid.UUID  `json:"hall_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_hall_row_number"`
	Hall      halls.Hall `json:"-" gorm:"foreignKey:HallID"`
	Row       int        `json:"row" gorm:"column:seat_row;not null;check:seat_row > 0;uniqueIndex:idx_hall_row_number"`
	Number    int        `json:"number" gorm:"not null;check:number > 0;uniqueIndex:idx_hall_row_number"`
	IsVIP     bool       `json:"is_vip" gorm:"column:is_vip;not null;default:false"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (s *Seat) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
