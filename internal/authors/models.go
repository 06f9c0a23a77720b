package authors

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Author struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	FullName  string     `json:"full_name" gorm:"not null;size:200"`
	Biography string     `json:"biography" gorm:"type:text"`
	BirthDate *time.Time `json:"birth_date"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (a *Author) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
