package performances

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"curtaincall/internal/authors"
	"curtaincall/internal/genres"
	"curtaincall/internal/halls"
)

type Performance struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title           string    `json:"title" gorm:"not null;size:200"`
	Description     string    `json:"description" gorm:"type:text"`
	Date            time.Time `json:"date" gorm:"column:performance_date;not null;index"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null;check:duration_minutes > 0"`
	BasePrice       float64   `json:"base_price" gorm:"not null;check:base_price >= 0"`

	AuthorID uuid.UUID      `json:"author_id" gorm:"type:uuid;not null;index"`
	Author   authors.Author `json:"-" gorm:"foreignKey:AuthorID"`
	GenreID  uuid.UUID      `json:"genre_id" gorm:"type:uuid;not null;index"`
	Genre    genres.Genre   `json:"-" gorm:"foreignKey:GenreID"`
	HallID   uuid.UUID      `json:"hall_id" gorm:"type:uuid;not null;index"`
	Hall     halls.Hall     `json:"-" gorm:"foreignKey:HallID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (p *Performance) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
