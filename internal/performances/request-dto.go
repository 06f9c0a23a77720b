package performances

import "time"

type CreatePerformanceRequest struct {
	Title           string    `json:"title" binding:"required,min=2,max=200"`
	Description     string    `json:"description" binding:"max=2000"`
	Date            time.Time `json:"date" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,gt=0"`
	BasePrice       float64   `json:"base_price" binding:"gte=0"`
	AuthorID        string    `json:"author_id" binding:"required,uuid"`
	GenreID         string    `json:"genre_id" binding:"required,uuid"`
	HallID          string    `json:"hall_id" binding:"required,uuid"`
}

type UpdatePerformanceRequest struct {
	Title           *string    `json:"title" binding:"omitempty,min=2,max=200"`
	Description     *string    `json:"description" binding:"omitempty,max=2000"`
	Date            *time.Time `json:"date"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,gt=0"`
	BasePrice       *float64   `json:"base_price" binding:"omitempty,gte=0"`
}
