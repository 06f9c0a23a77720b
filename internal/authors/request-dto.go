package authors

import "time"

type CreateAuthorRequest struct {
	FullName  string     `json:"full_name" binding:"required,min=2,max=200"`
	Biography string     `json:"biography" binding:"max=2000"`
	BirthDate *time.Time `json:"birth_date"`
}

type UpdateAuthorRequest struct {
	FullName  *string    `json:"full_name" binding:"omitempty,min=2,max=200"`
	Biography *string    `json:"biography" binding:"omitempty,max=2000"`
	BirthDate *time.Time `json:"birth_date"`
}
