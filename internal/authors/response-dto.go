package authors

import "time"

type AuthorResponse struct {
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	Biography string     `json:"biography"`
	BirthDate *time.Time `json:"birth_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AuthorListItem carries the performance count shown on catalog listings.
type AuthorListItem struct {
	ID                string     `json:"id"`
	FullName          string     `json:"full_name"`
	BirthDate         *time.Time `json:"birth_date"`
	PerformancesCount int        `json:"performances_count"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID.String(),
		FullName:  a.FullName,
		Biography: a.Biography,
		BirthDate: a.BirthDate,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
