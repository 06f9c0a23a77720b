package performances

import (
	"time"

	"curtaincall/internal/authors"
	"curtaincall/internal/genres"
	"curtaincall/internal/halls"
)

// PerformanceListItem is the flat listing row with related names resolved.
type PerformanceListItem struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
	BasePrice       float64   `json:"base_price"`
	AuthorName      string    `json:"author_name"`
	GenreName       string    `json:"genre_name"`
	HallName        string    `json:"hall_name"`
}

// PerformanceDetail carries full related entities plus ticket counts.
type PerformanceDetail struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Date            time.Time              `json:"date"`
	DurationMinutes int                    `json:"duration_minutes"`
	BasePrice       float64                `json:"base_price"`
	Author          *authors.AuthorResponse `json:"author"`
	Genre           *genres.GenreResponse   `json:"genre"`
	Hall            *halls.HallResponse     `json:"hall"`

	TotalTickets     int64 `json:"total_tickets"`
	SoldTickets      int64 `json:"sold_tickets"`
	AvailableTickets int64 `json:"available_tickets"`
}

func (p *Performance) ToListItem() PerformanceListItem {
	return PerformanceListItem{
		ID:              p.ID.String(),
		Title:           p.Title,
		Description:     p.Description,
		Date:            p.Date,
		DurationMinutes: p.DurationMinutes,
		BasePrice:       p.BasePrice,
		AuthorName:      p.Author.FullName,
		GenreName:       p.Genre.Name,
		HallName:        p.Hall.Name,
	}
}

func toListItems(performances []Performance) []PerformanceListItem {
	items := make([]PerformanceListItem, 0, len(performances))
	for i := range performances {
		items = append(items, performances[i].ToListItem())
	}
	return items
}
