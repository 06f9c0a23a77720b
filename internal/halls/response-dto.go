package halls

import "time"

type HallResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	SeatCount   int64     `json:"seat_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type HallListItem struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Capacity          int    `json:"capacity"`
	PerformancesCount int    `json:"performances_count"`
}

func (h *Hall) ToResponse(seatCount int64) *HallResponse {
	return &HallResponse{
		ID:          h.ID.String(),
		Name:        h.Name,
		Capacity:    h.Capacity,
		Description: h.Description,
		SeatCount:   seatCount,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}
