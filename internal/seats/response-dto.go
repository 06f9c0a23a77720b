package seats

type SeatResponse struct {
	ID     string `json:"id"`
	HallID string `json:"hall_id"`
	Row    int    `json:"row"`
	Number int    `json:"number"`
	IsVIP  bool   `json:"is_vip"`
}

func (s *Seat) ToResponse() SeatResponse {
	return SeatResponse{
		ID:     s.ID.String(),
		HallID: s.HallID.String(),
		Row:    s.Row,
		Number: s.Number,
		IsVIP:  s.IsVIP,
	}
}

func ToResponses(seats []Seat) []SeatResponse {
	out := make([]SeatResponse, 0, len(seats))
	for i := range seats {
		out = append(out, seats[i].ToResponse())
	}
	return out
}
