package seats

type CreateSeatRequest struct {
	Row    int  `json:"row" binding:"required,gt=0,lte=100"`
	Number int  `json:"number" binding:"required,gt=0,lte=100"`
	IsVIP  bool `json:"is_vip"`
}

// CreateSeatBlockRequest lays out a rectangular block of seats, with an
// optional set of rows flagged as VIP.
type CreateSeatBlockRequest struct {
	Rows        int   `json:"rows" binding:"required,gt=0,lte=100"`
	SeatsPerRow int   `json:"seats_per_row" binding:"required,gt=0,lte=100"`
	VIPRows     []int `json:"vip_rows" binding:"omitempty,dive,gt=0"`
}
