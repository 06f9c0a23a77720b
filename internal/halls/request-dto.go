package halls

type CreateHallRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=200"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	Description string `json:"description" binding:"max=2000"`
}

type UpdateHallRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=200"`
	Capacity    *int    `json:"capacity" binding:"omitempty,gt=0"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}
