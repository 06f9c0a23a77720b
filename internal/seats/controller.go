package seats

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"curtaincall/internal/shared/utils/response"
)

type Controller interface {
	CreateSeat(c *gin.Context)
	CreateSeatBlock(c *gin.Context)
	GetHallSeats(c *gin.Context)
	GetHallVIPSeats(c *gin.Context)
	DeleteSeat(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateSeat(c *gin.Context) {
	hallID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid hall ID", nil, err.Error())
		return
	}

	var req CreateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, response.ValidationErrors(err))
		return
	}

	seat, err := ctrl.service.CreateSeat(c.Request.Context(), hallID, req)
	if err != nil {
		if errors.Is(err, ErrHallNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Seat created successfully", seat, nil)
}

func (ctrl *controller) CreateSeatBlock(c *gin.Context) {
	hallID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid hall ID", nil, err.Error())
		return
	}

	var req CreateSeatBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, response.ValidationErrors(err))
		return
	}

	seats, err := ctrl.service.CreateSeatBlock(c.Request.Context(), hallID, req)
	if err != nil {
		if errors.Is(err, ErrHallNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Seat block created successfully", seats, nil)
}

func (ctrl *controller) GetHallSeats(c *gin.Context) {
	hallID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid hall ID", nil, err.Error())
		return
	}

	seats, err := ctrl.service.GetSeatsForHall(c.Request.Context(), hallID)
	if err != nil {
		if errors.Is(err, ErrHallNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seats retrieved successfully", seats, nil)
}

func (ctrl *controller) GetHallVIPSeats(c *gin.Context) {
	hallID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid hall ID", nil, err.Error())
		return
	}

	seats, err := ctrl.service.GetVIPSeatsForHall(c.Request.Context(), hallID)
	if err != nil {
		if errors.Is(err, ErrHallNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "VIP seats retrieved successfully", seats, nil)
}

func (ctrl *controller) DeleteSeat(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid seat ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteSeat(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrSeatNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
		case errors.Is(err, ErrSeatHasTickets):
			response.RespondJSON(c, "error", http.StatusConflict, err.Error(), nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat deleted successfully", nil, nil)
}
