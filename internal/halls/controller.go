package halls

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"curtaincall/internal/shared/utils/response"
)

type Controller interface {
	CreateHall(c *gin.Context)
	GetHall(c *gin.Context)
	GetAllHalls(c *gin.Context)
	UpdateHall(c *gin.Context)
	DeleteHall(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateHall(c *gin.Context) {
	var req CreateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, response.ValidationErrors(err))
		return
	}

	hall, err := ctrl.service.CreateHall(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Hall created successfully", hall, nil)
}

func (ctrl *controller) GetHall(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid hall ID", nil, err.Error())
		return
	}

	hall, err := ctrl.service.GetHallByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrHallNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Hall retrieved successfully", hall, nil)
}

func (ctrl *controller) GetAllHalls(c *gin.Context) {
	items, err := ctrl.service.GetAllHalls(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Halls retrieved successfully", items, nil)
}

func (ctrl *controller) UpdateHall(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid hall ID", nil, err.Error())
		return
	}

	var req UpdateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, response.ValidationErrors(err))
		return
	}

	hall, err := ctrl.service.UpdateHall(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrHallNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Hall updated successfully", hall, nil)
}

func (ctrl *controller) DeleteHall(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid hall ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteHall(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrHallNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
		case errors.Is(err, ErrHallInUse):
			response.RespondJSON(c, "error", http.StatusConflict, err.Error(), nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Hall deleted successfully", nil, nil)
}
