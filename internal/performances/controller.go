package performances

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"curtaincall/internal/shared/utils/response"
)

type Controller interface {
	CreatePerformance(c *gin.Context)
	GetPerformance(c *gin.Context)
	GetAllPerformances(c *gin.Context)
	GetUpcomingPerformances(c *gin.Context)
	GetPerformancesByGenre(c *gin.Context)
	GetPerformancesByAuthor(c *gin.Context)
	GetPerformancesByHall(c *gin.Context)
	UpdatePerformance(c *gin.Context)
	DeletePerformance(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreatePerformance(c *gin.Context) {
	var req CreatePerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, response.ValidationErrors(err))
		return
	}

	performance, err := ctrl.service.CreatePerformance(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAuthorNotFound), errors.Is(err, ErrGenreNotFound), errors.Is(err, ErrHallNotFound):
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Performance created successfully", performance, nil)
}

func (ctrl *controller) GetPerformance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return
	}

	performance, err := ctrl.service.GetPerformanceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPerformanceNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Performance retrieved successfully", performance, nil)
}

func (ctrl *controller) GetAllPerformances(c *gin.Context) {
	items, err := ctrl.service.GetAllPerformances(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Performances retrieved successfully", items, nil)
}

func (ctrl *controller) GetUpcomingPerformances(c *gin.Context) {
	items, err := ctrl.service.GetUpcomingPerformances(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Upcoming performances retrieved successfully", items, nil)
}

func (ctrl *controller) GetPerformancesByGenre(c *gin.Context) {
	genreID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid genre ID", nil, err.Error())
		return
	}

	items, err := ctrl.service.GetPerformancesByGenre(c.Request.Context(), genreID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Performances retrieved successfully", items, nil)
}

func (ctrl *controller) GetPerformancesByAuthor(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid author ID", nil, err.Error())
		return
	}

	items, err := ctrl.service.GetPerformancesByAuthor(c.Request.Context(), authorID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Performances retrieved successfully", items, nil)
}

func (ctrl *controller) GetPerformancesByHall(c *gin.Context) {
	hallID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid hall ID", nil, err.Error())
		return
	}

	items, err := ctrl.service.GetPerformancesByHall(c.Request.Context(), hallID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Performances retrieved successfully", items, nil)
}

func (ctrl *controller) UpdatePerformance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return
	}

	var req UpdatePerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, response.ValidationErrors(err))
		return
	}

	performance, err := ctrl.service.UpdatePerformance(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrPerformanceNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Performance updated successfully", performance, nil)
}

func (ctrl *controller) DeletePerformance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeletePerformance(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrPerformanceNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
		case errors.Is(err, ErrHasTickets):
			response.RespondJSON(c, "error", http.StatusConflict, err.Error(), nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Performance deleted successfully", nil, nil)
}
