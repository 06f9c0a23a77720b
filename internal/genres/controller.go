package genres

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"curtaincall/internal/shared/utils/response"
)

type Controller interface {
	CreateGenre(c *gin.Context)
	GetGenre(c *gin.Context)
	GetAllGenres(c *gin.Context)
	UpdateGenre(c *gin.Context)
	DeleteGenre(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateGenre(c *gin.Context) {
	var req CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, response.ValidationErrors(err))
		return
	}

	genre, err := ctrl.service.CreateGenre(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Genre created successfully", genre, nil)
}

func (ctrl *controller) GetGenre(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid genre ID", nil, err.Error())
		return
	}

	genre, err := ctrl.service.GetGenreByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrGenreNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Genre retrieved successfully", genre, nil)
}

func (ctrl *controller) GetAllGenres(c *gin.Context) {
	items, err := ctrl.service.GetAllGenres(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Genres retrieved successfully", items, nil)
}

func (ctrl *controller) UpdateGenre(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid genre ID", nil, err.Error())
		return
	}

	var req UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, response.ValidationErrors(err))
		return
	}

	genre, err := ctrl.service.UpdateGenre(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrGenreNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Genre updated successfully", genre, nil)
}

func (ctrl *controller) DeleteGenre(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid genre ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteGenre(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrGenreNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
		case errors.Is(err, ErrGenreInUse):
			response.RespondJSON(c, "error", http.StatusConflict, err.Error(), nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Genre deleted successfully", nil, nil)
}
