package tickets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"curtaincall/internal/shared/utils/response"
)

type Controller interface {
	GenerateTickets(c *gin.Context)
	SellTicket(c *gin.Context)
	ReturnTicket(c *gin.Context)
	GetTicket(c *gin.Context)
	GetTicketsForPerformance(c *gin.Context)
	GetAvailableTickets(c *gin.Context)
	GetSoldTickets(c *gin.Context)
	GetVIPTickets(c *gin.Context)
	GetTicketsByRow(c *gin.Context)
	GetTicketsByPriceRange(c *gin.Context)
	GetAvailableSeats(c *gin.Context)
	GetSeatingPlan(c *gin.Context)
	GetStatistics(c *gin.Context)
	GetOverallStatistics(c *gin.Context)
	DeleteTicket(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GenerateTickets(c *gin.Context) {
	performanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return
	}

	result, err := ctrl.service.GenerateTickets(c.Request.Context(), performanceID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPerformanceNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
		case errors.Is(err, ErrTicketsAlreadyGenerated):
			response.RespondJSON(c, "error", http.StatusConflict, err.Error(), nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Tickets generated successfully", result, nil)
}

func (ctrl *controller) SellTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, err.Error())
		return
	}

	sold, err := ctrl.service.SellTicket(c.Request.Context(), id)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	result := SaleResult{TicketID: id.String(), Success: sold}
	if !sold {
		response.RespondJSON(c, "error", http.StatusConflict, "Ticket could not be sold", result, nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Ticket sold successfully", result, nil)
}

func (ctrl *controller) ReturnTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, err.Error())
		return
	}

	returned, err := ctrl.service.ReturnTicket(c.Request.Context(), id)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	result := SaleResult{TicketID: id.String(), Success: returned}
	if !returned {
		response.RespondJSON(c, "error", http.StatusConflict, "Ticket could not be returned", result, nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Ticket returned successfully", result, nil)
}

func (ctrl *controller) GetTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, err.Error())
		return
	}

	ticket, err := ctrl.service.GetTicketByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket retrieved successfully", ticket, nil)
}

func (ctrl *controller) GetTicketsForPerformance(c *gin.Context) {
	performanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return
	}

	tickets, err := ctrl.service.GetTicketsForPerformance(c.Request.Context(), performanceID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Tickets retrieved successfully", tickets, nil)
}

func (ctrl *controller) GetAvailableTickets(c *gin.Context) {
	performanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return
	}

	tickets, err := ctrl.service.GetAvailableTicketsForPerformance(c.Request.Context(), performanceID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Available tickets retrieved successfully", tickets, nil)
}

func (ctrl *controller) GetSoldTickets(c *gin.Context) {
	performanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return
	}

	tickets, err := ctrl.service.GetSoldTicketsForPerformance(c.Request.Context(), performanceID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Sold tickets retrieved successfully", tickets, nil)
}

func (ctrl *controller) GetVIPTickets(c *gin.Context) {
	performanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return
	}

	tickets, err := ctrl.service.GetVIPTicketsForPerformance(c.Request.Context(), performanceID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "VIP tickets retrieved successfully", tickets, nil)
}

func (ctrl *controller) GetTicketsByRow(c *gin.Context) {
	performanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return
	}

	row, err := strconv.Atoi(c.Param("row"))
	if err != nil || row < 1 {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid row number", nil, nil)
		return
	}

	tickets, err := ctrl.service.GetTicketsByRow(c.Request.Context(), performanceID, row)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Tickets retrieved successfully", tickets, nil)
}

func (ctrl *controller) GetTicketsByPriceRange(c *gin.Context) {
	performanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return
	}

	minPrice, err := parsePriceQuery(c, "min_price")
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid min_price", nil, nil)
		return
	}
	maxPrice, err := parsePriceQuery(c, "max_price")
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid max_price", nil, nil)
		return
	}

	tickets, err := ctrl.service.GetTicketsByPriceRange(c.Request.Context(), performanceID, minPrice, maxPrice)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Tickets retrieved successfully", tickets, nil)
}

func (ctrl *controller) GetAvailableSeats(c *gin.Context) {
	performanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return
	}

	availableSeats, err := ctrl.service.GetAvailableSeats(c.Request.Context(), performanceID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Available seats retrieved successfully", availableSeats, nil)
}

func (ctrl *controller) GetSeatingPlan(c *gin.Context) {
	performanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return
	}

	plan, err := ctrl.service.GetSeatingPlan(c.Request.Context(), performanceID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seating plan retrieved successfully", plan, nil)
}

func (ctrl *controller) GetStatistics(c *gin.Context) {
	performanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return
	}

	stats, err := ctrl.service.GetStatistics(c.Request.Context(), performanceID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Statistics retrieved successfully", stats, nil)
}

func (ctrl *controller) GetOverallStatistics(c *gin.Context) {
	stats, err := ctrl.service.GetOverallStatistics(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Statistics retrieved successfully", stats, nil)
}

func (ctrl *controller) DeleteTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteTicket(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket deleted successfully", nil, nil)
}

func parsePriceQuery(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
