package tickets

import "github.com/gin-gonic/gin"

func SetupTicketRoutes(router *gin.RouterGroup, controller Controller) {
	tickets := router.Group("/tickets")
	{
		tickets.GET("/:id", controller.GetTicket)
		tickets.POST("/:id/sell", controller.SellTicket)
		tickets.POST("/:id/return", controller.ReturnTicket)
		tickets.DELETE("/:id", controller.DeleteTicket)
	}

	// Inventory views hang off the owning performance
	performances := router.Group("/performances/:id")
	{
		performances.POST("/tickets/generate", controller.GenerateTickets)
		performances.GET("/tickets", controller.GetTicketsForPerformance)
		performances.GET("/tickets/available", controller.GetAvailableTickets)
		performances.GET("/tickets/sold", controller.GetSoldTickets)
		performances.GET("/tickets/vip", controller.GetVIPTickets)
		performances.GET("/tickets/row/:row", controller.GetTicketsByRow)
		performances.GET("/tickets/by-price", controller.GetTicketsByPriceRange)
		performances.GET("/available-seats", controller.GetAvailableSeats)
		performances.GET("/seating-plan", controller.GetSeatingPlan)
		performances.GET("/statistics", controller.GetStatistics)
	}

	router.GET("/statistics/overall", controller.GetOverallStatistics)
}
