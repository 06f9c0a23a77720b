package performances

import "github.com/gin-gonic/gin"

func SetupPerformanceRoutes(router *gin.RouterGroup, controller Controller) {
	performances := router.Group("/performances")
	{
		performances.GET("", controller.GetAllPerformances)
		performances.GET("/upcoming", controller.GetUpcomingPerformances)
		performances.GET("/:id", controller.GetPerformance)
		performances.POST("", controller.CreatePerformance)
		performances.PUT("/:id", controller.UpdatePerformance)
		performances.DELETE("/:id", controller.DeletePerformance)
	}

	// Catalog browsing by related entity
	router.GET("/genres/:id/performances", controller.GetPerformancesByGenre)
	router.GET("/authors/:id/performances", controller.GetPerformancesByAuthor)
	router.GET("/halls/:id/performances", controller.GetPerformancesByHall)
}
