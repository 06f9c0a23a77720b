package seats

import "github.com/gin-gonic/gin"

// Seat routes hang off the owning hall; deletion addresses the seat directly.
func SetupSeatRoutes(router *gin.RouterGroup, controller Controller) {
	hallSeats := router.Group("/halls/:id/seats")
	{
		hallSeats.GET("", controller.GetHallSeats)
		hallSeats.GET("/vip", controller.GetHallVIPSeats)
		hallSeats.POST("", controller.CreateSeat)
		hallSeats.POST("/bulk", controller.CreateSeatBlock)
	}

	router.DELETE("/seats/:id", controller.DeleteSeat)
}
