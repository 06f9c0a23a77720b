package halls

import "github.com/gin-gonic/gin"

func SetupHallRoutes(router *gin.RouterGroup, controller Controller) {
	halls := router.Group("/halls")
	{
		halls.GET("", controller.GetAllHalls)
		halls.GET("/:id", controller.GetHall)
		halls.POST("", controller.CreateHall)
		halls.PUT("/:id", controller.UpdateHall)
		halls.DELETE("/:id", controller.DeleteHall)
	}
}
