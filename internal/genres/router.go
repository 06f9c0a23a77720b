package genres

import "github.com/gin-gonic/gin"

func SetupGenreRoutes(router *gin.RouterGroup, controller Controller) {
	genres := router.Group("/genres")
	{
		genres.GET("", controller.GetAllGenres)
		genres.GET("/:id", controller.GetGenre)
		genres.POST("", controller.CreateGenre)
		genres.PUT("/:id", controller.UpdateGenre)
		genres.DELETE("/:id", controller.DeleteGenre)
	}
}
