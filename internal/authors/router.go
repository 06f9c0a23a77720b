package authors

import "github.com/gin-gonic/gin"

func SetupAuthorRoutes(router *gin.RouterGroup, controller Controller) {
	authors := router.Group("/authors")
	{
		authors.GET("", controller.GetAllAuthors)
		authors.GET("/:id", controller.GetAuthor)
		authors.POST("", controller.CreateAuthor)
		authors.PUT("/:id", controller.UpdateAuthor)
		authors.DELETE("/:id", controller.DeleteAuthor)
	}
}
