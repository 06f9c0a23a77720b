// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"curtaincall/internal/authors"
	"curtaincall/internal/genres"
	"curtaincall/internal/halls"
	"curtaincall/internal/notifications"
	"curtaincall/internal/performances"
	"curtaincall/internal/seats"
	"curtaincall/internal/shared/config"
	"curtaincall/internal/shared/database"
	"curtaincall/internal/tickets"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer
}

// NewRouter creates a new router instance. Producer may be nil when Kafka
// is not configured.
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupCatalogRoutes(api)
		r.setupPerformanceRoutes(api)
		r.setupTicketRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "curtaincall-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "curtaincall-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupCatalogRoutes configures author, genre, hall and seat management
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	db := r.db.GetPostgreSQL()

	authorRepo := authors.NewRepository(db)
	authorService := authors.NewService(authorRepo)
	authorController := authors.NewController(authorService)
	authors.SetupAuthorRoutes(rg, authorController)

	genreRepo := genres.NewRepository(db)
	genreService := genres.NewService(genreRepo)
	genreController := genres.NewController(genreService)
	genres.SetupGenreRoutes(rg, genreController)

	hallRepo := halls.NewRepository(db)
	hallService := halls.NewService(hallRepo)
	hallController := halls.NewController(hallService)
	halls.SetupHallRoutes(rg, hallController)

	seatRepo := seats.NewRepository(db)
	seatService := seats.NewService(seatRepo, hallRepo)
	seatController := seats.NewController(seatService)
	seats.SetupSeatRoutes(rg, seatController)
}

// setupPerformanceRoutes configures the performance catalog
func (r *Router) setupPerformanceRoutes(rg *gin.RouterGroup) {
	perfRepo := performances.NewRepository(r.db.GetPostgreSQL())
	perfService := performances.NewService(perfRepo)
	perfController := performances.NewController(perfService)
	performances.SetupPerformanceRoutes(rg, perfController)
}

// setupTicketRoutes configures ticket inventory and sales
func (r *Router) setupTicketRoutes(rg *gin.RouterGroup) {
	db := r.db.GetPostgreSQL()

	ticketRepo := tickets.NewRepository(db)
	perfRepo := performances.NewRepository(db)
	seatRepo := seats.NewRepository(db)

	cache := tickets.NewCache(r.db.GetRedis(), r.config.Redis.SeatingPlanTTL, r.config.Redis.StatisticsTTL)
	ticketService := tickets.NewService(ticketRepo, perfRepo, seatRepo, cache, r.producer)
	ticketController := tickets.NewController(ticketService)
	tickets.SetupTicketRoutes(rg, ticketController)
}
