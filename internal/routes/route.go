package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventapi/internal/container"
	"github.com/joshua-takyi/eventapi/internal/handlers"
	"github.com/joshua-takyi/eventapi/internal/middleware"
	"github.com/joshua-takyi/eventapi/internal/models"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	cfg := container.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	if container.RateLimiter != nil {
		r.Use(container.RateLimiter.Middleware(middleware.ClientIPKey))
	}

	r.GET("/", handlers.Root())
	r.GET("/health", handlers.Health(container.Ping))

	r.POST("/events", handlers.CreateRecord[models.Event](container.EventService))
	r.GET("/events", handlers.ListRecords[models.Event](container.EventService))
	r.POST("/attendees", handlers.CreateRecord[models.Attendee](container.AttendeeService))
	r.GET("/attendees", handlers.ListRecords[models.Attendee](container.AttendeeService))
	r.POST("/venues", handlers.CreateRecord[models.Venue](container.VenueService))
	r.GET("/venues", handlers.ListRecords[models.Venue](container.VenueService))
	r.POST("/bookings", handlers.CreateRecord[models.Booking](container.BookingService))
	r.GET("/bookings", handlers.ListRecords[models.Booking](container.BookingService))

	r.POST("/events/:id/poster", handlers.UploadAttachment(container.PosterService))
	r.GET("/event_posters/:file_id", handlers.DownloadAttachment(container.PosterService))
	r.POST("/events/:id/promo-video", handlers.UploadAttachment(container.VideoService))
	r.GET("/promo_videos/:file_id", handlers.DownloadAttachment(container.VideoService))
	r.POST("/venues/:id/photo", handlers.UploadAttachment(container.PhotoService))
	r.GET("/venue_photos/:file_id", handlers.DownloadAttachment(container.PhotoService))

	return r
}
