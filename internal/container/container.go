package container

import (
	"context"
	"log/slog"

	"github.com/joshua-takyi/eventapi/internal/config"
	"github.com/joshua-takyi/eventapi/internal/connect"
	"github.com/joshua-takyi/eventapi/internal/middleware"
	"github.com/joshua-takyi/eventapi/internal/models"
	"github.com/joshua-takyi/eventapi/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config

	EventService    services.RecordService[models.Event]
	AttendeeService services.RecordService[models.Attendee]
	VenueService    services.RecordService[models.Venue]
	BookingService  services.RecordService[models.Booking]

	PosterService services.FileService
	VideoService  services.FileService
	PhotoService  services.FileService

	Ping func(ctx context.Context) error

	// RateLimiter is nil when rate limiting is disabled.
	RateLimiter *middleware.RateLimiter
}

// NewContainer wires the Mongo-backed repositories and services around one
// shared client.
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	mdb := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBName)
	limit := int64(cfg.ListLimit)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitEnabled() {
		limiter = middleware.NewRateLimiter(middleware.LimiterConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		})
	}

	return &Container{
		Logger: logger,
		Config: cfg,

		EventService: services.NewEntityService[models.Event](
			models.NewDocumentRepo[models.Event](mdb, models.EventsColName), models.EventsColName, limit, logger),
		AttendeeService: services.NewEntityService[models.Attendee](
			models.NewDocumentRepo[models.Attendee](mdb, models.AttendeesColName), models.AttendeesColName, limit, logger),
		VenueService: services.NewEntityService[models.Venue](
			models.NewDocumentRepo[models.Venue](mdb, models.VenuesColName), models.VenuesColName, limit, logger),
		BookingService: services.NewEntityService[models.Booking](
			models.NewDocumentRepo[models.Booking](mdb, models.BookingsColName), models.BookingsColName, limit, logger),

		PosterService: services.NewAttachmentService(models.NewAttachmentRepo(mdb, models.PosterKind), models.PosterKind, logger),
		VideoService:  services.NewAttachmentService(models.NewAttachmentRepo(mdb, models.VideoKind), models.VideoKind, logger),
		PhotoService:  services.NewAttachmentService(models.NewAttachmentRepo(mdb, models.PhotoKind), models.PhotoKind, logger),

		Ping: func(ctx context.Context) error {
			return connect.MongoDBPing(ctx, mongoDBClient)
		},

		RateLimiter: limiter,
	}
}

// Close stops the background work owned by the container. It does not
// disconnect the Mongo client.
func (c *Container) Close() {
	if c.RateLimiter != nil {
		c.RateLimiter.Stop()
	}
}
