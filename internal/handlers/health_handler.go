package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventapi/internal/models"
)

const healthTimeout = 2 * time.Second

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "API running"})
	}
}

// Health answers 503 when ping fails.
func Health(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := ping(ctx); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse("database unreachable"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	}
}
