package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventapi/internal/middleware"
	"github.com/joshua-takyi/eventapi/internal/models"
)

// respondError maps the error taxonomy onto status codes. Anything it does not
// recognise is left for the ErrorHandler middleware to answer with a 500.
func respondError(c *gin.Context, err error) {
	if ve, ok := models.AsValidationError(err); ok {
		c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse(ve))
		return
	}

	switch {
	case errors.Is(err, models.ErrInvalidIdentifier):
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid file id"))
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse("File not found"))
	case errors.Is(err, models.ErrStoreUnavailable):
		_ = c.Error(err)
		resp := models.ErrorResponse("Service temporarily unavailable")
		resp.RequestID = c.GetString(middleware.RequestIDKey)
		c.JSON(http.StatusServiceUnavailable, resp)
	default:
		_ = c.Error(err)
	}
}
