package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventapi/internal/models"
	"github.com/joshua-takyi/eventapi/internal/services"
)

func CreateRecord[T any](svc services.RecordService[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			respondError(c, models.NewValidationError("body", "could not read request body"))
			return
		}

		id, err := svc.Create(c.Request.Context(), raw)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func ListRecords[T any](svc services.RecordService[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}
