package handlers

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventapi/internal/helpers"
	"github.com/joshua-takyi/eventapi/internal/models"
	"github.com/joshua-takyi/eventapi/internal/services"
)

const fileField = "file"

// UploadAttachment stores the multipart "file" part under the path's :id.
func UploadAttachment(svc services.FileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		parentID := c.Param("id")

		fh, err := c.FormFile(fileField)
		if err != nil {
			respondError(c, models.NewValidationError(fileField, "field required"))
			return
		}

		file, err := helpers.ReadUploadedFile(fh)
		if err != nil {
			_ = c.Error(err)
			return
		}

		id, err := svc.Upload(c.Request.Context(), parentID, file)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"file_id": id})
	}
}

func DownloadAttachment(svc services.FileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := svc.Download(c.Request.Context(), c.Param("file_id"))
		if err != nil {
			respondError(c, err)
			return
		}

		var extraHeaders map[string]string
		if content.Filename != "" {
			extraHeaders = map[string]string{
				"Content-Disposition": mime.FormatMediaType("inline", map[string]string{"filename": content.Filename}),
			}
		}
		c.DataFromReader(http.StatusOK, content.Size, content.ContentType, content.Body, extraHeaders)
	}
}
