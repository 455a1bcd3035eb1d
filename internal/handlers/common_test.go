package handlers

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventapi/internal/helpers"
	"github.com/joshua-takyi/eventapi/internal/middleware"
	"github.com/joshua-takyi/eventapi/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockRecordService[T any] struct {
	mock.Mock
}

func (m *mockRecordService[T]) Create(ctx context.Context, raw []byte) (string, error) {
	args := m.Called(ctx, raw)
	return args.String(0), args.Error(1)
}

func (m *mockRecordService[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

type mockFileService struct {
	mock.Mock
}

func (m *mockFileService) Upload(ctx context.Context, parentID string, file helpers.UploadedFile) (string, error) {
	args := m.Called(ctx, parentID, file)
	return args.String(0), args.Error(1)
}

func (m *mockFileService) Download(ctx context.Context, id string) (*models.AttachmentContent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AttachmentContent), args.Error(1)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return r
}

// multipartRequest builds a request with a single "file" part.
func multipartRequest(url, filename, contentType string, content []byte) *http.Request {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, _ := w.CreatePart(h)
	_, _ = part.Write(content)
	_ = w.Close()

	req, _ := http.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func strPtr(s string) *string { return &s }
