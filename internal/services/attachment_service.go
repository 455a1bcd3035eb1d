package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/joshua-takyi/eventapi/internal/helpers"
	"github.com/joshua-takyi/eventapi/internal/models"
)

type FileService interface {
	Upload(ctx context.Context, parentID string, file helpers.UploadedFile) (string, error)
	Download(ctx context.Context, id string) (*models.AttachmentContent, error)
}

type AttachmentService struct {
	repo   models.AttachmentRepo
	kind   models.AttachmentKind
	logger *slog.Logger
	now    func() time.Time
}

func NewAttachmentService(repo models.AttachmentRepo, kind models.AttachmentKind, logger *slog.Logger) *AttachmentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttachmentService{
		repo:   repo,
		kind:   kind,
		logger: logger,
		now:    time.Now,
	}
}

// Upload stores the file under parentID as given; the parent is not looked up.
func (s *AttachmentService) Upload(ctx context.Context, parentID string, file helpers.UploadedFile) (string, error) {
	attachment := &models.Attachment{
		ParentID:    parentID,
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Content:     file.Content,
		UploadedAt:  s.now().UTC(),
	}

	id, err := s.repo.Upload(ctx, attachment)
	if err != nil {
		return "", err
	}
	s.logger.Debug("attachment stored",
		"kind", s.kind.Name,
		"collection", s.kind.ColName,
		"id", id,
		"parent_id", parentID,
		"size", len(file.Content),
	)
	return id, nil
}

func (s *AttachmentService) Download(ctx context.Context, id string) (*models.AttachmentContent, error) {
	attachment, err := s.repo.Download(ctx, id)
	if err != nil {
		return nil, err
	}
	return attachment.Open(), nil
}
