package services

import (
	"context"
	"log/slog"

	"github.com/joshua-takyi/eventapi/internal/models"
)

// RecordService validates raw request bodies and hands them to one collection.
type RecordService[T any] interface {
	Create(ctx context.Context, raw []byte) (string, error)
	List(ctx context.Context) ([]T, error)
}

type EntityService[T any] struct {
	repo    models.DocumentRepo[T]
	colName string
	limit   int64
	logger  *slog.Logger
}

func NewEntityService[T any](repo models.DocumentRepo[T], colName string, limit int64, logger *slog.Logger) *EntityService[T] {
	if limit <= 0 || limit > models.MaxListLimit {
		limit = models.MaxListLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EntityService[T]{
		repo:    repo,
		colName: colName,
		limit:   limit,
		logger:  logger,
	}
}

func (s *EntityService[T]) Create(ctx context.Context, raw []byte) (string, error) {
	record, err := models.ParseRecord[T](raw)
	if err != nil {
		return "", err
	}

	id, err := s.repo.Create(ctx, record)
	if err != nil {
		return "", err
	}
	s.logger.Debug("record created", "collection", s.colName, "id", id)
	return id, nil
}

func (s *EntityService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx, s.limit)
}
