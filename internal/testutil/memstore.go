// Package testutil holds in-memory stand-ins for the Mongo repositories.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/joshua-takyi/eventapi/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemDocumentRepo keeps records in insertion order.
type MemDocumentRepo[T any] struct {
	mu      sync.Mutex
	ids     []primitive.ObjectID
	records []T
	Err     error
}

func NewMemDocumentRepo[T any]() *MemDocumentRepo[T] {
	return &MemDocumentRepo[T]{}
}

func (m *MemDocumentRepo[T]) Create(_ context.Context, record *T) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	oid := primitive.NewObjectID()
	m.ids = append(m.ids, oid)
	m.records = append(m.records, *record)
	return models.EncodeID(oid), nil
}

func (m *MemDocumentRepo[T]) List(_ context.Context, limit int64) ([]T, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]T, 0)
	for i, rec := range m.records {
		if int64(len(out)) >= limit {
			break
		}
		if doc, ok := any(&rec).(models.Identifiable); ok {
			doc.SetID(models.EncodeID(m.ids[i]))
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *MemDocumentRepo[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// MemAttachmentRepo stores one kind of attachment.
type MemAttachmentRepo struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]models.Attachment
	Err   error
}

func NewMemAttachmentRepo() *MemAttachmentRepo {
	return &MemAttachmentRepo{items: make(map[primitive.ObjectID]models.Attachment)}
}

func (m *MemAttachmentRepo) Upload(_ context.Context, a *models.Attachment) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	a.ID = primitive.NewObjectID()
	stored := *a
	stored.Content = append([]byte(nil), a.Content...)
	m.items[a.ID] = stored
	return models.EncodeID(a.ID), nil
}

func (m *MemAttachmentRepo) Download(_ context.Context, id string) (*models.Attachment, error) {
	oid, err := models.DecodeID(id)
	if err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.items[oid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	return &a, nil
}
