package models

import (
	"bytes"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttachmentKind names the collection a family of attachments lives in and the
// key the parent id is stored under.
type AttachmentKind struct {
	Name        string
	ColName     string
	ParentField string
}

var (
	PosterKind = AttachmentKind{Name: "event poster", ColName: "event_posters", ParentField: "event_id"}
	VideoKind  = AttachmentKind{Name: "promo video", ColName: "promo_videos", ParentField: "event_id"}
	PhotoKind  = AttachmentKind{Name: "venue photo", ColName: "venue_photos", ParentField: "venue_id"}
)

// Attachment is a binary payload stored inline with its metadata. ParentID is
// written under the kind's ParentField and is never checked against the parent
// collection.
type Attachment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ParentID    string             `bson:"-"`
	Filename    string             `bson:"filename"`
	ContentType string             `bson:"content_type"`
	Content     []byte             `bson:"content"`
	UploadedAt  time.Time          `bson:"uploaded_at"`
}

// AttachmentContent is what a download hands back: the declared type and a
// fresh reader over the stored bytes.
type AttachmentContent struct {
	ContentType string
	Filename    string
	Size        int64
	Body        io.Reader
}

func (a *Attachment) Open() *AttachmentContent {
	return &AttachmentContent{
		ContentType: a.ContentType,
		Filename:    a.Filename,
		Size:        int64(len(a.Content)),
		Body:        bytes.NewReader(a.Content),
	}
}
