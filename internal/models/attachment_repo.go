package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AttachmentRepo interface {
	Upload(ctx context.Context, attachment *Attachment) (string, error)
	Download(ctx context.Context, id string) (*Attachment, error)
}

type MongoAttachmentRepo struct {
	mdb  *MongodbRepo
	kind AttachmentKind
}

func NewAttachmentRepo(mdb *MongodbRepo, kind AttachmentKind) *MongoAttachmentRepo {
	return &MongoAttachmentRepo{
		mdb:  mdb,
		kind: kind,
	}
}

func (r *MongoAttachmentRepo) Upload(ctx context.Context, attachment *Attachment) (string, error) {
	if attachment == nil {
		return "", fmt.Errorf("upload %s: nil attachment", r.kind.Name)
	}
	col, err := r.mdb.GetCollection(ctx, r.kind.ColName)
	if err != nil {
		return "", err
	}

	content := attachment.Content
	if content == nil {
		content = []byte{}
	}
	doc := bson.D{
		{Key: r.kind.ParentField, Value: attachment.ParentID},
		{Key: "filename", Value: attachment.Filename},
		{Key: "content_type", Value: attachment.ContentType},
		{Key: "content", Value: content},
		{Key: "uploaded_at", Value: attachment.UploadedAt},
	}

	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return "", storeError("insert into", r.kind.ColName, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", r.kind.ColName, res.InsertedID)
	}
	attachment.ID = oid
	return EncodeID(oid), nil
}

func (r *MongoAttachmentRepo) Download(ctx context.Context, id string) (*Attachment, error) {
	oid, err := DecodeID(id)
	if err != nil {
		return nil, err
	}
	col, err := r.mdb.GetCollection(ctx, r.kind.ColName)
	if err != nil {
		return nil, err
	}

	raw, err := col.FindOne(ctx, bson.M{"_id": oid}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s %s", ErrNotFound, r.kind.Name, id)
		}
		return nil, storeError("find in", r.kind.ColName, err)
	}

	var attachment Attachment
	if err := bson.Unmarshal(raw, &attachment); err != nil {
		return nil, fmt.Errorf("decode %s document: %w", r.kind.ColName, err)
	}
	attachment.ParentID, _ = raw.Lookup(r.kind.ParentField).StringValueOK()
	return &attachment, nil
}
