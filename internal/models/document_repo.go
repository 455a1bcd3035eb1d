package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxListLimit caps every list call regardless of what the caller asks for.
const MaxListLimit int64 = 100

// DocumentRepo is the write-once, read-many gateway over one collection.
type DocumentRepo[T any] interface {
	Create(ctx context.Context, record *T) (string, error)
	List(ctx context.Context, limit int64) ([]T, error)
}

type MongoDocumentRepo[T any] struct {
	mdb     *MongodbRepo
	colName string
}

func NewDocumentRepo[T any](mdb *MongodbRepo, colName string) *MongoDocumentRepo[T] {
	return &MongoDocumentRepo[T]{
		mdb:     mdb,
		colName: colName,
	}
}

func (r *MongoDocumentRepo[T]) Create(ctx context.Context, record *T) (string, error) {
	if record == nil {
		return "", fmt.Errorf("create %s: nil record", r.colName)
	}
	col, err := r.mdb.GetCollection(ctx, r.colName)
	if err != nil {
		return "", err
	}

	res, err := col.InsertOne(ctx, record)
	if err != nil {
		return "", storeError("insert into", r.colName, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", r.colName, res.InsertedID)
	}
	return EncodeID(oid), nil
}

func (r *MongoDocumentRepo[T]) List(ctx context.Context, limit int64) ([]T, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	col, err := r.mdb.GetCollection(ctx, r.colName)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, storeError("find in", r.colName, err)
	}
	defer cursor.Close(ctx)

	records := make([]T, 0)
	for int64(len(records)) < limit && cursor.Next(ctx) {
		var record T
		if err := cursor.Decode(&record); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", r.colName, err)
		}
		if oid, ok := cursor.Current.Lookup("_id").ObjectIDOK(); ok {
			if doc, ok := any(&record).(Identifiable); ok {
				doc.SetID(EncodeID(oid))
			}
		}
		records = append(records, record)
	}
	if err := cursor.Err(); err != nil {
		return nil, storeError("iterate", r.colName, err)
	}

	return records, nil
}
