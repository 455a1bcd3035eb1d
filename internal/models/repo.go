package models

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

const DefaultDbName = "event_management_db"

var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by the names clients send
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	if dbName == "" {
		dbName = DefaultDbName
	}
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("%w: mongodb client is not initialized", ErrStoreUnavailable)
	}
	return mdb.mongodbClient.Database(mdb.dbName).Collection(colName), nil
}

// storeError wraps a driver failure. Connectivity faults become
// ErrStoreUnavailable; anything else is passed through with context.
func storeError(op, colName string, err error) error {
	if isConnectivityError(err) {
		return fmt.Errorf("%w: %s %s: %v", ErrStoreUnavailable, op, colName, err)
	}
	return fmt.Errorf("%s %s: %w", op, colName, err)
}

func isConnectivityError(err error) bool {
	if errors.Is(err, ErrStoreUnavailable) || errors.Is(err, mongo.ErrClientDisconnected) {
		return true
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return true
	}
	var selErr topology.ServerSelectionError
	return errors.As(err, &selErr)
}
