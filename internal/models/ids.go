package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EncodeID renders a store identifier as its external 24 character hex form.
func EncodeID(id primitive.ObjectID) string {
	return id.Hex()
}

// DecodeID parses an externally supplied identifier. Every id that comes from a
// caller goes through here before it reaches a query. Input is taken as is, so
// surrounding whitespace makes an id malformed.
func DecodeID(s string) (primitive.ObjectID, error) {
	if s == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: empty id", ErrInvalidIdentifier)
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	return id, nil
}
