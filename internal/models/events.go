package models

const EventsColName = "events"

// Document carries the identifier of a record read back from the store. The
// store assigns _id on insert, so the field is never written.
type Document struct {
	ID string `bson:"-" json:"_id,omitempty"`
}

func (d *Document) SetID(id string) {
	d.ID = id
}

// Identifiable is implemented by records that can receive their store id
// after a read.
type Identifiable interface {
	SetID(id string)
}

// Text fields are pointers so that a missing or null key can be told apart
// from an empty string. "required" on a pointer only rejects nil.
type Event struct {
	Document     `bson:",inline"`
	Name         *string `bson:"name" json:"name" validate:"required"`
	Description  *string `bson:"description" json:"description" validate:"required"`
	Date         *string `bson:"date" json:"date" validate:"required"`
	VenueID      *string `bson:"venue_id" json:"venue_id" validate:"required"` // not checked against venues
	MaxAttendees int     `bson:"max_attendees" json:"max_attendees" validate:"gt=0"`
}
