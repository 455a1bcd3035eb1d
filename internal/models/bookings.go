package models

const BookingsColName = "bookings"

// Booking references an event and an attendee by free-form id. Quantity is not
// compared against venue capacity or the event's max_attendees.
type Booking struct {
	Document   `bson:",inline"`
	EventID    *string `bson:"event_id" json:"event_id" validate:"required"`
	AttendeeID *string `bson:"attendee_id" json:"attendee_id" validate:"required"`
	TicketType *string `bson:"ticket_type" json:"ticket_type" validate:"required"`
	Quantity   int     `bson:"quantity" json:"quantity" validate:"gt=0"`
}
