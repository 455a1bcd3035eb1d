package models

const AttendeesColName = "attendees"

type Attendee struct {
	Document `bson:",inline"`
	Name     *string `bson:"name" json:"name" validate:"required"`
	Email    *string `bson:"email" json:"email" validate:"required"`
	Phone    *string `bson:"phone" json:"phone"`
}
