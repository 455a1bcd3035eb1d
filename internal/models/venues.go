package models

const VenuesColName = "venues"

type Venue struct {
	Document `bson:",inline"`
	Name     *string `bson:"name" json:"name" validate:"required"`
	Address  *string `bson:"address" json:"address" validate:"required"`
	Capacity int     `bson:"capacity" json:"capacity" validate:"gt=0"`
}
