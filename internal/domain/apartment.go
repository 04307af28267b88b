package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a GeoJSON point. Coordinates are ordered [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

type Apartment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Location    GeoPoint           `bson:"location" json:"location"`
	Price       float64            `bson:"price" json:"price"`
	Bedrooms    int                `bson:"bedrooms" json:"bedrooms"`
	DateAdded   string             `bson:"dateadded" json:"dateadded"`
	ImageID     string             `bson:"image_id" json:"image_id"`
	Realtor     string             `bson:"realtor" json:"realtor"`
}

func (Apartment) Collection() string {
	return "apartments"
}

// ApartmentPatch is a merge-patch: only non-nil fields are applied.
type ApartmentPatch struct {
	Title       *string   `bson:"title,omitempty"`
	Description *string   `bson:"description,omitempty"`
	Location    *GeoPoint `bson:"location,omitempty"`
	Price       *float64  `bson:"price,omitempty"`
	Bedrooms    *int      `bson:"bedrooms,omitempty"`
	ImageID     *string   `bson:"image_id,omitempty"`
}
