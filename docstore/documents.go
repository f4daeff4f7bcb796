// Package docstore reads the legacy document database this catalog
// was migrated away from. Relationships live in reference arrays on
// the owning side: a store lists its location and category ids, a
// category lists its material ids.
package docstore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is a store document
type Store struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Name       string               `bson:"name"`
	DateOpened time.Time            `bson:"date_opened"`
	Locations  []primitive.ObjectID `bson:"locations"`
	Categories []primitive.ObjectID `bson:"categories"`
}

// Category is a category document
type Category struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Name      string               `bson:"name"`
	Summary   string               `bson:"summary"`
	Materials []primitive.ObjectID `bson:"materials"`
	Stores    []primitive.ObjectID `bson:"stores"`
}

// Image is the hosted-asset reference embedded in a material
type Image struct {
	URL      string `bson:"url,omitempty"`
	PublicID string `bson:"public_id,omitempty"`
}

// Material is a material document
type Material struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Stock    int                `bson:"stock"`
	Price    float64            `bson:"price"`
	Category primitive.ObjectID `bson:"category"`
	Image    Image              `bson:"image,omitempty"`
}

// Location is a location document. Ownership is recorded only on the
// store's locations array, not on the location itself.
type Location struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	State       string             `bson:"state"`
	Address     string             `bson:"address"`
	PhoneNumber string             `bson:"phoneNumber"`
	Open        []string           `bson:"open"`
	Zip         string             `bson:"zip"`
}

// Data is the full object graph of the document store.
type Data struct {
	Stores     []Store
	Categories []Category
	Locations  []Location
	Materials  []Material
}
