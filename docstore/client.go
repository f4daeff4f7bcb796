package docstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names in the document store.
const (
	StoresCollection     = "stores"
	CategoriesCollection = "categories"
	LocationsCollection  = "locations"
	MaterialsCollection  = "materials"
)

// Connect opens a client and verifies the connection.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}
	return client, nil
}

// FetchAll reads the full object graph from the named database.
func FetchAll(ctx context.Context, client *mongo.Client, dbName string) (*Data, error) {
	db := client.Database(dbName)
	data := &Data{}

	if err := fetchCollection(ctx, db, StoresCollection, &data.Stores); err != nil {
		return nil, err
	}
	if err := fetchCollection(ctx, db, CategoriesCollection, &data.Categories); err != nil {
		return nil, err
	}
	if err := fetchCollection(ctx, db, LocationsCollection, &data.Locations); err != nil {
		return nil, err
	}
	if err := fetchCollection(ctx, db, MaterialsCollection, &data.Materials); err != nil {
		return nil, err
	}

	return data, nil
}

func fetchCollection(ctx context.Context, db *mongo.Database, name string, dest interface{}) error {
	cursor, err := db.Collection(name).Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	if err := cursor.All(ctx, dest); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", name, err)
	}
	return nil
}
