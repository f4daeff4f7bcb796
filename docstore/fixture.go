package docstore

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixture builds the sample catalog graph in memory: 3 stores,
// 3 locations, 4 categories and 6 materials, with the reference
// arrays wired the way the production data was.
func Fixture() *Data {
	weekdays := []string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}

	categories := []Category{
		{ID: primitive.NewObjectID(), Name: "Drywall", Summary: "This category contains all materials related to drywall work."},
		{ID: primitive.NewObjectID(), Name: "Framing", Summary: "This category contains all materials related to framing work."},
		{ID: primitive.NewObjectID(), Name: "Tile", Summary: "This category contains all materials related to tile work."},
		{ID: primitive.NewObjectID(), Name: "Cabinet", Summary: "This category contains all materials related to cabinet work."},
	}

	stores := []Store{
		{ID: primitive.NewObjectID(), Name: "Bobs Lumber", DateOpened: time.Date(2012, 4, 20, 0, 0, 0, 0, time.UTC)},
		{ID: primitive.NewObjectID(), Name: "Tile World", DateOpened: time.Date(1997, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: primitive.NewObjectID(), Name: "Sheetz", DateOpened: time.Date(2021, 4, 20, 0, 0, 0, 0, time.UTC)},
	}

	locations := []Location{
		{ID: primitive.NewObjectID(), State: "GA", Address: "1920 Marietta street , Marietta", PhoneNumber: "645-345-5555", Open: weekdays[1:5], Zip: "30060"},
		{ID: primitive.NewObjectID(), State: "NY", Address: "123 Broadway, New York", PhoneNumber: "123-456-7890", Open: weekdays, Zip: "10007"},
		{ID: primitive.NewObjectID(), State: "CA", Address: "456 Hollywood Blvd, Los Angeles", PhoneNumber: "987-654-3210", Open: weekdays, Zip: "90028"},
	}

	materials := []Material{
		{ID: primitive.NewObjectID(), Name: "1/2inch 4x8 drywall", Price: 12, Stock: 100, Category: categories[0].ID},
		{ID: primitive.NewObjectID(), Name: "2x4x8 Stud", Price: 5, Stock: 200, Category: categories[1].ID},
		{ID: primitive.NewObjectID(), Name: "Tile Adhesive", Price: 8, Stock: 50, Category: categories[2].ID},
		{ID: primitive.NewObjectID(), Name: "Cabinet Knob", Price: 2, Stock: 100, Category: categories[3].ID},
		{ID: primitive.NewObjectID(), Name: "Drywall Screws", Price: 1, Stock: 500, Category: categories[0].ID},
		{ID: primitive.NewObjectID(), Name: "Framing Nails", Price: 3, Stock: 300, Category: categories[1].ID},
	}

	// Ownership arrays: each location belongs to one store, each
	// category is carried by one or more stores.
	stores[0].Locations = []primitive.ObjectID{locations[0].ID}
	stores[1].Locations = []primitive.ObjectID{locations[1].ID}
	stores[2].Locations = []primitive.ObjectID{locations[2].ID}

	stores[0].Categories = []primitive.ObjectID{categories[0].ID, categories[1].ID}
	stores[1].Categories = []primitive.ObjectID{categories[2].ID}
	stores[2].Categories = []primitive.ObjectID{categories[0].ID, categories[3].ID}

	categories[0].Stores = []primitive.ObjectID{stores[0].ID, stores[2].ID}
	categories[1].Stores = []primitive.ObjectID{stores[0].ID}
	categories[2].Stores = []primitive.ObjectID{stores[1].ID}
	categories[3].Stores = []primitive.ObjectID{stores[2].ID}

	categories[0].Materials = []primitive.ObjectID{materials[0].ID, materials[4].ID}
	categories[1].Materials = []primitive.ObjectID{materials[1].ID, materials[5].ID}
	categories[2].Materials = []primitive.ObjectID{materials[2].ID}
	categories[3].Materials = []primitive.ObjectID{materials[3].ID}

	return &Data{
		Stores:     stores,
		Categories: categories,
		Locations:  locations,
		Materials:  materials,
	}
}

// Seed drops the four collections and inserts the sample fixture.
func Seed(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)
	data := Fixture()

	for _, name := range []string{StoresCollection, CategoriesCollection, LocationsCollection, MaterialsCollection} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("failed to drop collection %s: %w", name, err)
		}
	}

	if err := insertAll(ctx, db, StoresCollection, toDocs(data.Stores)); err != nil {
		return err
	}
	if err := insertAll(ctx, db, CategoriesCollection, toDocs(data.Categories)); err != nil {
		return err
	}
	if err := insertAll(ctx, db, LocationsCollection, toDocs(data.Locations)); err != nil {
		return err
	}
	if err := insertAll(ctx, db, MaterialsCollection, toDocs(data.Materials)); err != nil {
		return err
	}

	log.Printf("Seeded document store %s: %d stores, %d categories, %d locations, %d materials",
		dbName, len(data.Stores), len(data.Categories), len(data.Locations), len(data.Materials))
	return nil
}

func insertAll(ctx context.Context, db *mongo.Database, name string, docs []interface{}) error {
	if _, err := db.Collection(name).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert into collection %s: %w", name, err)
	}
	return nil
}

func toDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return docs
}
