package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFixtureShape(t *testing.T) {
	data := Fixture()

	assert.Len(t, data.Stores, 3)
	assert.Len(t, data.Categories, 4)
	assert.Len(t, data.Locations, 3)
	assert.Len(t, data.Materials, 6)
}

func TestFixtureReferenceIntegrity(t *testing.T) {
	data := Fixture()

	locationIDs := make(map[primitive.ObjectID]bool)
	for _, loc := range data.Locations {
		locationIDs[loc.ID] = true
	}
	categoryIDs := make(map[primitive.ObjectID]bool)
	for _, cat := range data.Categories {
		categoryIDs[cat.ID] = true
	}
	materialIDs := make(map[primitive.ObjectID]bool)
	for _, mat := range data.Materials {
		materialIDs[mat.ID] = true
	}

	for _, store := range data.Stores {
		for _, id := range store.Locations {
			assert.True(t, locationIDs[id], "store %s references unknown location", store.Name)
		}
		for _, id := range store.Categories {
			assert.True(t, categoryIDs[id], "store %s references unknown category", store.Name)
		}
	}

	for _, cat := range data.Categories {
		for _, id := range cat.Materials {
			assert.True(t, materialIDs[id], "category %s references unknown material", cat.Name)
		}
	}
}

func TestFixtureEveryRowHasAnOwner(t *testing.T) {
	data := Fixture()

	ownedLocations := make(map[primitive.ObjectID]bool)
	ownedCategories := make(map[primitive.ObjectID]bool)
	for _, store := range data.Stores {
		for _, id := range store.Locations {
			ownedLocations[id] = true
		}
		for _, id := range store.Categories {
			ownedCategories[id] = true
		}
	}
	ownedMaterials := make(map[primitive.ObjectID]bool)
	for _, cat := range data.Categories {
		for _, id := range cat.Materials {
			ownedMaterials[id] = true
		}
	}

	for _, loc := range data.Locations {
		assert.True(t, ownedLocations[loc.ID], "location %s has no owning store", loc.Address)
	}
	for _, cat := range data.Categories {
		assert.True(t, ownedCategories[cat.ID], "category %s has no owning store", cat.Name)
	}
	for _, mat := range data.Materials {
		assert.True(t, ownedMaterials[mat.ID], "material %s has no owning category", mat.Name)
	}
}

func TestFixtureGeneratesFreshIDs(t *testing.T) {
	first := Fixture()
	second := Fixture()

	require.NotEmpty(t, first.Stores)
	assert.NotEqual(t, first.Stores[0].ID, second.Stores[0].ID)
}
