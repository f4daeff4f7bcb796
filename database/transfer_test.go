package database

import (
	"testing"

	"github.com/buildersupply/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTransferMovesFullGraph(t *testing.T) {
	db := openTestDB(t)
	data := docstore.Fixture()

	report, err := Transfer(db, data)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Stores)
	assert.Equal(t, 4, report.Categories)
	assert.Equal(t, 3, report.Locations)
	assert.Equal(t, 6, report.Materials)
	assert.Equal(t, 0, report.Skipped)

	for table, want := range map[string]int64{
		"stores":     3,
		"categories": 4,
		"locations":  3,
		"materials":  6,
	} {
		count, err := CountRows(db, table)
		require.NoError(t, err)
		assert.Equal(t, want, count, "table %s", table)
	}
}

func TestTransferResolvesOwnershipChains(t *testing.T) {
	db := openTestDB(t)
	data := docstore.Fixture()

	_, err := Transfer(db, data)
	require.NoError(t, err)

	// Every material must chain through its category to the store
	// that carried it in the document graph.
	wantStore := map[string]string{
		"1/2inch 4x8 drywall": "Bobs Lumber",
		"2x4x8 Stud":          "Bobs Lumber",
		"Tile Adhesive":       "Tile World",
		"Cabinet Knob":        "Sheetz",
		"Drywall Screws":      "Bobs Lumber",
		"Framing Nails":       "Bobs Lumber",
	}

	var rows []struct {
		MatName   string
		CatName   string
		StoreName string
	}
	err = db.Raw(`
		SELECT m.mat_name, c.cat_name, s.name AS store_name
		FROM materials m
		JOIN categories c ON c.id = m.category_id
		JOIN stores s ON s.id = c.store_id
	`).Scan(&rows).Error
	require.NoError(t, err)
	require.Len(t, rows, len(wantStore))

	for _, row := range rows {
		assert.Equal(t, wantStore[row.MatName], row.StoreName, "material %s", row.MatName)
	}
}

func TestTransferSkipsUnownedRows(t *testing.T) {
	db := openTestDB(t)
	data := docstore.Fixture()

	// A location no store references cannot be placed
	data.Locations = append(data.Locations, docstore.Location{
		ID:          primitive.NewObjectID(),
		State:       "TX",
		Address:     "500 Lost Highway, Austin",
		PhoneNumber: "555-000-1111",
		Zip:         "73301",
	})

	report, err := Transfer(db, data)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Locations)
	assert.Equal(t, 1, report.Skipped)

	count, err := CountRows(db, "locations")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestTransferRollsBackOnFailure(t *testing.T) {
	db := openTestDB(t)
	data := docstore.Fixture()

	// Poison the last material so the final insert phase fails on
	// its last row: negative stock violates the schema check.
	data.Materials[len(data.Materials)-1].Stock = -1

	report, err := Transfer(db, data)
	require.Error(t, err)
	assert.Nil(t, report)

	// The rollback covers the whole run including the DDL, so
	// re-apply the schema before counting.
	require.NoError(t, EnsureSchema(db))
	for _, table := range []string{"stores", "categories", "locations", "materials"} {
		count, err := CountRows(db, table)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count, "table %s must be empty after rollback", table)
	}
}

func TestTransferCarriesImageFields(t *testing.T) {
	db := openTestDB(t)
	data := docstore.Fixture()
	data.Materials[0].Image = docstore.Image{
		URL:      "https://res.cloudinary.com/demo/materials/drywall.jpg",
		PublicID: "materials/drywall",
	}

	_, err := Transfer(db, data)
	require.NoError(t, err)

	var row struct {
		ImgURL *string
		ImgID  *string
	}
	err = db.Raw("SELECT img_url, img_id FROM materials WHERE mat_name = ?", data.Materials[0].Name).Scan(&row).Error
	require.NoError(t, err)
	require.NotNil(t, row.ImgURL)
	assert.Equal(t, "https://res.cloudinary.com/demo/materials/drywall.jpg", *row.ImgURL)
	require.NotNil(t, row.ImgID)
	assert.Equal(t, "materials/drywall", *row.ImgID)
}
