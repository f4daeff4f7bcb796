package database

import (
	"testing"

	"github.com/buildersupply/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowAccessorRejectsUnknownTables(t *testing.T) {
	db := openSchemaDB(t)
	storeID := mustAddStore(t, db, "Bobs Lumber")
	mustAddCategory(t, db, "Drywall", storeID)

	badTables := []string{
		"",
		"users",
		"Categories",
		"categories; DROP TABLE stores",
		"stores --",
	}

	for _, table := range badTables {
		t.Run("table="+table, func(t *testing.T) {
			var rows []models.Category
			err := GetAllRows(db, table, &rows)
			assert.ErrorIs(t, err, ErrInvalidTable)

			var row models.Category
			_, err = GetRow(db, table, 1, &row)
			assert.ErrorIs(t, err, ErrInvalidTable)

			_, err = CountRows(db, table)
			assert.ErrorIs(t, err, ErrInvalidTable)

			_, err = DeleteRow(db, table, 1, &row)
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}

	// Nothing was touched through the rejected calls
	count, err := CountRows(db, "categories")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRowAccessorAcceptsAllowListedTables(t *testing.T) {
	db := openSchemaDB(t)

	for _, table := range []string{"categories", "stores", "locations", "materials"} {
		count, err := CountRows(db, table)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, int64(0), count)
	}
}

func TestGetAllRowsGetRowConsistency(t *testing.T) {
	db := openSchemaDB(t)
	storeID := mustAddStore(t, db, "Bobs Lumber")
	mustAddCategory(t, db, "Drywall", storeID)
	mustAddCategory(t, db, "Framing", storeID)

	var categories []models.Category
	require.NoError(t, GetAllRows(db, "categories", &categories))
	require.Len(t, categories, 2)

	for _, category := range categories {
		var row models.Category
		found, err := GetRow(db, "categories", category.ID, &row)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, category, row)
	}
}

func TestAddCategoryRoundTrip(t *testing.T) {
	db := openSchemaDB(t)
	storeID := mustAddStore(t, db, "Bobs Lumber")

	created, err := AddCategory(db, &models.Category{
		CatName: "Tile",
		Summary: "This category contains all materials related to tile work.",
		StoreID: storeID,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	var row models.Category
	found, err := GetRow(db, "categories", created.ID, &row)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "Tile", row.CatName)
	assert.Equal(t, "This category contains all materials related to tile work.", row.Summary)
	assert.Equal(t, storeID, row.StoreID)
}

func TestGetRowAbsent(t *testing.T) {
	db := openSchemaDB(t)

	var row models.Category
	found, err := GetRow(db, "categories", 999, &row)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteRowReturnsDeletedRow(t *testing.T) {
	db := openSchemaDB(t)
	storeID := mustAddStore(t, db, "Bobs Lumber")
	location := mustAddLocation(t, db, "GA", "1920 Marietta street , Marietta", storeID)

	var deleted models.Location
	found, err := DeleteRow(db, "locations", location.ID, &deleted)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, location.Address, deleted.Address)

	var row models.Location
	found, err = GetRow(db, "locations", location.ID, &row)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteRowAbsent(t *testing.T) {
	db := openSchemaDB(t)

	var deleted models.Location
	found, err := DeleteRow(db, "locations", 999, &deleted)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCountRows(t *testing.T) {
	db := openSchemaDB(t)
	storeID := mustAddStore(t, db, "Bobs Lumber")
	mustAddStore(t, db, "Tile World")

	count, err := CountRows(db, "stores")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	mustAddCategory(t, db, "Drywall", storeID)
	count, err = CountRows(db, "categories")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
