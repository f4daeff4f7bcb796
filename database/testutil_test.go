package database

import (
	"testing"
	"time"

	"github.com/buildersupply/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens an in-memory sqlite database. The pool is pinned
// to one connection so every statement sees the same memory store.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

// openSchemaDB opens a test database with the catalog tables created.
func openSchemaDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := openTestDB(t)
	require.NoError(t, EnsureSchema(db))
	return db
}

func mustAddStore(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()

	var id int64
	err := db.Raw(
		"INSERT INTO stores (name, date_opened) VALUES (?, ?) RETURNING id",
		name, time.Date(2012, 4, 20, 0, 0, 0, 0, time.UTC),
	).Scan(&id).Error
	require.NoError(t, err)
	return id
}

func mustAddCategory(t *testing.T, db *gorm.DB, name string, storeID int64) *models.Category {
	t.Helper()

	created, err := AddCategory(db, &models.Category{
		CatName: name,
		Summary: "Everything needed for " + name + " work.",
		StoreID: storeID,
	})
	require.NoError(t, err)
	return created
}

func mustAddLocation(t *testing.T, db *gorm.DB, state, address string, storeID int64) *models.Location {
	t.Helper()

	created, err := AddLocation(db, &models.Location{
		State:       state,
		Address:     address,
		PhoneNumber: "645-345-5555",
		Open:        "Monday,Tuesday,Wednesday",
		ZipCode:     "30060",
		StoreID:     storeID,
	})
	require.NoError(t, err)
	return created
}

func mustAddMaterial(t *testing.T, db *gorm.DB, name string, categoryID int64) *models.Material {
	t.Helper()

	created, err := AddMaterial(db, &models.Material{
		MatName:    name,
		Stock:      100,
		Price:      12,
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	return created
}
