package database

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/buildersupply/models"
	"gorm.io/gorm"
)

// LocationSummary is one entry of a per-state location group.
type LocationSummary struct {
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	ID          int64  `json:"id"`
}

// StateGroup is the result row of GetLocationsByState.
type StateGroup struct {
	State     string
	Count     int64
	Locations []LocationSummary
}

// GetMaterialsInCategory returns all materials whose category foreign
// key equals the given id.
func GetMaterialsInCategory(db *gorm.DB, categoryID int64) ([]models.Material, error) {
	var materials []models.Material
	err := db.Raw("SELECT * FROM materials WHERE category_id = ?", categoryID).Scan(&materials).Error
	if err != nil {
		log.Printf("Error finding materials in category %d: %v", categoryID, err)
		return nil, err
	}
	return materials, nil
}

// CheckForLinkedMaterials returns the materials still pointing at a
// category. Callers use a non-empty result as a delete guard.
func CheckForLinkedMaterials(db *gorm.DB, categoryID int64) ([]models.Material, error) {
	return GetMaterialsInCategory(db, categoryID)
}

// GetCategoryOfMaterial returns the category row with the given id,
// or nil when it does not exist. Used after loading a material to
// resolve its parent.
func GetCategoryOfMaterial(db *gorm.DB, categoryID int64) (*models.Category, error) {
	var category models.Category
	result := db.Raw("SELECT * FROM categories WHERE id = ?", categoryID).Scan(&category)
	if result.Error != nil {
		log.Printf("Error finding category with id %d: %v", categoryID, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &category, nil
}

// GetLocationsByState groups all locations by state code in a single
// aggregation query: per-state count plus the address/phone/id tuples.
func GetLocationsByState(db *gorm.DB) ([]StateGroup, error) {
	agg := `json_agg(json_build_object('address', address, 'phone_number', phone_number, 'id', id))`
	if db.Dialector.Name() == "sqlite" {
		agg = `json_group_array(json_object('address', address, 'phone_number', phone_number, 'id', id))`
	}

	var rows []struct {
		State     string
		Count     int64
		Locations string
	}
	query := fmt.Sprintf(
		"SELECT state, COUNT(id) AS count, %s AS locations FROM locations GROUP BY state ORDER BY state", agg)
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		log.Printf("Error grouping locations by state: %v", err)
		return nil, err
	}

	groups := make([]StateGroup, 0, len(rows))
	for _, row := range rows {
		group := StateGroup{State: row.State, Count: row.Count}
		if err := json.Unmarshal([]byte(row.Locations), &group.Locations); err != nil {
			return nil, fmt.Errorf("failed to decode location group for state %s: %w", row.State, err)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// CheckForCategory returns the category with the given name, or nil
// when the name is free. Used as a uniqueness probe before insert.
func CheckForCategory(db *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	result := db.Raw("SELECT * FROM categories WHERE cat_name = ?", name).Scan(&category)
	if result.Error != nil {
		log.Printf("Error checking for category %q: %v", name, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &category, nil
}

// CheckForMaterial returns the material with the given name, or nil
// when the name is free.
func CheckForMaterial(db *gorm.DB, name string) (*models.Material, error) {
	var material models.Material
	result := db.Raw("SELECT * FROM materials WHERE mat_name = ?", name).Scan(&material)
	if result.Error != nil {
		log.Printf("Error checking for material %q: %v", name, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &material, nil
}

// CheckForLocation returns the location at the given address, or nil
// when the address is free.
func CheckForLocation(db *gorm.DB, address string) (*models.Location, error) {
	var location models.Location
	result := db.Raw("SELECT * FROM locations WHERE address = ?", address).Scan(&location)
	if result.Error != nil {
		log.Printf("Error checking for location %q: %v", address, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &location, nil
}

// AddCategory inserts a category and returns the created row.
func AddCategory(db *gorm.DB, category *models.Category) (*models.Category, error) {
	var created models.Category
	err := db.Raw(
		"INSERT INTO categories (cat_name, summary, store_id) VALUES (?, ?, ?) RETURNING *",
		category.CatName, category.Summary, category.StoreID,
	).Scan(&created).Error
	if err != nil {
		log.Printf("Error adding category %q: %v", category.CatName, err)
		return nil, err
	}
	return &created, nil
}

// AddLocation inserts a location and returns the created row.
func AddLocation(db *gorm.DB, location *models.Location) (*models.Location, error) {
	var created models.Location
	err := db.Raw(
		"INSERT INTO locations (state, address, phone_number, open, zip_code, store_id) VALUES (?, ?, ?, ?, ?, ?) RETURNING *",
		location.State, location.Address, location.PhoneNumber, location.Open, location.ZipCode, location.StoreID,
	).Scan(&created).Error
	if err != nil {
		log.Printf("Error adding location %q: %v", location.Address, err)
		return nil, err
	}
	return &created, nil
}

// AddMaterial inserts a material and returns the created row.
func AddMaterial(db *gorm.DB, material *models.Material) (*models.Material, error) {
	var created models.Material
	err := db.Raw(
		"INSERT INTO materials (mat_name, stock, price, category_id, img_url, img_id) VALUES (?, ?, ?, ?, ?, ?) RETURNING *",
		material.MatName, material.Stock, material.Price, material.CategoryID, material.ImgURL, material.ImgID,
	).Scan(&created).Error
	if err != nil {
		log.Printf("Error adding material %q: %v", material.MatName, err)
		return nil, err
	}
	return &created, nil
}

// UpdateCategory updates all mutable fields of a category by id and
// returns the updated row, or nil when the id does not exist.
func UpdateCategory(db *gorm.DB, id int64, category *models.Category) (*models.Category, error) {
	var updated models.Category
	result := db.Raw(
		"UPDATE categories SET cat_name = ?, summary = ?, store_id = ? WHERE id = ? RETURNING *",
		category.CatName, category.Summary, category.StoreID, id,
	).Scan(&updated)
	if result.Error != nil {
		log.Printf("Error updating category %d: %v", id, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &updated, nil
}

// UpdateLocation updates all mutable fields of a location by id and
// returns the updated row, or nil when the id does not exist.
func UpdateLocation(db *gorm.DB, id int64, location *models.Location) (*models.Location, error) {
	var updated models.Location
	result := db.Raw(
		"UPDATE locations SET state = ?, address = ?, phone_number = ?, open = ?, zip_code = ?, store_id = ? WHERE id = ? RETURNING *",
		location.State, location.Address, location.PhoneNumber, location.Open, location.ZipCode, location.StoreID, id,
	).Scan(&updated)
	if result.Error != nil {
		log.Printf("Error updating location %d: %v", id, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &updated, nil
}

// UpdateMaterial updates all mutable fields of a material by id and
// returns the updated row, or nil when the id does not exist.
func UpdateMaterial(db *gorm.DB, id int64, material *models.Material) (*models.Material, error) {
	var updated models.Material
	result := db.Raw(
		"UPDATE materials SET mat_name = ?, stock = ?, price = ?, category_id = ?, img_url = ?, img_id = ? WHERE id = ? RETURNING *",
		material.MatName, material.Stock, material.Price, material.CategoryID, material.ImgURL, material.ImgID, id,
	).Scan(&updated)
	if result.Error != nil {
		log.Printf("Error updating material %d: %v", id, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &updated, nil
}

// DeleteCategory deletes a category by id and returns the deleted row,
// or nil when the id does not exist. Callers must check
// CheckForLinkedMaterials first; no cascade is performed here.
func DeleteCategory(db *gorm.DB, id int64) (*models.Category, error) {
	var deleted models.Category
	found, err := DeleteRow(db, "categories", id, &deleted)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &deleted, nil
}

// DeleteMaterial deletes a material by id and returns the deleted row,
// or nil when the id does not exist.
func DeleteMaterial(db *gorm.DB, id int64) (*models.Material, error) {
	var deleted models.Material
	found, err := DeleteRow(db, "materials", id, &deleted)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &deleted, nil
}
