package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
)

// ErrInvalidTable is returned when a table name is not on the allow-list.
var ErrInvalidTable = errors.New("invalid table name")

// validTableNames is the fixed set of relations the row accessor may
// touch. Table names are interpolated into query text, so nothing
// outside this list is ever allowed through.
var validTableNames = []string{"categories", "stores", "locations", "materials"}

func checkTable(table string) error {
	for _, name := range validTableNames {
		if name == table {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidTable, table)
}

// GetAllRows loads every row of the named relation into dest,
// which must be a pointer to a slice of the matching model.
func GetAllRows(db *gorm.DB, table string, dest interface{}) error {
	if err := checkTable(table); err != nil {
		return err
	}
	if err := db.Raw("SELECT * FROM " + table).Scan(dest).Error; err != nil {
		log.Printf("Error getting all rows from %s: %v", table, err)
		return err
	}
	return nil
}

// GetRow loads the row with the given id into dest. The bool result
// reports whether the row exists; a zero-valued dest never stands in
// for an absent row.
func GetRow(db *gorm.DB, table string, id int64, dest interface{}) (bool, error) {
	if err := checkTable(table); err != nil {
		return false, err
	}
	result := db.Raw("SELECT * FROM "+table+" WHERE id = ?", id).Scan(dest)
	if result.Error != nil {
		log.Printf("Error finding row with id %d in table %s: %v", id, table, result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountRows returns the number of rows in the named relation.
func CountRows(db *gorm.DB, table string) (int64, error) {
	if err := checkTable(table); err != nil {
		return 0, err
	}
	var count int64
	if err := db.Raw("SELECT COUNT(id) FROM " + table).Scan(&count).Error; err != nil {
		log.Printf("Error counting rows in table %s: %v", table, err)
		return 0, err
	}
	return count, nil
}

// DeleteRow removes the row with the given id and loads the deleted
// row into dest. The bool result reports whether a row was deleted.
func DeleteRow(db *gorm.DB, table string, id int64, dest interface{}) (bool, error) {
	if err := checkTable(table); err != nil {
		return false, err
	}
	result := db.Raw("DELETE FROM "+table+" WHERE id = ? RETURNING *", id).Scan(dest)
	if result.Error != nil {
		log.Printf("Error deleting row with id %d from table %s: %v", id, table, result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
