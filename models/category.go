package models

import "fmt"

// Category represents categories table
type Category struct {
	ID      int64  `gorm:"primaryKey;column:id" json:"id"`
	CatName string `gorm:"type:varchar(50);not null;column:cat_name" json:"cat_name"`
	Summary string `gorm:"type:varchar(300);not null;column:summary" json:"summary"`
	StoreID int64  `gorm:"not null;column:store_id" json:"store_id"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}

// URL returns the detail page path for the category
func (c Category) URL() string {
	return fmt.Sprintf("/store/category/%d", c.ID)
}
