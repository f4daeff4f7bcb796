package models

import "fmt"

// Material represents materials table
type Material struct {
	ID         int64   `gorm:"primaryKey;column:id" json:"id"`
	MatName    string  `gorm:"type:varchar(100);not null;column:mat_name" json:"mat_name"`
	Stock      int     `gorm:"not null;column:stock" json:"stock"`
	Price      float64 `gorm:"type:numeric(10,2);not null;column:price" json:"price"`
	CategoryID int64   `gorm:"not null;column:category_id" json:"category_id"`
	ImgURL     *string `gorm:"column:img_url" json:"img_url,omitempty"`
	ImgID      *string `gorm:"column:img_id" json:"img_id,omitempty"`
}

// TableName specifies the table name for Material
func (Material) TableName() string {
	return "materials"
}

// URL returns the detail page path for the material
func (m Material) URL() string {
	return fmt.Sprintf("/store/material/%d", m.ID)
}

// HasImage reports whether an asset has been uploaded for the material
func (m Material) HasImage() bool {
	return m.ImgURL != nil && *m.ImgURL != ""
}
