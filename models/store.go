package models

import (
	"time"
)

// Store represents stores table
type Store struct {
	ID         int64     `gorm:"primaryKey;column:id" json:"id"`
	Name       string    `gorm:"type:varchar(50);not null;column:name" json:"name"`
	DateOpened time.Time `gorm:"column:date_opened;not null" json:"date_opened"`
}

// TableName specifies the table name for Store
func (Store) TableName() string {
	return "stores"
}
