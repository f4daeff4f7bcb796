package models

import (
	"fmt"
	"strings"
)

// Weekdays is the canonical weekday order used by the open-day flags.
var Weekdays = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// Location represents locations table. The open column stores the
// weekdays the location is open as a comma-separated list.
type Location struct {
	ID          int64  `gorm:"primaryKey;column:id" json:"id"`
	State       string `gorm:"type:varchar(20);not null;column:state" json:"state"`
	Address     string `gorm:"type:varchar(50);not null;column:address" json:"address"`
	PhoneNumber string `gorm:"type:varchar(16);not null;column:phone_number" json:"phone_number"`
	Open        string `gorm:"not null;column:open" json:"open"`
	ZipCode     string `gorm:"type:varchar(10);not null;column:zip_code" json:"zip_code"`
	StoreID     int64  `gorm:"not null;column:store_id" json:"store_id"`
}

// TableName specifies the table name for Location
func (Location) TableName() string {
	return "locations"
}

// URL returns the detail page path for the location
func (l Location) URL() string {
	return fmt.Sprintf("/store/location/%d", l.ID)
}

// OpenDays returns the weekdays the location is open
func (l Location) OpenDays() []string {
	if l.Open == "" {
		return nil
	}
	return strings.Split(l.Open, ",")
}

// SetOpenDays stores the given weekdays on the open column
func (l *Location) SetOpenDays(days []string) {
	l.Open = JoinOpenDays(days)
}

// IsOpenOn reports whether the location is open on the given weekday
func (l Location) IsOpenOn(day string) bool {
	for _, open := range l.OpenDays() {
		if open == day {
			return true
		}
	}
	return false
}

// JoinOpenDays encodes a weekday list for the open column
func JoinOpenDays(days []string) string {
	return strings.Join(days, ",")
}
