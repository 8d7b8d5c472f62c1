package savedlocation

import (
	"time"
)

// SavedLocation is a persisted place the user (or the current-location path)
// has saved. The name is the primary key: re-saving the same name replaces the
// existing row.
type SavedLocation struct {
	Name      string    `json:"name" gorm:"primaryKey"`
	Country   string    `json:"country"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	AddedAt   time.Time `json:"added_at" gorm:"index:idx_added_at"`
}

func (SavedLocation) TableName() string {
	return "saved_locations"
}
