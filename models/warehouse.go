package models

import "time"

// Warehouse represents a stocking location
type Warehouse struct {
	ID        int64     `json:"id" db:"warehouse_id"`
	Name      string    `json:"name" db:"warehouse_name"`
	Location  string    `json:"location" db:"location"`
	Capacity  int       `json:"capacity" db:"capacity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the Warehouse model
func (Warehouse) TableName() string {
	return "warehouses"
}
