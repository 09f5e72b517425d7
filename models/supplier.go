package models

import "time"

// Supplier represents a goods supplier
type Supplier struct {
	ID          int64     `json:"id" db:"supplier_id"`
	Name        string    `json:"name" db:"supplier_name"`
	ContactInfo string    `json:"contact_info" db:"contact_info"`
	Phone       string    `json:"phone" db:"phone"`
	Email       string    `json:"email" db:"email"`
	LeadTime    int       `json:"lead_time" db:"lead_time"` // contractual lead time, days
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
