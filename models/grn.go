package models

import "time"

// GRNStatus represents whether a goods received note is fully booked in
type GRNStatus string

const (
	GRNCompleted  GRNStatus = "COMPLETED"
	GRNIncomplete GRNStatus = "INCOMPLETE"
)

// ValidGRNStatus reports whether s is a known GRN status
func ValidGRNStatus(s string) bool {
	switch GRNStatus(s) {
	case GRNCompleted, GRNIncomplete:
		return true
	}
	return false
}

// GRN represents a goods received note recorded against a purchase order
type GRN struct {
	ID              int64     `json:"id" db:"grn_id"`
	Number          string    `json:"number" db:"grn_number"`
	PurchaseOrderID int64     `json:"purchase_order_id" db:"order_id"`
	Note            string    `json:"note" db:"grn_note"`
	Status          GRNStatus `json:"status" db:"status"`
	ReceivedDate    time.Time `json:"received_date" db:"received_date"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the GRN model
func (GRN) TableName() string {
	return "grns"
}
