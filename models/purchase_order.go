package models

import "time"

// OrderStatus represents the lifecycle state of a purchase order
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderApproved  OrderStatus = "APPROVED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderReceived  OrderStatus = "RECEIVED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderPending, OrderApproved, OrderShipped, OrderReceived, OrderCancelled:
		return true
	}
	return false
}

// PurchaseOrder represents an order placed with a supplier for a
// warehouse, created by an authenticated operator.
type PurchaseOrder struct {
	ID                   int64       `json:"id" db:"order_id"`
	ItemName             string      `json:"item_name" db:"item_name"`
	SupplierID           int64       `json:"supplier_id" db:"supplier_id"`
	WarehouseID          int64       `json:"warehouse_id" db:"warehouse_id"`
	CreatedByUserID      int64       `json:"created_by" db:"created_by"`
	Status               OrderStatus `json:"status" db:"status"`
	TotalAmount          float64     `json:"total_amount" db:"total_amount"`
	OrderDate            time.Time   `json:"order_date" db:"order_date"`
	ExpectedDeliveryDate time.Time   `json:"expected_delivery_date" db:"expected_delivery_date"`
	CreatedAt            time.Time   `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// LeadTimeDays returns the whole days between order and expected delivery
func (p *PurchaseOrder) LeadTimeDays() int {
	if p.ExpectedDeliveryDate.Before(p.OrderDate) {
		return 0
	}
	return int(p.ExpectedDeliveryDate.Sub(p.OrderDate).Hours() / 24)
}
