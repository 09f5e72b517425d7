package models

// Role represents a named permission group.
// Known catalog: ADMIN, MANAGER, SALES, WAREHOUSE, PURCHASING.
type Role struct {
	ID   int64  `json:"id" db:"role_id"`
	Name string `json:"name" db:"role_name"`
}

// TableName returns the table name for the Role model
func (Role) TableName() string {
	return "roles"
}

const (
	RoleAdmin      = "ADMIN"
	RoleManager    = "MANAGER"
	RoleSales      = "SALES"
	RoleWarehouse  = "WAREHOUSE"
	RolePurchasing = "PURCHASING"
)
