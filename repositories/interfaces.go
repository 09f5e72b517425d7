package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/stocksync/backend/models"
)

// ErrNotFound is returned by repositories when a row does not exist.
// Services translate it into their own not-found kinds.
var ErrNotFound = errors.New("record not found")

// UserRepository handles principal persistence
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	ListUsernames(ctx context.Context) ([]string, error)
}

// RoleRepository handles role catalog lookups and user-role assignment.
// ResolveForUser returns a materialized snapshot of the user's role
// assignments in a single query; nothing is lazily traversed.
type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*models.Role, error)
	Assign(ctx context.Context, userID, roleID int64, assignedAt time.Time) error
	ResolveForUser(ctx context.Context, userID int64) ([]models.RoleAssignment, error)
}

// SupplierRepository handles supplier persistence
type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, id int64) (*models.Supplier, error)
	List(ctx context.Context) ([]*models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id int64) error
}

// WarehouseRepository handles warehouse persistence
type WarehouseRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Warehouse, error)
	List(ctx context.Context) ([]*models.Warehouse, error)
}

// PurchaseOrderRepository handles purchase order persistence
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *models.PurchaseOrder) error
	GetByID(ctx context.Context, id int64) (*models.PurchaseOrder, error)
	List(ctx context.Context) ([]*models.PurchaseOrder, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]*models.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) error
}

// GRNRepository handles goods received note persistence
type GRNRepository interface {
	Create(ctx context.Context, grn *models.GRN) error
	GetByID(ctx context.Context, id int64) (*models.GRN, error)
	List(ctx context.Context) ([]*models.GRN, error)
	CountByStatus(ctx context.Context, status models.GRNStatus) (int, error)
	Count(ctx context.Context) (int, error)
}

// Repositories bundles all repository instances
type Repositories struct {
	Users          UserRepository
	Roles          RoleRepository
	Suppliers      SupplierRepository
	Warehouses     WarehouseRepository
	PurchaseOrders PurchaseOrderRepository
	GRNs           GRNRepository
}

// Transaction represents a database transaction
type Transaction interface {
	Commit() error
	Rollback() error
}

// TransactionManager manages database transactions. Repository calls
// made with the context returned inside InTransaction join that
// transaction.
type TransactionManager interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
