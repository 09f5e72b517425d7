package purchasing

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/stocksync/backend/models"
)

// MockSupplierRepository is a mock implementation of SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) GetByID(ctx context.Context, id int64) (*models.Supplier, error) {
	args := m.Called(ctx, id)
	if supplier := args.Get(0); supplier != nil {
		return supplier.(*models.Supplier), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSupplierRepository) List(ctx context.Context) ([]*models.Supplier, error) {
	args := m.Called(ctx)
	if suppliers := args.Get(0); suppliers != nil {
		return suppliers.([]*models.Supplier), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSupplierRepository) Update(ctx context.Context, supplier *models.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWarehouseRepository is a mock implementation of WarehouseRepository
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) GetByID(ctx context.Context, id int64) (*models.Warehouse, error) {
	args := m.Called(ctx, id)
	if warehouse := args.Get(0); warehouse != nil {
		return warehouse.(*models.Warehouse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWarehouseRepository) List(ctx context.Context) ([]*models.Warehouse, error) {
	args := m.Called(ctx)
	if warehouses := args.Get(0); warehouses != nil {
		return warehouses.([]*models.Warehouse), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockOrderRepository is a mock implementation of PurchaseOrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *models.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if order := args.Get(0); order != nil {
		return order.(*models.PurchaseOrder), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*models.PurchaseOrder, error) {
	args := m.Called(ctx)
	if orders := args.Get(0); orders != nil {
		return orders.([]*models.PurchaseOrder), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListBySupplier(ctx context.Context, supplierID int64) ([]*models.PurchaseOrder, error) {
	args := m.Called(ctx, supplierID)
	if orders := args.Get(0); orders != nil {
		return orders.([]*models.PurchaseOrder), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockGRNRepository is a mock implementation of GRNRepository
type MockGRNRepository struct {
	mock.Mock
}

func (m *MockGRNRepository) Create(ctx context.Context, grn *models.GRN) error {
	args := m.Called(ctx, grn)
	return args.Error(0)
}

func (m *MockGRNRepository) GetByID(ctx context.Context, id int64) (*models.GRN, error) {
	args := m.Called(ctx, id)
	if grn := args.Get(0); grn != nil {
		return grn.(*models.GRN), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGRNRepository) List(ctx context.Context) ([]*models.GRN, error) {
	args := m.Called(ctx)
	if grns := args.Get(0); grns != nil {
		return grns.([]*models.GRN), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGRNRepository) CountByStatus(ctx context.Context, status models.GRNStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockGRNRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) ListUsernames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if names := args.Get(0); names != nil {
		return names.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

// passthroughTxManager runs the function without a real transaction
type passthroughTxManager struct{}

func (passthroughTxManager) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func day(n int) time.Time {
	return time.Date(2026, time.August, n, 0, 0, 0, 0, time.UTC)
}
