package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stocksync/backend/models"
	"github.com/stocksync/backend/repositories"
	"go.uber.org/zap"
)

// PurchaseOrderRepository implements the repositories.PurchaseOrderRepository interface
type PurchaseOrderRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewPurchaseOrderRepository creates a new purchase order repository
func NewPurchaseOrderRepository(db *DB, logger *zap.Logger) repositories.PurchaseOrderRepository {
	return &PurchaseOrderRepository{
		db:     db,
		logger: logger,
	}
}

const orderColumns = `order_id, item_name, supplier_id, warehouse_id, created_by, status, total_amount, order_date, expected_delivery_date, created_at`

// Create inserts a new purchase order and populates its generated ID
func (r *PurchaseOrderRepository) Create(ctx context.Context, order *models.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (item_name, supplier_id, warehouse_id, created_by, status, total_amount, order_date, expected_delivery_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING order_id
	`

	executor := GetExecutor(ctx, r.db)
	err := executor.QueryRowContext(ctx, query,
		order.ItemName,
		order.SupplierID,
		order.WarehouseID,
		order.CreatedByUserID,
		order.Status,
		order.TotalAmount,
		order.OrderDate,
		order.ExpectedDeliveryDate,
		order.CreatedAt,
	).Scan(&order.ID)

	if err != nil {
		return fmt.Errorf("failed to create purchase order: %w", err)
	}

	r.logger.Debug("purchase order created", zap.Int64("id", order.ID), zap.String("item", order.ItemName))
	return nil
}

// GetByID retrieves a purchase order by ID
func (r *PurchaseOrderRepository) GetByID(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	query := fmt.Sprintf(`SELECT %s FROM purchase_orders WHERE order_id = $1`, orderColumns)

	executor := GetExecutor(ctx, r.db)
	order := &models.PurchaseOrder{}

	err := executor.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.ItemName,
		&order.SupplierID,
		&order.WarehouseID,
		&order.CreatedByUserID,
		&order.Status,
		&order.TotalAmount,
		&order.OrderDate,
		&order.ExpectedDeliveryDate,
		&order.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get purchase order: %w", err)
	}

	return order, nil
}

// List retrieves all purchase orders, newest first
func (r *PurchaseOrderRepository) List(ctx context.Context) ([]*models.PurchaseOrder, error) {
	query := fmt.Sprintf(`SELECT %s FROM purchase_orders ORDER BY created_at DESC`, orderColumns)
	return r.queryOrders(ctx, query)
}

// ListBySupplier retrieves all purchase orders placed with a supplier
func (r *PurchaseOrderRepository) ListBySupplier(ctx context.Context, supplierID int64) ([]*models.PurchaseOrder, error) {
	query := fmt.Sprintf(`SELECT %s FROM purchase_orders WHERE supplier_id = $1 ORDER BY created_at DESC`, orderColumns)
	return r.queryOrders(ctx, query, supplierID)
}

func (r *PurchaseOrderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*models.PurchaseOrder, error) {
	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.PurchaseOrder
	for rows.Next() {
		order := &models.PurchaseOrder{}
		err := rows.Scan(
			&order.ID,
			&order.ItemName,
			&order.SupplierID,
			&order.WarehouseID,
			&order.CreatedByUserID,
			&order.Status,
			&order.TotalAmount,
			&order.OrderDate,
			&order.ExpectedDeliveryDate,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase order rows: %w", err)
	}

	return orders, nil
}

// UpdateStatus moves a purchase order to a new lifecycle state
func (r *PurchaseOrderRepository) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	query := `UPDATE purchase_orders SET status = $2 WHERE order_id = $1`

	executor := GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update purchase order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Debug("purchase order status updated",
		zap.Int64("id", id), zap.String("status", string(status)))
	return nil
}
