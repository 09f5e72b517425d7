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

// WarehouseRepository implements the repositories.WarehouseRepository interface
type WarehouseRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewWarehouseRepository creates a new warehouse repository
func NewWarehouseRepository(db *DB, logger *zap.Logger) repositories.WarehouseRepository {
	return &WarehouseRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a warehouse by ID
func (r *WarehouseRepository) GetByID(ctx context.Context, id int64) (*models.Warehouse, error) {
	query := `
		SELECT warehouse_id, warehouse_name, location, capacity, created_at
		FROM warehouses
		WHERE warehouse_id = $1
	`

	executor := GetExecutor(ctx, r.db)
	warehouse := &models.Warehouse{}

	err := executor.QueryRowContext(ctx, query, id).Scan(
		&warehouse.ID,
		&warehouse.Name,
		&warehouse.Location,
		&warehouse.Capacity,
		&warehouse.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get warehouse: %w", err)
	}

	return warehouse, nil
}

// List retrieves all warehouses
func (r *WarehouseRepository) List(ctx context.Context) ([]*models.Warehouse, error) {
	query := `
		SELECT warehouse_id, warehouse_name, location, capacity, created_at
		FROM warehouses
		ORDER BY warehouse_name
	`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []*models.Warehouse
	for rows.Next() {
		warehouse := &models.Warehouse{}
		err := rows.Scan(
			&warehouse.ID,
			&warehouse.Name,
			&warehouse.Location,
			&warehouse.Capacity,
			&warehouse.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan warehouse: %w", err)
		}
		warehouses = append(warehouses, warehouse)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating warehouse rows: %w", err)
	}

	return warehouses, nil
}
