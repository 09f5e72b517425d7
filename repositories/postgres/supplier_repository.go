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

// SupplierRepository implements the repositories.SupplierRepository interface
type SupplierRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *DB, logger *zap.Logger) repositories.SupplierRepository {
	return &SupplierRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new supplier and populates its generated ID
func (r *SupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_name, contact_info, phone, email, lead_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING supplier_id
	`

	executor := GetExecutor(ctx, r.db)
	err := executor.QueryRowContext(ctx, query,
		supplier.Name,
		supplier.ContactInfo,
		supplier.Phone,
		supplier.Email,
		supplier.LeadTime,
		supplier.CreatedAt,
		supplier.UpdatedAt,
	).Scan(&supplier.ID)

	if err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}

	r.logger.Debug("supplier created", zap.Int64("id", supplier.ID), zap.String("name", supplier.Name))
	return nil
}

// GetByID retrieves a supplier by ID
func (r *SupplierRepository) GetByID(ctx context.Context, id int64) (*models.Supplier, error) {
	query := `
		SELECT supplier_id, supplier_name, contact_info, phone, email, lead_time, created_at, updated_at
		FROM suppliers
		WHERE supplier_id = $1
	`

	executor := GetExecutor(ctx, r.db)
	supplier := &models.Supplier{}

	err := executor.QueryRowContext(ctx, query, id).Scan(
		&supplier.ID,
		&supplier.Name,
		&supplier.ContactInfo,
		&supplier.Phone,
		&supplier.Email,
		&supplier.LeadTime,
		&supplier.CreatedAt,
		&supplier.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	return supplier, nil
}

// List retrieves all suppliers
func (r *SupplierRepository) List(ctx context.Context) ([]*models.Supplier, error) {
	query := `
		SELECT supplier_id, supplier_name, contact_info, phone, email, lead_time, created_at, updated_at
		FROM suppliers
		ORDER BY supplier_name
	`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*models.Supplier
	for rows.Next() {
		supplier := &models.Supplier{}
		err := rows.Scan(
			&supplier.ID,
			&supplier.Name,
			&supplier.ContactInfo,
			&supplier.Phone,
			&supplier.Email,
			&supplier.LeadTime,
			&supplier.CreatedAt,
			&supplier.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, supplier)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}

	return suppliers, nil
}

// Update overwrites the mutable supplier fields
func (r *SupplierRepository) Update(ctx context.Context, supplier *models.Supplier) error {
	query := `
		UPDATE suppliers
		SET supplier_name = $2,
		    contact_info = $3,
		    phone = $4,
		    email = $5,
		    lead_time = $6,
		    updated_at = NOW()
		WHERE supplier_id = $1
	`

	executor := GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query,
		supplier.ID,
		supplier.Name,
		supplier.ContactInfo,
		supplier.Phone,
		supplier.Email,
		supplier.LeadTime,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Debug("supplier updated", zap.Int64("id", supplier.ID))
	return nil
}

// Delete removes a supplier
func (r *SupplierRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM suppliers WHERE supplier_id = $1`

	executor := GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Debug("supplier deleted", zap.Int64("id", id))
	return nil
}
