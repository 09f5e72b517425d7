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

// GRNRepository implements the repositories.GRNRepository interface
type GRNRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewGRNRepository creates a new GRN repository
func NewGRNRepository(db *DB, logger *zap.Logger) repositories.GRNRepository {
	return &GRNRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new goods received note and populates its generated ID
func (r *GRNRepository) Create(ctx context.Context, grn *models.GRN) error {
	query := `
		INSERT INTO grns (grn_number, order_id, grn_note, status, received_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING grn_id
	`

	executor := GetExecutor(ctx, r.db)
	err := executor.QueryRowContext(ctx, query,
		grn.Number,
		grn.PurchaseOrderID,
		grn.Note,
		grn.Status,
		grn.ReceivedDate,
		grn.CreatedAt,
	).Scan(&grn.ID)

	if err != nil {
		return fmt.Errorf("failed to create GRN: %w", err)
	}

	r.logger.Debug("GRN created", zap.Int64("id", grn.ID), zap.String("number", grn.Number))
	return nil
}

// GetByID retrieves a GRN by ID
func (r *GRNRepository) GetByID(ctx context.Context, id int64) (*models.GRN, error) {
	query := `
		SELECT grn_id, grn_number, order_id, grn_note, status, received_date, created_at
		FROM grns
		WHERE grn_id = $1
	`

	executor := GetExecutor(ctx, r.db)
	grn := &models.GRN{}

	err := executor.QueryRowContext(ctx, query, id).Scan(
		&grn.ID,
		&grn.Number,
		&grn.PurchaseOrderID,
		&grn.Note,
		&grn.Status,
		&grn.ReceivedDate,
		&grn.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get GRN: %w", err)
	}

	return grn, nil
}

// List retrieves all GRNs, newest first
func (r *GRNRepository) List(ctx context.Context) ([]*models.GRN, error) {
	query := `
		SELECT grn_id, grn_number, order_id, grn_note, status, received_date, created_at
		FROM grns
		ORDER BY created_at DESC
	`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query GRNs: %w", err)
	}
	defer rows.Close()

	var grns []*models.GRN
	for rows.Next() {
		grn := &models.GRN{}
		err := rows.Scan(
			&grn.ID,
			&grn.Number,
			&grn.PurchaseOrderID,
			&grn.Note,
			&grn.Status,
			&grn.ReceivedDate,
			&grn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan GRN: %w", err)
		}
		grns = append(grns, grn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating GRN rows: %w", err)
	}

	return grns, nil
}

// CountByStatus counts GRNs in a given status
func (r *GRNRepository) CountByStatus(ctx context.Context, status models.GRNStatus) (int, error) {
	query := `SELECT COUNT(*) FROM grns WHERE status = $1`

	executor := GetExecutor(ctx, r.db)
	var count int
	if err := executor.QueryRowContext(ctx, query, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count GRNs by status: %w", err)
	}
	return count, nil
}

// Count counts all GRNs
func (r *GRNRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM grns`

	executor := GetExecutor(ctx, r.db)
	var count int
	if err := executor.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count GRNs: %w", err)
	}
	return count, nil
}
