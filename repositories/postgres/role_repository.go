package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stocksync/backend/models"
	"github.com/stocksync/backend/repositories"
	"go.uber.org/zap"
)

// RoleRepository implements the repositories.RoleRepository interface
type RoleRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *DB, logger *zap.Logger) repositories.RoleRepository {
	return &RoleRepository{
		db:     db,
		logger: logger,
	}
}

// GetByName retrieves a role from the catalog by its unique name
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	query := `SELECT role_id, role_name FROM roles WHERE role_name = $1`

	executor := GetExecutor(ctx, r.db)
	role := &models.Role{}

	err := executor.QueryRowContext(ctx, query, name).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return role, nil
}

// Assign records a role grant for a user
func (r *RoleRepository) Assign(ctx context.Context, userID, roleID int64, assignedAt time.Time) error {
	query := `
		INSERT INTO user_roles (user_id, role_id, assigned_date)
		VALUES ($1, $2, $3)
	`

	executor := GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, query, userID, roleID, assignedAt); err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}

	r.logger.Debug("role assigned", zap.Int64("user_id", userID), zap.Int64("role_id", roleID))
	return nil
}

// ResolveForUser returns the user's role assignments as a materialized
// snapshot in one query.
func (r *RoleRepository) ResolveForUser(ctx context.Context, userID int64) ([]models.RoleAssignment, error) {
	query := `
		SELECT ur.role_id, r.role_name, ur.assigned_date
		FROM user_roles ur
		JOIN roles r ON r.role_id = ur.role_id
		WHERE ur.user_id = $1
		ORDER BY r.role_name
	`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user roles: %w", err)
	}
	defer rows.Close()

	var assignments []models.RoleAssignment
	for rows.Next() {
		var a models.RoleAssignment
		if err := rows.Scan(&a.RoleID, &a.RoleName, &a.AssignedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", err)
	}

	return assignments, nil
}
