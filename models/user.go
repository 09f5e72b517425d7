package models

import "time"

// UserStatus represents the lifecycle state of a user account
type UserStatus string

const (
	StatusActive   UserStatus = "ACTIVE"
	StatusInactive UserStatus = "INACTIVE"
)

// User represents an authenticable operator account. The password field
// holds a bcrypt hash, never plaintext; it is excluded from JSON.
type User struct {
	ID           int64            `json:"id" db:"user_id"`
	Username     string           `json:"username" db:"username"`
	Email        string           `json:"email" db:"email"`
	PasswordHash string           `json:"-" db:"password"`
	Status       UserStatus       `json:"status" db:"status"`
	Roles        []RoleAssignment `json:"roles,omitempty"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsActive returns true if the account may be issued new tokens
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// RoleNames returns the materialized role-name set for the user
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.RoleName)
	}
	return names
}

// RoleAssignment ties a user to a role by identifier, with the time the
// role was granted. The user side owns the association; Role keeps no
// back-pointer.
type RoleAssignment struct {
	RoleID     int64     `json:"role_id" db:"role_id"`
	RoleName   string    `json:"role_name" db:"role_name"`
	AssignedAt time.Time `json:"assigned_at" db:"assigned_date"`
}
