package models

import "time"

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a user row.
type User struct {
	UserID       string       `db:"user_id"`
	Name         string       `db:"name"`
	Username     string       `db:"username"`
	PasswordHash string       `db:"password_hash"` // Empty for external providers
	Provider     AuthProvider `db:"provider"`
	GoogleID     *string      `db:"google_id"` // Nullable
	Email        *string      `db:"email"`     // Nullable
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"` // Used for soft delete
}
