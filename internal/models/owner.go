package models

import (
	"database/sql"
	"time"
)

// Owner represents a store owner row as stored in the owners table.
type Owner struct {
	OwnerID        string         `db:"owner_id"`
	StoreName      string         `db:"store_name"`
	PhoneNumber    string         `db:"phone_number"`
	Email          sql.NullString `db:"email"`
	PasswordHash   sql.NullString `db:"password_hash"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
