package domain

import "time"

// AuthProvider identifies how an owner authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// Owner represents a store owner. The owner is the tenant boundary: every
// employee, attendance entry and snapshot is scoped to exactly one owner,
// and no query crosses that boundary.
type Owner struct {
	OwnerID      string       `json:"ownerID"` // Primary key (UUID)
	StoreName    string       `json:"storeName"`
	PhoneNumber  string       `json:"phoneNumber"` // Login identifier, unique
	Email        string       `json:"email,omitempty"`
	PasswordHash string       `json:"-"` // Empty for provider-created owners
	AuthProvider AuthProvider `json:"authProvider"`
	// ProviderUserID is the subject identifier at the external provider (Google "sub").
	ProviderUserID string `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// GoogleUserInfo is the user information returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
