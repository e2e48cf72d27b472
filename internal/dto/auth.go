package dto

// RegisterOwnerRequest defines the payload for store owner registration.
type RegisterOwnerRequest struct {
	StoreName   string `json:"storeName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
}

// LoginRequest defines the payload for phone + password login.
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// GoogleIDTokenRequest carries a Google ID token obtained by a client-side flow.
type GoogleIDTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginResponse is returned on successful login or registration.
type LoginResponse struct {
	Token string        `json:"token"`
	Owner OwnerResponse `json:"owner"`
}

// RefreshTokenResponse is returned on successful token refresh.
type RefreshTokenResponse struct {
	Token string `json:"token"`
}
