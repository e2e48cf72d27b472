package dto

import "github.com/staffkhata/staffkhata_backend/internal/core/domain"

// OwnerResponse is the externally visible shape of a store owner.
type OwnerResponse struct {
	OwnerID     string `json:"ownerID"`
	StoreName   string `json:"storeName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email,omitempty"`
}

// UpdateOwnerRequest defines the data allowed for updating an owner profile.
// Pointers differentiate omitted fields from zero values.
type UpdateOwnerRequest struct {
	StoreName *string `json:"storeName"`
	Email     *string `json:"email"`
}

// ToOwnerResponse converts a domain Owner to its response DTO
func ToOwnerResponse(owner *domain.Owner) OwnerResponse {
	return OwnerResponse{
		OwnerID:     owner.OwnerID,
		StoreName:   owner.StoreName,
		PhoneNumber: owner.PhoneNumber,
		Email:       owner.Email,
	}
}
