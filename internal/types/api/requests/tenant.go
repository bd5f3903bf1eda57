package requests

// CreateTenantRequest represents the request body for creating a tenant
type CreateTenantRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email,omitempty" binding:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
	TaxNumber string `json:"tax_number,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// UpdateTenantRequest represents the request body for updating a tenant
type UpdateTenantRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
	TaxNumber *string `json:"tax_number,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}
