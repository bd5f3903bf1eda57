package requests

// CreatePropertyRequest represents the request body for creating a property
type CreatePropertyRequest struct {
	Name         string `json:"name" binding:"required"`
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city" binding:"required"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country" binding:"required"`
	Bedrooms     *int32 `json:"bedrooms,omitempty"`
	Bathrooms    *int32 `json:"bathrooms,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// UpdatePropertyRequest represents the request body for updating a property
type UpdatePropertyRequest struct {
	Name         *string `json:"name,omitempty"`
	AddressLine1 *string `json:"address_line1,omitempty"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	City         *string `json:"city,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`
	Country      *string `json:"country,omitempty"`
	Bedrooms     *int32  `json:"bedrooms,omitempty"`
	Bathrooms    *int32  `json:"bathrooms,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}
