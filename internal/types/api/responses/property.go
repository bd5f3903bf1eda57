package responses

import "time"

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	ID           string    `json:"id"`
	Object       string    `json:"object"`
	Name         string    `json:"name"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	City         string    `json:"city"`
	PostalCode   string    `json:"postal_code,omitempty"`
	Country      string    `json:"country"`
	Bedrooms     *int32    `json:"bedrooms,omitempty"`
	Bathrooms    *int32    `json:"bathrooms,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
