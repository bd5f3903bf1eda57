package params

import "github.com/google/uuid"

// CreatePropertyParams contains parameters for creating a property
type CreatePropertyParams struct {
	Name         string
	AddressLine1 string
	AddressLine2 *string
	City         string
	PostalCode   *string
	Country      string
	Bedrooms     *int32
	Bathrooms    *int32
	Notes        *string
}

// UpdatePropertyParams contains parameters for updating a property
type UpdatePropertyParams struct {
	ID           uuid.UUID
	Name         *string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	PostalCode   *string
	Country      *string
	Bedrooms     *int32
	Bathrooms    *int32
	Notes        *string
}

// ListPropertiesParams contains parameters for listing properties
type ListPropertiesParams struct {
	Limit  int32
	Offset int32
}
