package params

import "github.com/google/uuid"

// CreateTenantParams contains parameters for creating a tenant
type CreateTenantParams struct {
	Name      string
	Email     *string
	Phone     *string
	TaxNumber *string
	Notes     *string
}

// UpdateTenantParams contains parameters for updating a tenant
type UpdateTenantParams struct {
	ID        uuid.UUID
	Name      *string
	Email     *string
	Phone     *string
	TaxNumber *string
	Notes     *string
}

// ListTenantsParams contains parameters for listing tenants
type ListTenantsParams struct {
	Limit  int32
	Offset int32
}
