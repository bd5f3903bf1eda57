package params

import (
	"time"

	"github.com/google/uuid"
)

// CreateLeaseParams contains parameters for creating a lease
type CreateLeaseParams struct {
	PropertyID uuid.UUID
	TenantID   uuid.UUID
	RentAmount float64
	Currency   string
	StartDate  time.Time
	EndDate    *time.Time
}

// UpdateLeaseParams contains parameters for updating a lease
type UpdateLeaseParams struct {
	ID         uuid.UUID
	RentAmount *float64
	EndDate    *time.Time
	Status     *string
}

// ListLeasesParams contains parameters for listing leases
type ListLeasesParams struct {
	Limit  int32
	Offset int32
}
