package requests

// CreateLeaseRequest represents the request body for creating a lease
type CreateLeaseRequest struct {
	PropertyID string  `json:"property_id" binding:"required,uuid"`
	TenantID   string  `json:"tenant_id" binding:"required,uuid"`
	RentAmount float64 `json:"rent_amount" binding:"required,gt=0"`
	Currency   string  `json:"currency,omitempty"`
	StartDate  string  `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate    string  `json:"end_date,omitempty"`            // YYYY-MM-DD
}

// UpdateLeaseRequest represents the request body for updating a lease
type UpdateLeaseRequest struct {
	RentAmount *float64 `json:"rent_amount,omitempty" binding:"omitempty,gt=0"`
	EndDate    *string  `json:"end_date,omitempty"`
	Status     *string  `json:"status,omitempty" binding:"omitempty,oneof=active terminated expired"`
}

// UpdateLeaseStatusRequest represents the request to change a lease status
type UpdateLeaseStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active terminated expired"`
}
