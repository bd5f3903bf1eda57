package responses

import "time"

// LeaseResponse represents a lease in API responses
type LeaseResponse struct {
	ID         string    `json:"id"`
	Object     string    `json:"object"`
	PropertyID string    `json:"property_id"`
	TenantID   string    `json:"tenant_id"`
	RentAmount float64   `json:"rent_amount"`
	Currency   string    `json:"currency"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LeaseDetailsResponse represents a lease joined with its tenant and property
type LeaseDetailsResponse struct {
	LeaseResponse
	TenantName      string `json:"tenant_name"`
	TenantEmail     string `json:"tenant_email,omitempty"`
	PropertyName    string `json:"property_name"`
	PropertyAddress string `json:"property_address"`
	PropertyCity    string `json:"property_city"`
	Bedrooms        *int32 `json:"bedrooms,omitempty"`
	Bathrooms       *int32 `json:"bathrooms,omitempty"`
}
