package responses

import "time"

// ReceiptResponse represents a rent receipt in API responses
type ReceiptResponse struct {
	ID          string     `json:"id"`
	Object      string     `json:"object"`
	LeaseID     string     `json:"lease_id"`
	Amount      float64    `json:"amount"`
	PeriodStart string     `json:"period_start"`
	PeriodEnd   string     `json:"period_end"`
	Method      string     `json:"method,omitempty"`
	Reference   string     `json:"reference"`
	IssuedAt    time.Time  `json:"issued_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
