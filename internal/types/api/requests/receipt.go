package requests

// CreateReceiptRequest represents the request body for issuing a rent receipt
type CreateReceiptRequest struct {
	LeaseID     string  `json:"lease_id" binding:"required,uuid"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PeriodStart string  `json:"period_start" binding:"required"` // YYYY-MM-DD
	PeriodEnd   string  `json:"period_end" binding:"required"`   // YYYY-MM-DD
	Method      string  `json:"method,omitempty" binding:"omitempty,oneof=bank_transfer cash direct_debit"`
}

// MarkReceiptPaidRequest represents the request to record a payment on a receipt
type MarkReceiptPaidRequest struct {
	Method string `json:"method,omitempty" binding:"omitempty,oneof=bank_transfer cash direct_debit"`
	PaidAt string `json:"paid_at,omitempty"` // RFC 3339, defaults to now
}
