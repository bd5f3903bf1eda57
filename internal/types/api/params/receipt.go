package params

import (
	"time"

	"github.com/google/uuid"
)

// CreateReceiptParams contains parameters for issuing a rent receipt
type CreateReceiptParams struct {
	LeaseID     uuid.UUID
	Amount      float64
	PeriodStart time.Time
	PeriodEnd   time.Time
	Method      *string
}

// MarkReceiptPaidParams contains parameters for recording a payment
type MarkReceiptPaidParams struct {
	ID     uuid.UUID
	Method *string
	PaidAt time.Time
}

// ListReceiptsParams contains parameters for listing receipts of a lease
type ListReceiptsParams struct {
	LeaseID uuid.UUID
	Limit   int32
	Offset  int32
}
