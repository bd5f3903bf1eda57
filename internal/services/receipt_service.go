package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReceiptService handles rent receipt issuance and payment tracking
type ReceiptService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewReceiptService creates a new receipt service
func NewReceiptService(queries db.Querier) *ReceiptService {
	return &ReceiptService{
		queries: queries,
		logger:  logger.Log,
	}
}

// CreateReceipt issues a rent receipt for a lease period
func (s *ReceiptService) CreateReceipt(ctx context.Context, params params.CreateReceiptParams) (*responses.ReceiptResponse, error) {
	if _, err := s.queries.GetLease(ctx, params.LeaseID); err != nil {
		return nil, fmt.Errorf("lease lookup failed: %w", err)
	}
	if params.PeriodEnd.Before(params.PeriodStart) {
		return nil, fmt.Errorf("period end %s precedes period start %s",
			params.PeriodEnd.Format("2006-01-02"), params.PeriodStart.Format("2006-01-02"))
	}

	amount, err := helpers.NumericFromFloat(params.Amount)
	if err != nil {
		return nil, err
	}

	receipt, err := s.queries.CreateReceipt(ctx, db.CreateReceiptParams{
		LeaseID:     params.LeaseID,
		Amount:      amount,
		PeriodStart: helpers.DateFromTime(params.PeriodStart),
		PeriodEnd:   helpers.DateFromTime(params.PeriodEnd),
		Method:      helpers.TextFromPtr(params.Method),
		Reference:   newReceiptReference(params.PeriodStart.Format("200601")),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create receipt: %w", err)
	}

	s.logger.Info("Issued receipt",
		zap.String("receipt_id", receipt.ID.String()),
		zap.String("lease_id", receipt.LeaseID.String()),
		zap.String("reference", receipt.Reference))

	return s.toResponse(receipt)
}

// GetReceipt retrieves a receipt by ID
func (s *ReceiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*responses.ReceiptResponse, error) {
	receipt, err := s.queries.GetReceipt(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toResponse(receipt)
}

// ListReceiptsByLease returns a page of receipts for one lease
func (s *ReceiptService) ListReceiptsByLease(ctx context.Context, params params.ListReceiptsParams) ([]responses.ReceiptResponse, error) {
	receipts, err := s.queries.ListReceiptsByLease(ctx, db.ListReceiptsByLeaseParams{
		LeaseID: params.LeaseID,
		Limit:   params.Limit,
		Offset:  params.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}

	return s.toResponses(receipts)
}

// ListOutstandingReceipts returns all unpaid receipts
func (s *ReceiptService) ListOutstandingReceipts(ctx context.Context) ([]responses.ReceiptResponse, error) {
	receipts, err := s.queries.ListOutstandingReceipts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list outstanding receipts: %w", err)
	}

	return s.toResponses(receipts)
}

// MarkReceiptPaid records a payment against a receipt
func (s *ReceiptService) MarkReceiptPaid(ctx context.Context, params params.MarkReceiptPaidParams) (*responses.ReceiptResponse, error) {
	receipt, err := s.queries.MarkReceiptPaid(ctx, db.MarkReceiptPaidParams{
		ID:     params.ID,
		PaidAt: helpers.TimestamptzFromTime(params.PaidAt),
		Method: helpers.TextFromPtr(params.Method),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Marked receipt paid",
		zap.String("receipt_id", receipt.ID.String()),
		zap.String("reference", receipt.Reference))

	return s.toResponse(receipt)
}

func (s *ReceiptService) toResponse(receipt db.Receipt) (*responses.ReceiptResponse, error) {
	amount, err := helpers.NumericToFloat(receipt.Amount)
	if err != nil {
		return nil, err
	}

	return &responses.ReceiptResponse{
		ID:          receipt.ID.String(),
		Object:      "receipt",
		LeaseID:     receipt.LeaseID.String(),
		Amount:      amount,
		PeriodStart: helpers.DateString(receipt.PeriodStart),
		PeriodEnd:   helpers.DateString(receipt.PeriodEnd),
		Method:      helpers.TextOrEmpty(receipt.Method),
		Reference:   receipt.Reference,
		IssuedAt:    helpers.TimeOrZero(receipt.IssuedAt),
		PaidAt:      helpers.TimePtr(receipt.PaidAt),
		CreatedAt:   helpers.TimeOrZero(receipt.CreatedAt),
	}, nil
}

func (s *ReceiptService) toResponses(receipts []db.Receipt) ([]responses.ReceiptResponse, error) {
	result := make([]responses.ReceiptResponse, 0, len(receipts))
	for _, receipt := range receipts {
		response, err := s.toResponse(receipt)
		if err != nil {
			return nil, err
		}
		result = append(result, *response)
	}
	return result, nil
}

// newReceiptReference builds a reference like RC-202608-1A2B3C4D. References
// are display identifiers, not primary keys.
func newReceiptReference(period string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("RC-%s-%s", period, suffix)
}
