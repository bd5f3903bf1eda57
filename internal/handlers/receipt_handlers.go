package handlers

import (
	"net/http"
	"time"

	"github.com/arrenda/arrenda-api/internal/constants"
	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/services"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/api/requests"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReceiptHandler handles rent receipt operations
type ReceiptHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(common *CommonServices, logger *zap.Logger) *ReceiptHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &ReceiptHandler{
		common: common,
		logger: logger,
	}
}

// Use types from the centralized packages
type CreateReceiptRequest = requests.CreateReceiptRequest
type MarkReceiptPaidRequest = requests.MarkReceiptPaidRequest
type ReceiptResponse = responses.ReceiptResponse

// CreateReceipt godoc
// @Summary Issue a rent receipt
// @Description Issues a receipt for a rent period on a lease
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt body CreateReceiptRequest true "Receipt details"
// @Success 201 {object} ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /receipts [post]
func (h *ReceiptHandler) CreateReceipt(c *gin.Context) {
	var req CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	leaseID, err := uuid.Parse(req.LeaseID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid lease_id format", err)
		return
	}

	periodStart, err := time.Parse(dateLayout, req.PeriodStart)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid period_start, expected YYYY-MM-DD", err)
		return
	}
	periodEnd, err := time.Parse(dateLayout, req.PeriodEnd)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid period_end, expected YYYY-MM-DD", err)
		return
	}

	// The lease lookup and the insert run in one transaction so a
	// concurrent lease delete cannot land between them.
	var receipt *responses.ReceiptResponse
	err = h.common.InTransaction(c.Request.Context(), func(q db.Querier) error {
		var txErr error
		receipt, txErr = services.NewReceiptService(q).CreateReceipt(c.Request.Context(), params.CreateReceiptParams{
			LeaseID:     leaseID,
			Amount:      req.Amount,
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
			Method:      optionalString(req.Method),
		})
		return txErr
	})
	if err != nil {
		handleDBError(c, err, constants.LeaseNotFound)
		return
	}

	sendSuccess(c, http.StatusCreated, receipt)
}

// GetReceipt godoc
// @Summary Get a receipt
// @Description Retrieves a receipt by its ID
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt_id path string true "Receipt ID"
// @Success 200 {object} ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /receipts/{receipt_id} [get]
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	receiptID, ok := parseUUIDParam(c, "receipt_id")
	if !ok {
		return
	}

	receipt, err := h.common.ReceiptService.GetReceipt(c.Request.Context(), receiptID)
	if err != nil {
		handleDBError(c, err, constants.ReceiptNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, receipt)
}

// ListReceipts godoc
// @Summary List receipts for a lease
// @Description Retrieves receipts of a lease, newest period first
// @Tags receipts
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Param limit query int false "Page size (max 100)"
// @Param page query int false "Page number"
// @Success 200 {object} responses.PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /leases/{lease_id}/receipts [get]
func (h *ReceiptHandler) ListReceipts(c *gin.Context) {
	leaseID, ok := parseUUIDParam(c, "lease_id")
	if !ok {
		return
	}

	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	receipts, err := h.common.ReceiptService.ListReceiptsByLease(c.Request.Context(), params.ListReceiptsParams{
		LeaseID: leaseID,
		Limit:   pagination.Limit,
		Offset:  pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list receipts", err)
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{"object": "list", "data": receipts})
}

// ListOutstandingReceipts godoc
// @Summary List outstanding receipts
// @Description Retrieves all receipts not yet marked as paid
// @Tags receipts
// @Accept json
// @Produce json
// @Success 200 {object} responses.PaginatedResponse
// @Security ApiKeyAuth
// @Router /receipts/outstanding [get]
func (h *ReceiptHandler) ListOutstandingReceipts(c *gin.Context) {
	receipts, err := h.common.ReceiptService.ListOutstandingReceipts(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list outstanding receipts", err)
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{"object": "list", "data": receipts})
}

// MarkReceiptPaid godoc
// @Summary Mark a receipt as paid
// @Description Records a payment against a receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt_id path string true "Receipt ID"
// @Param payment body MarkReceiptPaidRequest true "Payment details"
// @Success 200 {object} ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /receipts/{receipt_id}/pay [post]
func (h *ReceiptHandler) MarkReceiptPaid(c *gin.Context) {
	receiptID, ok := parseUUIDParam(c, "receipt_id")
	if !ok {
		return
	}

	var req MarkReceiptPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	paidAt := time.Now().UTC()
	if req.PaidAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.PaidAt)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid paid_at, expected RFC 3339", err)
			return
		}
		paidAt = parsed
	}

	receipt, err := h.common.ReceiptService.MarkReceiptPaid(c.Request.Context(), params.MarkReceiptPaidParams{
		ID:     receiptID,
		Method: optionalString(req.Method),
		PaidAt: paidAt,
	})
	if err != nil {
		handleDBError(c, err, constants.ReceiptNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, receipt)
}
