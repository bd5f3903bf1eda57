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

const dateLayout = "2006-01-02"

// LeaseHandler handles lease operations
type LeaseHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewLeaseHandler creates a new lease handler
func NewLeaseHandler(common *CommonServices, logger *zap.Logger) *LeaseHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &LeaseHandler{
		common: common,
		logger: logger,
	}
}

// Use types from the centralized packages
type CreateLeaseRequest = requests.CreateLeaseRequest
type UpdateLeaseRequest = requests.UpdateLeaseRequest
type LeaseResponse = responses.LeaseResponse
type LeaseDetailsResponse = responses.LeaseDetailsResponse

// CreateLease godoc
// @Summary Create a lease
// @Description Creates a lease linking a tenant to a property
// @Tags leases
// @Accept json
// @Produce json
// @Param lease body CreateLeaseRequest true "Lease details"
// @Success 201 {object} LeaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /leases [post]
func (h *LeaseHandler) CreateLease(c *gin.Context) {
	var req CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid property_id format", err)
		return
	}
	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid tenant_id format", err)
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD", err)
		return
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD", err)
			return
		}
		endDate = &parsed
	}

	// The existence checks and the insert run in one transaction so a
	// concurrent property or tenant delete cannot land between them.
	var lease *responses.LeaseResponse
	err = h.common.InTransaction(c.Request.Context(), func(q db.Querier) error {
		var txErr error
		lease, txErr = services.NewLeaseService(q).CreateLease(c.Request.Context(), params.CreateLeaseParams{
			PropertyID: propertyID,
			TenantID:   tenantID,
			RentAmount: req.RentAmount,
			Currency:   req.Currency,
			StartDate:  startDate,
			EndDate:    endDate,
		})
		return txErr
	})
	if err != nil {
		handleDBError(c, err, "Property or tenant not found")
		return
	}

	sendSuccess(c, http.StatusCreated, lease)
}

// GetLease godoc
// @Summary Get a lease
// @Description Retrieves a lease by its ID
// @Tags leases
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Success 200 {object} LeaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /leases/{lease_id} [get]
func (h *LeaseHandler) GetLease(c *gin.Context) {
	leaseID, ok := parseUUIDParam(c, "lease_id")
	if !ok {
		return
	}

	lease, err := h.common.LeaseService.GetLease(c.Request.Context(), leaseID)
	if err != nil {
		handleDBError(c, err, constants.LeaseNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, lease)
}

// GetLeaseDetails godoc
// @Summary Get lease details
// @Description Retrieves a lease joined with its tenant and property
// @Tags leases
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Success 200 {object} LeaseDetailsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /leases/{lease_id}/details [get]
func (h *LeaseHandler) GetLeaseDetails(c *gin.Context) {
	leaseID, ok := parseUUIDParam(c, "lease_id")
	if !ok {
		return
	}

	details, err := h.common.LeaseService.GetLeaseDetails(c.Request.Context(), leaseID)
	if err != nil {
		handleDBError(c, err, constants.LeaseNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, details)
}

// ListLeases godoc
// @Summary List leases
// @Description Retrieves a paginated list of leases
// @Tags leases
// @Accept json
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param page query int false "Page number"
// @Param property_id query string false "Filter by property"
// @Param tenant_id query string false "Filter by tenant"
// @Success 200 {object} responses.PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /leases [get]
func (h *LeaseHandler) ListLeases(c *gin.Context) {
	// Filtered listings are unpaginated, a single property or tenant
	// holds few leases.
	if propertyIDStr := c.Query("property_id"); propertyIDStr != "" {
		propertyID, err := uuid.Parse(propertyIDStr)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid property_id format", err)
			return
		}
		leases, err := h.common.LeaseService.ListLeasesByProperty(c.Request.Context(), propertyID)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to list leases", err)
			return
		}
		sendSuccess(c, http.StatusOK, gin.H{"object": "list", "data": leases})
		return
	}

	if tenantIDStr := c.Query("tenant_id"); tenantIDStr != "" {
		tenantID, err := uuid.Parse(tenantIDStr)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid tenant_id format", err)
			return
		}
		leases, err := h.common.LeaseService.ListLeasesByTenant(c.Request.Context(), tenantID)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to list leases", err)
			return
		}
		sendSuccess(c, http.StatusOK, gin.H{"object": "list", "data": leases})
		return
	}

	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	leases, total, err := h.common.LeaseService.ListLeases(c.Request.Context(), params.ListLeasesParams{
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list leases", err)
		return
	}

	sendPaginatedSuccess(c, http.StatusOK, leases, int(pagination.Page), int(pagination.Limit), int(total))
}

// UpdateLease godoc
// @Summary Update a lease
// @Description Updates rent amount, end date or status of a lease
// @Tags leases
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Param lease body UpdateLeaseRequest true "Fields to update"
// @Success 200 {object} LeaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /leases/{lease_id} [patch]
func (h *LeaseHandler) UpdateLease(c *gin.Context) {
	leaseID, ok := parseUUIDParam(c, "lease_id")
	if !ok {
		return
	}

	var req UpdateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD", err)
			return
		}
		endDate = &parsed
	}

	lease, err := h.common.LeaseService.UpdateLease(c.Request.Context(), params.UpdateLeaseParams{
		ID:         leaseID,
		RentAmount: req.RentAmount,
		EndDate:    endDate,
		Status:     req.Status,
	})
	if err != nil {
		handleDBError(c, err, constants.LeaseNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, lease)
}

// UpdateLeaseStatus godoc
// @Summary Update lease status
// @Description Moves a lease to active, terminated or expired
// @Tags leases
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Param status body requests.UpdateLeaseStatusRequest true "New status"
// @Success 200 {object} LeaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /leases/{lease_id}/status [put]
func (h *LeaseHandler) UpdateLeaseStatus(c *gin.Context) {
	leaseID, ok := parseUUIDParam(c, "lease_id")
	if !ok {
		return
	}

	var req requests.UpdateLeaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	lease, err := h.common.LeaseService.UpdateLeaseStatus(c.Request.Context(), leaseID, req.Status)
	if err != nil {
		handleDBError(c, err, constants.LeaseNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, lease)
}
