package handlers

import (
	"net/http"

	"github.com/arrenda/arrenda-api/internal/constants"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/api/requests"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TenantHandler handles tenant operations
type TenantHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(common *CommonServices, logger *zap.Logger) *TenantHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &TenantHandler{
		common: common,
		logger: logger,
	}
}

// Use types from the centralized packages
type CreateTenantRequest = requests.CreateTenantRequest
type UpdateTenantRequest = requests.UpdateTenantRequest
type TenantResponse = responses.TenantResponse

// CreateTenant godoc
// @Summary Create a tenant
// @Description Registers a new tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body CreateTenantRequest true "Tenant details"
// @Success 201 {object} TenantResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	tenant, err := h.common.TenantService.CreateTenant(c.Request.Context(), params.CreateTenantParams{
		Name:      req.Name,
		Email:     optionalString(req.Email),
		Phone:     optionalString(req.Phone),
		TaxNumber: optionalString(req.TaxNumber),
		Notes:     optionalString(req.Notes),
	})
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to create tenant", err)
		return
	}

	sendSuccess(c, http.StatusCreated, tenant)
}

// GetTenant godoc
// @Summary Get a tenant
// @Description Retrieves a tenant by its ID
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} TenantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tenants/{tenant_id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenant_id")
	if !ok {
		return
	}

	tenant, err := h.common.TenantService.GetTenant(c.Request.Context(), tenantID)
	if err != nil {
		handleDBError(c, err, constants.TenantNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, tenant)
}

// ListTenants godoc
// @Summary List tenants
// @Description Retrieves a paginated list of tenants
// @Tags tenants
// @Accept json
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param page query int false "Page number"
// @Success 200 {object} responses.PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	tenants, total, err := h.common.TenantService.ListTenants(c.Request.Context(), params.ListTenantsParams{
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list tenants", err)
		return
	}

	sendPaginatedSuccess(c, http.StatusOK, tenants, int(pagination.Page), int(pagination.Limit), int(total))
}

// UpdateTenant godoc
// @Summary Update a tenant
// @Description Applies a partial update to a tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param tenant body UpdateTenantRequest true "Fields to update"
// @Success 200 {object} TenantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tenants/{tenant_id} [patch]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenant_id")
	if !ok {
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	tenant, err := h.common.TenantService.UpdateTenant(c.Request.Context(), params.UpdateTenantParams{
		ID:        tenantID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		TaxNumber: req.TaxNumber,
		Notes:     req.Notes,
	})
	if err != nil {
		handleDBError(c, err, constants.TenantNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, tenant)
}

// DeleteTenant godoc
// @Summary Delete a tenant
// @Description Removes a tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tenants/{tenant_id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenant_id")
	if !ok {
		return
	}

	if err := h.common.TenantService.DeleteTenant(c.Request.Context(), tenantID); err != nil {
		handleDBError(c, err, constants.TenantNotFound)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Tenant deleted successfully")
}

// optionalString returns a pointer to s, or nil when s is empty.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
