package handlers

import (
	"net/http"
	"time"

	"github.com/arrenda/arrenda-api/internal/constants"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/services"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/api/requests"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TemplateHandler handles correspondence template operations
type TemplateHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(common *CommonServices, logger *zap.Logger) *TemplateHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &TemplateHandler{
		common: common,
		logger: logger,
	}
}

// Use types from the centralized packages
type CreateTemplateRequest = requests.CreateTemplateRequest
type UpdateTemplateRequest = requests.UpdateTemplateRequest
type TemplateResponse = responses.TemplateResponse
type RenderedTemplateResponse = responses.RenderedTemplateResponse

// CreateTemplate godoc
// @Summary Create a template
// @Description Creates a correspondence template with {{variable}} placeholders
// @Tags templates
// @Accept json
// @Produce json
// @Param template body CreateTemplateRequest true "Template details"
// @Success 201 {object} TemplateResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	template, err := h.common.TemplateService.CreateTemplate(c.Request.Context(), params.CreateTemplateParams{
		Name:     req.Name,
		Category: optionalString(req.Category),
		Subject:  optionalString(req.Subject),
		Content:  req.Content,
	})
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to create template", err)
		return
	}

	sendSuccess(c, http.StatusCreated, template)
}

// GetTemplate godoc
// @Summary Get a template
// @Description Retrieves a template by its ID, including its extracted variables
// @Tags templates
// @Accept json
// @Produce json
// @Param template_id path string true "Template ID"
// @Success 200 {object} TemplateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /templates/{template_id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	templateID, ok := parseUUIDParam(c, "template_id")
	if !ok {
		return
	}

	template, err := h.common.TemplateService.GetTemplate(c.Request.Context(), templateID)
	if err != nil {
		handleDBError(c, err, constants.TemplateNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, template)
}

// ListTemplates godoc
// @Summary List templates
// @Description Retrieves a paginated list of correspondence templates
// @Tags templates
// @Accept json
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param page query int false "Page number"
// @Success 200 {object} responses.PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	templates, total, err := h.common.TemplateService.ListTemplates(c.Request.Context(), params.ListTemplatesParams{
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list templates", err)
		return
	}

	sendPaginatedSuccess(c, http.StatusOK, templates, int(pagination.Page), int(pagination.Limit), int(total))
}

// UpdateTemplate godoc
// @Summary Update a template
// @Description Applies a partial update to a correspondence template
// @Tags templates
// @Accept json
// @Produce json
// @Param template_id path string true "Template ID"
// @Param template body UpdateTemplateRequest true "Fields to update"
// @Success 200 {object} TemplateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /templates/{template_id} [patch]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	templateID, ok := parseUUIDParam(c, "template_id")
	if !ok {
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	template, err := h.common.TemplateService.UpdateTemplate(c.Request.Context(), params.UpdateTemplateParams{
		ID:       templateID,
		Name:     req.Name,
		Category: req.Category,
		Subject:  req.Subject,
		Content:  req.Content,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidTemplate) {
			sendError(c, http.StatusBadRequest, "Template content cannot be empty", err)
			return
		}
		handleDBError(c, err, constants.TemplateNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, template)
}

// DeleteTemplate godoc
// @Summary Delete a template
// @Description Removes a correspondence template
// @Tags templates
// @Accept json
// @Produce json
// @Param template_id path string true "Template ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /templates/{template_id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	templateID, ok := parseUUIDParam(c, "template_id")
	if !ok {
		return
	}

	if err := h.common.TemplateService.DeleteTemplate(c.Request.Context(), templateID); err != nil {
		handleDBError(c, err, constants.TemplateNotFound)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Template deleted successfully")
}

// RenderTemplate godoc
// @Summary Render a template against a lease
// @Description Substitutes template placeholders with lease, tenant and property data
// @Tags templates
// @Accept json
// @Produce json
// @Param template_id path string true "Template ID"
// @Param render body requests.RenderTemplateRequest true "Render target"
// @Success 200 {object} RenderedTemplateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /templates/{template_id}/render [post]
func (h *TemplateHandler) RenderTemplate(c *gin.Context) {
	templateID, ok := parseUUIDParam(c, "template_id")
	if !ok {
		return
	}

	var req requests.RenderTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	leaseID, err := uuid.Parse(req.LeaseID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid lease_id format", err)
		return
	}

	rendered, err := h.common.TemplateService.RenderForLease(c.Request.Context(), templateID, leaseID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTemplate) {
			sendError(c, http.StatusBadRequest, "Template content cannot be empty", err)
			return
		}
		handleDBError(c, err, "Template or lease not found")
		return
	}

	sendSuccess(c, http.StatusOK, rendered)
}

// PreviewTemplate godoc
// @Summary Preview template content
// @Description Renders ad-hoc template content against a lease without storing it
// @Tags templates
// @Accept json
// @Produce json
// @Param preview body requests.PreviewTemplateRequest true "Content and render target"
// @Success 200 {object} RenderedTemplateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /templates/preview [post]
func (h *TemplateHandler) PreviewTemplate(c *gin.Context) {
	var req requests.PreviewTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	leaseID, err := uuid.Parse(req.LeaseID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid lease_id format", err)
		return
	}

	asOf := time.Now()
	if req.AsOf != "" {
		asOf, err = time.Parse(dateLayout, req.AsOf)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid as_of date format", err)
			return
		}
	}

	rendered, err := h.common.TemplateService.RenderContentForLease(c.Request.Context(), req.Content, leaseID, asOf)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTemplate) {
			sendError(c, http.StatusBadRequest, "Template content cannot be empty", err)
			return
		}
		handleDBError(c, err, constants.LeaseNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, rendered)
}

// SendNotice godoc
// @Summary Send a notice to a tenant
// @Description Renders a template against a lease and queues it for delivery
// @Tags templates
// @Accept json
// @Produce json
// @Param notice body requests.SendNoticeRequest true "Template and lease"
// @Success 202 {object} responses.NoticeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /notices [post]
func (h *TemplateHandler) SendNotice(c *gin.Context) {
	var req requests.SendNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	templateID, err := uuid.Parse(req.TemplateID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid template_id format", err)
		return
	}
	leaseID, err := uuid.Parse(req.LeaseID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid lease_id format", err)
		return
	}

	notice, err := h.common.CorrespondenceService.SendNotice(c.Request.Context(), params.SendNoticeParams{
		TemplateID: templateID,
		LeaseID:    leaseID,
	})
	if err != nil {
		handleDBError(c, err, "Template or lease not found")
		return
	}

	sendSuccess(c, http.StatusAccepted, notice)
}
