package handlers

import (
	"net/http"

	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/services"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/api/requests"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TaxHandler handles rental tax calculation operations
type TaxHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewTaxHandler creates a new tax handler
func NewTaxHandler(common *CommonServices, logger *zap.Logger) *TaxHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &TaxHandler{
		common: common,
		logger: logger,
	}
}

// Use types from the centralized packages
type CalculateTaxRequest = requests.CalculateTaxRequest
type TaxCalculationResponse = responses.TaxCalculationResponse
type TaxAssessmentResponse = responses.TaxAssessmentResponse

// CalculateTax godoc
// @Summary Calculate rental tax
// @Description Calculates rental income tax for a supported jurisdiction, optionally persisting the assessment
// @Tags tax
// @Accept json
// @Produce json
// @Param calculation body CalculateTaxRequest true "Calculation inputs"
// @Success 200 {object} TaxCalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tax/calculations [post]
func (h *TaxHandler) CalculateTax(c *gin.Context) {
	var req CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.common.TaxService.CalculateTax(c.Request.Context(), params.CalculateTaxParams{
		Jurisdiction:       req.Jurisdiction,
		AnnualRentalIncome: req.AnnualRentalIncome,
		DeductibleExpenses: req.DeductibleExpenses,
		Persist:            req.Persist,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedJurisdiction):
			sendError(c, http.StatusUnprocessableEntity, "Unsupported jurisdiction", err)
		case errors.Is(err, services.ErrInvalidAmount):
			sendError(c, http.StatusBadRequest, "Invalid amount", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to calculate tax", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// ListAssessments godoc
// @Summary List tax assessments
// @Description Retrieves persisted tax assessments, newest first
// @Tags tax
// @Accept json
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param page query int false "Page number"
// @Success 200 {object} responses.PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tax/assessments [get]
func (h *TaxHandler) ListAssessments(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	assessments, total, err := h.common.TaxService.ListAssessments(c.Request.Context(), params.ListTaxAssessmentsParams{
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list assessments", err)
		return
	}

	sendPaginatedSuccess(c, http.StatusOK, assessments, int(pagination.Page), int(pagination.Limit), int(total))
}

// ListJurisdictions godoc
// @Summary List supported jurisdictions
// @Description Retrieves the tax jurisdictions the calculator supports
// @Tags tax
// @Accept json
// @Produce json
// @Success 200 {object} responses.PaginatedResponse
// @Security ApiKeyAuth
// @Router /tax/jurisdictions [get]
func (h *TaxHandler) ListJurisdictions(c *gin.Context) {
	jurisdictions := h.common.TaxService.ListJurisdictions()
	sendSuccess(c, http.StatusOK, gin.H{"object": "list", "data": jurisdictions})
}
