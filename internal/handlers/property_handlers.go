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

// PropertyHandler handles property operations
type PropertyHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(common *CommonServices, logger *zap.Logger) *PropertyHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &PropertyHandler{
		common: common,
		logger: logger,
	}
}

// Use types from the centralized packages
type CreatePropertyRequest = requests.CreatePropertyRequest
type UpdatePropertyRequest = requests.UpdatePropertyRequest
type PropertyResponse = responses.PropertyResponse

// CreateProperty godoc
// @Summary Create a property
// @Description Registers a new rental property
// @Tags properties
// @Accept json
// @Produce json
// @Param property body CreatePropertyRequest true "Property details"
// @Success 201 {object} PropertyResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	property, err := h.common.PropertyService.CreateProperty(c.Request.Context(), params.CreatePropertyParams{
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		AddressLine2: optionalString(req.AddressLine2),
		City:         req.City,
		PostalCode:   optionalString(req.PostalCode),
		Country:      req.Country,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Notes:        optionalString(req.Notes),
	})
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to create property", err)
		return
	}

	sendSuccess(c, http.StatusCreated, property)
}

// GetProperty godoc
// @Summary Get a property
// @Description Retrieves a property by its ID
// @Tags properties
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Success 200 {object} PropertyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /properties/{property_id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	propertyID, ok := parseUUIDParam(c, "property_id")
	if !ok {
		return
	}

	property, err := h.common.PropertyService.GetProperty(c.Request.Context(), propertyID)
	if err != nil {
		handleDBError(c, err, constants.PropertyNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, property)
}

// ListProperties godoc
// @Summary List properties
// @Description Retrieves a paginated list of properties
// @Tags properties
// @Accept json
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param page query int false "Page number"
// @Success 200 {object} responses.PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	properties, total, err := h.common.PropertyService.ListProperties(c.Request.Context(), params.ListPropertiesParams{
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list properties", err)
		return
	}

	sendPaginatedSuccess(c, http.StatusOK, properties, int(pagination.Page), int(pagination.Limit), int(total))
}

// UpdateProperty godoc
// @Summary Update a property
// @Description Applies a partial update to a property
// @Tags properties
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Param property body UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} PropertyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /properties/{property_id} [patch]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	propertyID, ok := parseUUIDParam(c, "property_id")
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	property, err := h.common.PropertyService.UpdateProperty(c.Request.Context(), params.UpdatePropertyParams{
		ID:           propertyID,
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Notes:        req.Notes,
	})
	if err != nil {
		handleDBError(c, err, constants.PropertyNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, property)
}

// DeleteProperty godoc
// @Summary Delete a property
// @Description Removes a property
// @Tags properties
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /properties/{property_id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	propertyID, ok := parseUUIDParam(c, "property_id")
	if !ok {
		return
	}

	if err := h.common.PropertyService.DeleteProperty(c.Request.Context(), propertyID); err != nil {
		handleDBError(c, err, constants.PropertyNotFound)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Property deleted successfully")
}
