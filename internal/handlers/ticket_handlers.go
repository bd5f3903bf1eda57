package handlers

import (
	"net/http"

	"github.com/arrenda/arrenda-api/internal/constants"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/api/requests"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TicketHandler handles maintenance ticket operations
type TicketHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewTicketHandler creates a new maintenance ticket handler
func NewTicketHandler(common *CommonServices, logger *zap.Logger) *TicketHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &TicketHandler{
		common: common,
		logger: logger,
	}
}

// Use types from the centralized packages
type CreateTicketRequest = requests.CreateTicketRequest
type UpdateTicketRequest = requests.UpdateTicketRequest
type TicketResponse = responses.TicketResponse

// CreateTicket godoc
// @Summary Open a maintenance ticket
// @Description Opens a maintenance ticket against a property
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body CreateTicketRequest true "Ticket details"
// @Success 201 {object} TicketResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid property_id format", err)
		return
	}

	ticket, err := h.common.TicketService.CreateTicket(c.Request.Context(), params.CreateTicketParams{
		PropertyID:  propertyID,
		Title:       req.Title,
		Description: optionalString(req.Description),
		Priority:    req.Priority,
	})
	if err != nil {
		handleDBError(c, err, constants.PropertyNotFound)
		return
	}

	sendSuccess(c, http.StatusCreated, ticket)
}

// GetTicket godoc
// @Summary Get a ticket
// @Description Retrieves a maintenance ticket by its ID
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket_id path string true "Ticket ID"
// @Success 200 {object} TicketResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tickets/{ticket_id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, ok := parseUUIDParam(c, "ticket_id")
	if !ok {
		return
	}

	ticket, err := h.common.TicketService.GetTicket(c.Request.Context(), ticketID)
	if err != nil {
		handleDBError(c, err, constants.TicketNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, ticket)
}

// ListTickets godoc
// @Summary List tickets
// @Description Retrieves maintenance tickets, optionally filtered by property
// @Tags tickets
// @Accept json
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param page query int false "Page number"
// @Param property_id query string false "Filter by property"
// @Success 200 {object} responses.PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	if propertyIDStr := c.Query("property_id"); propertyIDStr != "" {
		propertyID, err := uuid.Parse(propertyIDStr)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid property_id format", err)
			return
		}
		tickets, err := h.common.TicketService.ListTicketsByProperty(c.Request.Context(), propertyID)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to list tickets", err)
			return
		}
		sendSuccess(c, http.StatusOK, gin.H{"object": "list", "data": tickets})
		return
	}

	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	tickets, total, err := h.common.TicketService.ListTickets(c.Request.Context(), params.ListTicketsParams{
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list tickets", err)
		return
	}

	sendPaginatedSuccess(c, http.StatusOK, tickets, int(pagination.Page), int(pagination.Limit), int(total))
}

// UpdateTicket godoc
// @Summary Update a ticket
// @Description Applies a partial update to a maintenance ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket_id path string true "Ticket ID"
// @Param ticket body UpdateTicketRequest true "Fields to update"
// @Success 200 {object} TicketResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tickets/{ticket_id} [patch]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, ok := parseUUIDParam(c, "ticket_id")
	if !ok {
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ticket, err := h.common.TicketService.UpdateTicket(c.Request.Context(), params.UpdateTicketParams{
		ID:          ticketID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		handleDBError(c, err, constants.TicketNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, ticket)
}

// UpdateTicketStatus godoc
// @Summary Update ticket status
// @Description Moves a ticket through its lifecycle, resolving timestamps as needed
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket_id path string true "Ticket ID"
// @Param status body requests.UpdateTicketStatusRequest true "New status"
// @Success 200 {object} TicketResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tickets/{ticket_id}/status [put]
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	ticketID, ok := parseUUIDParam(c, "ticket_id")
	if !ok {
		return
	}

	var req requests.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ticket, err := h.common.TicketService.UpdateTicketStatus(c.Request.Context(), ticketID, req.Status)
	if err != nil {
		handleDBError(c, err, constants.TicketNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, ticket)
}
