package services

import (
	"context"
	"fmt"
	"time"

	"github.com/arrenda/arrenda-api/internal/constants"
	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TicketService handles maintenance ticket management
type TicketService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewTicketService creates a new ticket service
func NewTicketService(queries db.Querier) *TicketService {
	return &TicketService{
		queries: queries,
		logger:  logger.Log,
	}
}

// CreateTicket opens a maintenance ticket against a property
func (s *TicketService) CreateTicket(ctx context.Context, params params.CreateTicketParams) (*responses.TicketResponse, error) {
	if _, err := s.queries.GetProperty(ctx, params.PropertyID); err != nil {
		return nil, fmt.Errorf("property lookup failed: %w", err)
	}

	priority := params.Priority
	if priority == "" {
		priority = constants.TicketPriorityMedium
	}

	ticket, err := s.queries.CreateTicket(ctx, db.CreateTicketParams{
		PropertyID:  params.PropertyID,
		Title:       params.Title,
		Description: helpers.TextFromPtr(params.Description),
		Priority:    priority,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	s.logger.Info("Opened maintenance ticket",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("property_id", ticket.PropertyID.String()),
		zap.String("priority", ticket.Priority))

	response := s.toResponse(ticket)
	return &response, nil
}

// GetTicket retrieves a ticket by ID
func (s *TicketService) GetTicket(ctx context.Context, id uuid.UUID) (*responses.TicketResponse, error) {
	ticket, err := s.queries.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(ticket)
	return &response, nil
}

// ListTickets returns a page of tickets plus the total count
func (s *TicketService) ListTickets(ctx context.Context, params params.ListTicketsParams) ([]responses.TicketResponse, int64, error) {
	tickets, err := s.queries.ListTickets(ctx, db.ListTicketsParams{
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	total, err := s.queries.CountTickets(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	result := make([]responses.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		result[i] = s.toResponse(ticket)
	}

	return result, total, nil
}

// ListTicketsByProperty returns all tickets for one property
func (s *TicketService) ListTicketsByProperty(ctx context.Context, propertyID uuid.UUID) ([]responses.TicketResponse, error) {
	tickets, err := s.queries.ListTicketsByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets by property: %w", err)
	}

	result := make([]responses.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		result[i] = s.toResponse(ticket)
	}

	return result, nil
}

// UpdateTicket applies a partial update to a ticket
func (s *TicketService) UpdateTicket(ctx context.Context, params params.UpdateTicketParams) (*responses.TicketResponse, error) {
	ticket, err := s.queries.UpdateTicket(ctx, db.UpdateTicketParams{
		ID:          params.ID,
		Title:       helpers.TextFromPtr(params.Title),
		Description: helpers.TextFromPtr(params.Description),
		Priority:    helpers.TextFromPtr(params.Priority),
	})
	if err != nil {
		return nil, err
	}

	response := s.toResponse(ticket)
	return &response, nil
}

// UpdateTicketStatus moves a ticket through its lifecycle. Resolved and
// closed tickets get a resolution timestamp.
func (s *TicketService) UpdateTicketStatus(ctx context.Context, id uuid.UUID, status string) (*responses.TicketResponse, error) {
	var resolvedAt time.Time
	if status == constants.TicketStatusResolved || status == constants.TicketStatusClosed {
		resolvedAt = time.Now()
	}

	arg := db.UpdateTicketStatusParams{
		ID:     id,
		Status: status,
	}
	if !resolvedAt.IsZero() {
		arg.ResolvedAt = helpers.TimestamptzFromTime(resolvedAt)
	}

	ticket, err := s.queries.UpdateTicketStatus(ctx, arg)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Updated ticket status",
		zap.String("ticket_id", id.String()),
		zap.String("status", status))

	response := s.toResponse(ticket)
	return &response, nil
}

func (s *TicketService) toResponse(ticket db.MaintenanceTicket) responses.TicketResponse {
	return responses.TicketResponse{
		ID:          ticket.ID.String(),
		Object:      "maintenance_ticket",
		PropertyID:  ticket.PropertyID.String(),
		Title:       ticket.Title,
		Description: helpers.TextOrEmpty(ticket.Description),
		Priority:    ticket.Priority,
		Status:      ticket.Status,
		ResolvedAt:  helpers.TimePtr(ticket.ResolvedAt),
		CreatedAt:   helpers.TimeOrZero(ticket.CreatedAt),
		UpdatedAt:   helpers.TimeOrZero(ticket.UpdatedAt),
	}
}
