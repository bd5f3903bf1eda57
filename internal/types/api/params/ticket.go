package params

import "github.com/google/uuid"

// CreateTicketParams contains parameters for opening a maintenance ticket
type CreateTicketParams struct {
	PropertyID  uuid.UUID
	Title       string
	Description *string
	Priority    string
}

// UpdateTicketParams contains parameters for updating a maintenance ticket
type UpdateTicketParams struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	Priority    *string
}

// ListTicketsParams contains parameters for listing tickets
type ListTicketsParams struct {
	Limit  int32
	Offset int32
}
