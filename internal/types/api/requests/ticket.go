package requests

// CreateTicketRequest represents the request body for opening a maintenance ticket
type CreateTicketRequest struct {
	PropertyID  string `json:"property_id" binding:"required,uuid"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty" binding:"omitempty,oneof=low medium high urgent"`
}

// UpdateTicketRequest represents the request body for updating a maintenance ticket
type UpdateTicketRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty" binding:"omitempty,oneof=low medium high urgent"`
}

// UpdateTicketStatusRequest represents the request to move a ticket through its lifecycle
type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress resolved closed"`
}
