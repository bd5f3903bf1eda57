package responses

import "time"

// TicketResponse represents a maintenance ticket in API responses
type TicketResponse struct {
	ID          string     `json:"id"`
	Object      string     `json:"object"`
	PropertyID  string     `json:"property_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
