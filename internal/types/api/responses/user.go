package responses

import "time"

// UserResponse represents a user account in API responses
type UserResponse struct {
	ID        string    `json:"id"`
	Object    string    `json:"object"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
