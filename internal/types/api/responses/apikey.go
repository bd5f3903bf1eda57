package responses

import "time"

// APIKeyResponse represents an API key in list responses. The full key is
// never returned after creation.
type APIKeyResponse struct {
	ID         string     `json:"id"`
	Object     string     `json:"object"`
	Name       string     `json:"name"`
	KeyPrefix  string     `json:"key_prefix"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CreatedAPIKeyResponse is returned once at creation time and includes the
// full key.
type CreatedAPIKeyResponse struct {
	APIKeyResponse
	Key string `json:"key"`
}
