package params

import "github.com/google/uuid"

// SendNoticeParams contains parameters for queueing a tenant notice
type SendNoticeParams struct {
	TemplateID uuid.UUID
	LeaseID    uuid.UUID
}

// CreateAPIKeyParams contains parameters for creating an API key
type CreateAPIKeyParams struct {
	UserID    uuid.UUID
	Name      string
	ExpiresAt *string
}
