package requests

// CreateTemplateRequest represents the request body for creating a correspondence template
type CreateTemplateRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Content  string `json:"content" binding:"required"`
}

// UpdateTemplateRequest represents the request body for updating a correspondence template
type UpdateTemplateRequest struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Subject  *string `json:"subject,omitempty"`
	Content  *string `json:"content,omitempty"`
}

// RenderTemplateRequest represents the request body for rendering a template against a lease
type RenderTemplateRequest struct {
	LeaseID string `json:"lease_id" binding:"required,uuid"`
}

// PreviewTemplateRequest represents the request body for rendering ad-hoc template content
type PreviewTemplateRequest struct {
	Content string `json:"content" binding:"required"`
	LeaseID string `json:"lease_id" binding:"required,uuid"`
	// AsOf pins the due_date resolution so a letter can be re-rendered
	// byte-for-byte. Defaults to today.
	AsOf string `json:"as_of,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// SendNoticeRequest represents the request body for sending a rendered template to a tenant
type SendNoticeRequest struct {
	TemplateID string `json:"template_id" binding:"required,uuid"`
	LeaseID    string `json:"lease_id" binding:"required,uuid"`
}
