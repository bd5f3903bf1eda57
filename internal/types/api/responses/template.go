package responses

import "time"

// TemplateResponse represents a correspondence template in API responses
type TemplateResponse struct {
	ID        string    `json:"id"`
	Object    string    `json:"object"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Content   string    `json:"content"`
	Variables []string  `json:"variables"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RenderedTemplateResponse represents template content after variable substitution
type RenderedTemplateResponse struct {
	TemplateID string   `json:"template_id,omitempty"`
	LeaseID    string   `json:"lease_id"`
	Subject    string   `json:"subject,omitempty"`
	Content    string   `json:"content"`
	Variables  []string `json:"variables"`
}

// NoticeResponse represents a queued tenant notice
type NoticeResponse struct {
	NoticeID   string `json:"notice_id"`
	TemplateID string `json:"template_id"`
	LeaseID    string `json:"lease_id"`
	Recipient  string `json:"recipient"`
	Status     string `json:"status"`
}
