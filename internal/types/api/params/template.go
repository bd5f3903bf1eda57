package params

import "github.com/google/uuid"

// CreateTemplateParams contains parameters for creating a correspondence template
type CreateTemplateParams struct {
	Name     string
	Category *string
	Subject  *string
	Content  string
}

// UpdateTemplateParams contains parameters for updating a correspondence template
type UpdateTemplateParams struct {
	ID       uuid.UUID
	Name     *string
	Category *string
	Subject  *string
	Content  *string
}

// ListTemplatesParams contains parameters for listing templates
type ListTemplatesParams struct {
	Limit  int32
	Offset int32
}
