package services

import (
	"context"
	"fmt"
	"time"

	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"
	"github.com/arrenda/arrenda-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TemplateService handles correspondence templates and their rendering
// against lease data.
type TemplateService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewTemplateService creates a new template service
func NewTemplateService(queries db.Querier) *TemplateService {
	return &TemplateService{
		queries: queries,
		logger:  logger.Log,
	}
}

// CreateTemplate stores a new correspondence template
func (s *TemplateService) CreateTemplate(ctx context.Context, params params.CreateTemplateParams) (*responses.TemplateResponse, error) {
	if params.Content == "" {
		return nil, errors.Wrap(ErrInvalidTemplate, "content is empty")
	}

	template, err := s.queries.CreateTemplate(ctx, db.CreateTemplateParams{
		Name:     params.Name,
		Category: helpers.TextFromPtr(params.Category),
		Subject:  helpers.TextFromPtr(params.Subject),
		Content:  params.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	s.logger.Info("Created template",
		zap.String("template_id", template.ID.String()),
		zap.String("name", template.Name))

	response := s.toResponse(template)
	return &response, nil
}

// GetTemplate retrieves a template by ID
func (s *TemplateService) GetTemplate(ctx context.Context, id uuid.UUID) (*responses.TemplateResponse, error) {
	template, err := s.queries.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(template)
	return &response, nil
}

// ListTemplates returns a page of templates plus the total count
func (s *TemplateService) ListTemplates(ctx context.Context, params params.ListTemplatesParams) ([]responses.TemplateResponse, int64, error) {
	templates, err := s.queries.ListTemplates(ctx, db.ListTemplatesParams{
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list templates: %w", err)
	}

	total, err := s.queries.CountTemplates(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count templates: %w", err)
	}

	result := make([]responses.TemplateResponse, len(templates))
	for i, template := range templates {
		result[i] = s.toResponse(template)
	}

	return result, total, nil
}

// UpdateTemplate applies a partial update to a template
func (s *TemplateService) UpdateTemplate(ctx context.Context, params params.UpdateTemplateParams) (*responses.TemplateResponse, error) {
	if params.Content != nil && *params.Content == "" {
		return nil, errors.Wrap(ErrInvalidTemplate, "content is empty")
	}

	template, err := s.queries.UpdateTemplate(ctx, db.UpdateTemplateParams{
		ID:       params.ID,
		Name:     helpers.TextFromPtr(params.Name),
		Category: helpers.TextFromPtr(params.Category),
		Subject:  helpers.TextFromPtr(params.Subject),
		Content:  helpers.TextFromPtr(params.Content),
	})
	if err != nil {
		return nil, err
	}

	response := s.toResponse(template)
	return &response, nil
}

// DeleteTemplate removes a template
func (s *TemplateService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	if err := s.queries.DeleteTemplate(ctx, id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	s.logger.Info("Deleted template", zap.String("template_id", id.String()))
	return nil
}

// RenderForLease renders a stored template against a lease's tenant and
// property data.
func (s *TemplateService) RenderForLease(ctx context.Context, templateID, leaseID uuid.UUID) (*responses.RenderedTemplateResponse, error) {
	template, err := s.queries.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if template.Content == "" {
		return nil, errors.Wrapf(ErrInvalidTemplate, "template %s has no content", template.ID)
	}

	rctx, err := s.BuildRenderContext(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	asOf := time.Now()
	rendered := &responses.RenderedTemplateResponse{
		TemplateID: template.ID.String(),
		LeaseID:    leaseID.String(),
		Content:    RenderTemplateAt(template.Content, rctx, asOf),
		Variables:  ExtractVariables(template.Content),
	}
	if template.Subject.Valid {
		rendered.Subject = RenderTemplateAt(template.Subject.String, rctx, asOf)
	}
	return rendered, nil
}

// RenderContentForLease renders ad-hoc template content against a lease at
// a fixed as-of date, so the same call is reproducible.
func (s *TemplateService) RenderContentForLease(ctx context.Context, content string, leaseID uuid.UUID, asOf time.Time) (*responses.RenderedTemplateResponse, error) {
	if content == "" {
		return nil, errors.Wrap(ErrInvalidTemplate, "content is empty")
	}

	rctx, err := s.BuildRenderContext(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	return &responses.RenderedTemplateResponse{
		LeaseID:   leaseID.String(),
		Content:   RenderTemplateAt(content, rctx, asOf),
		Variables: ExtractVariables(content),
	}, nil
}

// BuildRenderContext assembles the substitution context for a lease from
// its tenant and property records.
func (s *TemplateService) BuildRenderContext(ctx context.Context, leaseID uuid.UUID) (*business.RenderContext, error) {
	row, err := s.queries.GetLeaseDetails(ctx, leaseID)
	if err != nil {
		return nil, fmt.Errorf("lease details lookup failed: %w", err)
	}

	rentAmount, err := helpers.NumericToFloat(row.RentAmount)
	if err != nil {
		return nil, err
	}

	address := row.PropertyAddress
	if row.PropertyCity != "" {
		address = fmt.Sprintf("%s, %s", row.PropertyAddress, row.PropertyCity)
	}

	return &business.RenderContext{
		TenantName:      &row.TenantName,
		PropertyName:    &row.PropertyName,
		RentAmount:      &rentAmount,
		LeaseStart:      helpers.DatePtr(row.StartDate),
		LeaseEnd:        helpers.DatePtr(row.EndDate),
		PropertyAddress: &address,
		Bedrooms:        helpers.Int4Ptr(row.Bedrooms),
		Bathrooms:       helpers.Int4Ptr(row.Bathrooms),
	}, nil
}

func (s *TemplateService) toResponse(template db.CorrespondenceTemplate) responses.TemplateResponse {
	return responses.TemplateResponse{
		ID:        template.ID.String(),
		Object:    "correspondence_template",
		Name:      template.Name,
		Category:  helpers.TextOrEmpty(template.Category),
		Subject:   helpers.TextOrEmpty(template.Subject),
		Content:   template.Content,
		Variables: ExtractVariables(template.Content),
		CreatedAt: helpers.TimeOrZero(template.CreatedAt),
		UpdatedAt: helpers.TimeOrZero(template.UpdatedAt),
	}
}
