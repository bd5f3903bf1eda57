package services

import (
	"context"
	"fmt"

	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TenantService handles tenant management
type TenantService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewTenantService creates a new tenant service
func NewTenantService(queries db.Querier) *TenantService {
	return &TenantService{
		queries: queries,
		logger:  logger.Log,
	}
}

// CreateTenant registers a new tenant
func (s *TenantService) CreateTenant(ctx context.Context, params params.CreateTenantParams) (*responses.TenantResponse, error) {
	if params.TaxNumber != nil && *params.TaxNumber != "" {
		if !helpers.IsPortugueseNIFValid(*params.TaxNumber) && !helpers.IsSpanishNIFValid(*params.TaxNumber) {
			return nil, fmt.Errorf("invalid tax number: %s", *params.TaxNumber)
		}
	}

	tenant, err := s.queries.CreateTenant(ctx, db.CreateTenantParams{
		Name:      params.Name,
		Email:     helpers.TextFromPtr(params.Email),
		Phone:     helpers.TextFromPtr(params.Phone),
		TaxNumber: helpers.TextFromPtr(params.TaxNumber),
		Notes:     helpers.TextFromPtr(params.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	s.logger.Info("Created tenant",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("name", tenant.Name))

	response := s.toResponse(tenant)
	return &response, nil
}

// GetTenant retrieves a tenant by ID
func (s *TenantService) GetTenant(ctx context.Context, id uuid.UUID) (*responses.TenantResponse, error) {
	tenant, err := s.queries.GetTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(tenant)
	return &response, nil
}

// ListTenants returns a page of tenants plus the total count
func (s *TenantService) ListTenants(ctx context.Context, params params.ListTenantsParams) ([]responses.TenantResponse, int64, error) {
	tenants, err := s.queries.ListTenants(ctx, db.ListTenantsParams{
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}

	total, err := s.queries.CountTenants(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tenants: %w", err)
	}

	result := make([]responses.TenantResponse, len(tenants))
	for i, tenant := range tenants {
		result[i] = s.toResponse(tenant)
	}

	return result, total, nil
}

// UpdateTenant applies a partial update to a tenant
func (s *TenantService) UpdateTenant(ctx context.Context, params params.UpdateTenantParams) (*responses.TenantResponse, error) {
	if params.TaxNumber != nil && *params.TaxNumber != "" {
		if !helpers.IsPortugueseNIFValid(*params.TaxNumber) && !helpers.IsSpanishNIFValid(*params.TaxNumber) {
			return nil, fmt.Errorf("invalid tax number: %s", *params.TaxNumber)
		}
	}

	tenant, err := s.queries.UpdateTenant(ctx, db.UpdateTenantParams{
		ID:        params.ID,
		Name:      helpers.TextFromPtr(params.Name),
		Email:     helpers.TextFromPtr(params.Email),
		Phone:     helpers.TextFromPtr(params.Phone),
		TaxNumber: helpers.TextFromPtr(params.TaxNumber),
		Notes:     helpers.TextFromPtr(params.Notes),
	})
	if err != nil {
		return nil, err
	}

	response := s.toResponse(tenant)
	return &response, nil
}

// DeleteTenant removes a tenant
func (s *TenantService) DeleteTenant(ctx context.Context, id uuid.UUID) error {
	if err := s.queries.DeleteTenant(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	s.logger.Info("Deleted tenant", zap.String("tenant_id", id.String()))
	return nil
}

func (s *TenantService) toResponse(tenant db.Tenant) responses.TenantResponse {
	return responses.TenantResponse{
		ID:        tenant.ID.String(),
		Object:    "tenant",
		Name:      tenant.Name,
		Email:     helpers.TextOrEmpty(tenant.Email),
		Phone:     helpers.TextOrEmpty(tenant.Phone),
		TaxNumber: helpers.TextOrEmpty(tenant.TaxNumber),
		Notes:     helpers.TextOrEmpty(tenant.Notes),
		CreatedAt: helpers.TimeOrZero(tenant.CreatedAt),
		UpdatedAt: helpers.TimeOrZero(tenant.UpdatedAt),
	}
}
