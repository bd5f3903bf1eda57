package services

import (
	"context"
	"fmt"

	"github.com/arrenda/arrenda-api/internal/constants"
	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LeaseService handles lease management
type LeaseService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewLeaseService creates a new lease service
func NewLeaseService(queries db.Querier) *LeaseService {
	return &LeaseService{
		queries: queries,
		logger:  logger.Log,
	}
}

// CreateLease creates a lease binding a tenant to a property
func (s *LeaseService) CreateLease(ctx context.Context, params params.CreateLeaseParams) (*responses.LeaseResponse, error) {
	// Verify both sides of the relationship exist before inserting.
	if _, err := s.queries.GetProperty(ctx, params.PropertyID); err != nil {
		return nil, fmt.Errorf("property lookup failed: %w", err)
	}
	if _, err := s.queries.GetTenant(ctx, params.TenantID); err != nil {
		return nil, fmt.Errorf("tenant lookup failed: %w", err)
	}

	rentAmount, err := helpers.NumericFromFloat(params.RentAmount)
	if err != nil {
		return nil, err
	}

	currency := params.Currency
	if currency == "" {
		currency = constants.EURCurrency
	}

	lease, err := s.queries.CreateLease(ctx, db.CreateLeaseParams{
		PropertyID: params.PropertyID,
		TenantID:   params.TenantID,
		RentAmount: rentAmount,
		Currency:   currency,
		StartDate:  helpers.DateFromTime(params.StartDate),
		EndDate:    helpers.DateFromPtr(params.EndDate),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create lease: %w", err)
	}

	s.logger.Info("Created lease",
		zap.String("lease_id", lease.ID.String()),
		zap.String("property_id", lease.PropertyID.String()),
		zap.String("tenant_id", lease.TenantID.String()))

	return s.toResponse(lease)
}

// GetLease retrieves a lease by ID
func (s *LeaseService) GetLease(ctx context.Context, id uuid.UUID) (*responses.LeaseResponse, error) {
	lease, err := s.queries.GetLease(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toResponse(lease)
}

// GetLeaseDetails retrieves a lease joined with its tenant and property
func (s *LeaseService) GetLeaseDetails(ctx context.Context, id uuid.UUID) (*responses.LeaseDetailsResponse, error) {
	row, err := s.queries.GetLeaseDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	rentAmount, err := helpers.NumericToFloat(row.RentAmount)
	if err != nil {
		return nil, err
	}

	return &responses.LeaseDetailsResponse{
		LeaseResponse: responses.LeaseResponse{
			ID:         row.ID.String(),
			Object:     "lease",
			PropertyID: row.PropertyID.String(),
			TenantID:   row.TenantID.String(),
			RentAmount: rentAmount,
			Currency:   row.Currency,
			StartDate:  helpers.DateString(row.StartDate),
			EndDate:    helpers.DateString(row.EndDate),
			Status:     row.Status,
		},
		TenantName:      row.TenantName,
		TenantEmail:     helpers.TextOrEmpty(row.TenantEmail),
		PropertyName:    row.PropertyName,
		PropertyAddress: row.PropertyAddress,
		PropertyCity:    row.PropertyCity,
		Bedrooms:        helpers.Int4Ptr(row.Bedrooms),
		Bathrooms:       helpers.Int4Ptr(row.Bathrooms),
	}, nil
}

// ListLeases returns a page of leases plus the total count
func (s *LeaseService) ListLeases(ctx context.Context, params params.ListLeasesParams) ([]responses.LeaseResponse, int64, error) {
	leases, err := s.queries.ListLeases(ctx, db.ListLeasesParams{
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leases: %w", err)
	}

	total, err := s.queries.CountLeases(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count leases: %w", err)
	}

	result := make([]responses.LeaseResponse, 0, len(leases))
	for _, lease := range leases {
		response, err := s.toResponse(lease)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *response)
	}

	return result, total, nil
}

// ListLeasesByProperty returns all leases for one property
func (s *LeaseService) ListLeasesByProperty(ctx context.Context, propertyID uuid.UUID) ([]responses.LeaseResponse, error) {
	leases, err := s.queries.ListLeasesByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leases by property: %w", err)
	}

	return s.toResponses(leases)
}

// ListLeasesByTenant returns all leases for one tenant
func (s *LeaseService) ListLeasesByTenant(ctx context.Context, tenantID uuid.UUID) ([]responses.LeaseResponse, error) {
	leases, err := s.queries.ListLeasesByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leases by tenant: %w", err)
	}

	return s.toResponses(leases)
}

// UpdateLease applies a partial update to a lease
func (s *LeaseService) UpdateLease(ctx context.Context, params params.UpdateLeaseParams) (*responses.LeaseResponse, error) {
	arg := db.UpdateLeaseParams{
		ID:      params.ID,
		EndDate: helpers.DateFromPtr(params.EndDate),
	}

	if params.RentAmount != nil {
		rentAmount, err := helpers.NumericFromFloat(*params.RentAmount)
		if err != nil {
			return nil, err
		}
		arg.RentAmount = rentAmount
	}

	lease, err := s.queries.UpdateLease(ctx, arg)
	if err != nil {
		return nil, err
	}

	if params.Status != nil {
		lease, err = s.queries.UpdateLeaseStatus(ctx, db.UpdateLeaseStatusParams{
			ID:     params.ID,
			Status: *params.Status,
		})
		if err != nil {
			return nil, err
		}
	}

	return s.toResponse(lease)
}

// UpdateLeaseStatus moves a lease through its lifecycle
func (s *LeaseService) UpdateLeaseStatus(ctx context.Context, id uuid.UUID, status string) (*responses.LeaseResponse, error) {
	lease, err := s.queries.UpdateLeaseStatus(ctx, db.UpdateLeaseStatusParams{
		ID:     id,
		Status: status,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Updated lease status",
		zap.String("lease_id", id.String()),
		zap.String("status", status))

	return s.toResponse(lease)
}

func (s *LeaseService) toResponse(lease db.Lease) (*responses.LeaseResponse, error) {
	rentAmount, err := helpers.NumericToFloat(lease.RentAmount)
	if err != nil {
		return nil, err
	}

	return &responses.LeaseResponse{
		ID:         lease.ID.String(),
		Object:     "lease",
		PropertyID: lease.PropertyID.String(),
		TenantID:   lease.TenantID.String(),
		RentAmount: rentAmount,
		Currency:   lease.Currency,
		StartDate:  helpers.DateString(lease.StartDate),
		EndDate:    helpers.DateString(lease.EndDate),
		Status:     lease.Status,
		CreatedAt:  helpers.TimeOrZero(lease.CreatedAt),
		UpdatedAt:  helpers.TimeOrZero(lease.UpdatedAt),
	}, nil
}

func (s *LeaseService) toResponses(leases []db.Lease) ([]responses.LeaseResponse, error) {
	result := make([]responses.LeaseResponse, 0, len(leases))
	for _, lease := range leases {
		response, err := s.toResponse(lease)
		if err != nil {
			return nil, err
		}
		result = append(result, *response)
	}
	return result, nil
}
