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

// PropertyService handles property management
type PropertyService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewPropertyService creates a new property service
func NewPropertyService(queries db.Querier) *PropertyService {
	return &PropertyService{
		queries: queries,
		logger:  logger.Log,
	}
}

// CreateProperty registers a new property
func (s *PropertyService) CreateProperty(ctx context.Context, params params.CreatePropertyParams) (*responses.PropertyResponse, error) {
	if params.PostalCode != nil && *params.PostalCode != "" {
		if !helpers.IsPostalCodeValid(params.Country, *params.PostalCode) {
			return nil, fmt.Errorf("invalid postal code %q for country %s", *params.PostalCode, params.Country)
		}
	}

	property, err := s.queries.CreateProperty(ctx, db.CreatePropertyParams{
		Name:         params.Name,
		AddressLine1: params.AddressLine1,
		AddressLine2: helpers.TextFromPtr(params.AddressLine2),
		City:         params.City,
		PostalCode:   helpers.TextFromPtr(params.PostalCode),
		Country:      params.Country,
		Bedrooms:     helpers.Int4FromPtr(params.Bedrooms),
		Bathrooms:    helpers.Int4FromPtr(params.Bathrooms),
		Notes:        helpers.TextFromPtr(params.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	s.logger.Info("Created property",
		zap.String("property_id", property.ID.String()),
		zap.String("name", property.Name))

	response := s.toResponse(property)
	return &response, nil
}

// GetProperty retrieves a property by ID
func (s *PropertyService) GetProperty(ctx context.Context, id uuid.UUID) (*responses.PropertyResponse, error) {
	property, err := s.queries.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(property)
	return &response, nil
}

// ListProperties returns a page of properties plus the total count
func (s *PropertyService) ListProperties(ctx context.Context, params params.ListPropertiesParams) ([]responses.PropertyResponse, int64, error) {
	properties, err := s.queries.ListProperties(ctx, db.ListPropertiesParams{
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list properties: %w", err)
	}

	total, err := s.queries.CountProperties(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	result := make([]responses.PropertyResponse, len(properties))
	for i, property := range properties {
		result[i] = s.toResponse(property)
	}

	return result, total, nil
}

// UpdateProperty applies a partial update to a property
func (s *PropertyService) UpdateProperty(ctx context.Context, params params.UpdatePropertyParams) (*responses.PropertyResponse, error) {
	property, err := s.queries.UpdateProperty(ctx, db.UpdatePropertyParams{
		ID:           params.ID,
		Name:         helpers.TextFromPtr(params.Name),
		AddressLine1: helpers.TextFromPtr(params.AddressLine1),
		AddressLine2: helpers.TextFromPtr(params.AddressLine2),
		City:         helpers.TextFromPtr(params.City),
		PostalCode:   helpers.TextFromPtr(params.PostalCode),
		Country:      helpers.TextFromPtr(params.Country),
		Bedrooms:     helpers.Int4FromPtr(params.Bedrooms),
		Bathrooms:    helpers.Int4FromPtr(params.Bathrooms),
		Notes:        helpers.TextFromPtr(params.Notes),
	})
	if err != nil {
		return nil, err
	}

	response := s.toResponse(property)
	return &response, nil
}

// DeleteProperty removes a property
func (s *PropertyService) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	if err := s.queries.DeleteProperty(ctx, id); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	s.logger.Info("Deleted property", zap.String("property_id", id.String()))
	return nil
}

func (s *PropertyService) toResponse(property db.Property) responses.PropertyResponse {
	return responses.PropertyResponse{
		ID:           property.ID.String(),
		Object:       "property",
		Name:         property.Name,
		AddressLine1: property.AddressLine1,
		AddressLine2: helpers.TextOrEmpty(property.AddressLine2),
		City:         property.City,
		PostalCode:   helpers.TextOrEmpty(property.PostalCode),
		Country:      property.Country,
		Bedrooms:     helpers.Int4Ptr(property.Bedrooms),
		Bathrooms:    helpers.Int4Ptr(property.Bathrooms),
		Notes:        helpers.TextOrEmpty(property.Notes),
		CreatedAt:    helpers.TimeOrZero(property.CreatedAt),
		UpdatedAt:    helpers.TimeOrZero(property.UpdatedAt),
	}
}
