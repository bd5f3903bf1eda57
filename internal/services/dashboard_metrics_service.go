package services

import (
	"context"
	"fmt"
	"time"

	"github.com/arrenda/arrenda-api/internal/constants"
	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"
	"go.uber.org/zap"
)

// DashboardMetricsService aggregates portfolio figures for the landlord
// dashboard.
type DashboardMetricsService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewDashboardMetricsService creates a new dashboard metrics service
func NewDashboardMetricsService(queries db.Querier) *DashboardMetricsService {
	return &DashboardMetricsService{
		queries: queries,
		logger:  logger.Log,
	}
}

// GetMetrics computes the dashboard snapshot. The collected figure covers
// the calendar month containing now.
func (s *DashboardMetricsService) GetMetrics(ctx context.Context, now time.Time) (*responses.DashboardMetricsResponse, error) {
	totalProperties, err := s.queries.CountProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count properties: %w", err)
	}

	totalTenants, err := s.queries.CountTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tenants: %w", err)
	}

	activeLeases, err := s.queries.CountActiveLeases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active leases: %w", err)
	}

	openTickets, err := s.queries.CountOpenTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count open tickets: %w", err)
	}

	rentRollNumeric, err := s.queries.GetMonthlyRentRoll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute rent roll: %w", err)
	}
	rentRoll, err := helpers.NumericToFloat(rentRollNumeric)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	collectedNumeric, err := s.queries.GetCollectedAmount(ctx, db.GetCollectedAmountParams{
		PeriodFrom: helpers.DateFromTime(monthStart),
		PeriodTo:   helpers.DateFromTime(monthEnd),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute collected amount: %w", err)
	}
	collected, err := helpers.NumericToFloat(collectedNumeric)
	if err != nil {
		return nil, err
	}

	outstandingNumeric, err := s.queries.GetOutstandingAmount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute outstanding amount: %w", err)
	}
	outstanding, err := helpers.NumericToFloat(outstandingNumeric)
	if err != nil {
		return nil, err
	}

	var occupancyRate float64
	if totalProperties > 0 {
		occupancyRate = float64(activeLeases) / float64(totalProperties)
	}

	s.logger.Debug("Computed dashboard metrics",
		zap.Int64("properties", totalProperties),
		zap.Int64("active_leases", activeLeases))

	return &responses.DashboardMetricsResponse{
		TotalProperties:     totalProperties,
		TotalTenants:        totalTenants,
		ActiveLeases:        activeLeases,
		OccupancyRate:       occupancyRate,
		OpenTickets:         openTickets,
		MonthlyRentRoll:     rentRoll,
		CollectedThisPeriod: collected,
		OutstandingAmount:   outstanding,
		Currency:            constants.EURCurrency,
	}, nil
}
