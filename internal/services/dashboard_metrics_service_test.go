package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/mocks"
	"github.com/arrenda/arrenda-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardMetricsService_GetMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewDashboardMetricsService(mockQuerier)

	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	rentRoll, err := helpers.NumericFromFloat(4200)
	require.NoError(t, err)
	collected, err := helpers.NumericFromFloat(3150.50)
	require.NoError(t, err)
	outstanding, err := helpers.NumericFromFloat(1049.50)
	require.NoError(t, err)

	mockQuerier.EXPECT().CountProperties(gomock.Any()).Return(int64(6), nil)
	mockQuerier.EXPECT().CountTenants(gomock.Any()).Return(int64(8), nil)
	mockQuerier.EXPECT().CountActiveLeases(gomock.Any()).Return(int64(5), nil)
	mockQuerier.EXPECT().CountOpenTickets(gomock.Any()).Return(int64(2), nil)
	mockQuerier.EXPECT().GetMonthlyRentRoll(gomock.Any()).Return(rentRoll, nil)
	mockQuerier.EXPECT().
		GetCollectedAmount(gomock.Any(), db.GetCollectedAmountParams{
			PeriodFrom: helpers.DateFromTime(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
			PeriodTo:   helpers.DateFromTime(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
		}).
		Return(collected, nil)
	mockQuerier.EXPECT().GetOutstandingAmount(gomock.Any()).Return(outstanding, nil)

	metrics, err := service.GetMetrics(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(6), metrics.TotalProperties)
	assert.Equal(t, int64(8), metrics.TotalTenants)
	assert.Equal(t, int64(5), metrics.ActiveLeases)
	assert.InDelta(t, 5.0/6.0, metrics.OccupancyRate, 0.000001)
	assert.Equal(t, int64(2), metrics.OpenTickets)
	assert.InDelta(t, 4200.0, metrics.MonthlyRentRoll, 0.001)
	assert.InDelta(t, 3150.50, metrics.CollectedThisPeriod, 0.001)
	assert.InDelta(t, 1049.50, metrics.OutstandingAmount, 0.001)
	assert.Equal(t, "EUR", metrics.Currency)
}

func TestDashboardMetricsService_GetMetrics_CountFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewDashboardMetricsService(mockQuerier)

	mockQuerier.EXPECT().CountProperties(gomock.Any()).Return(int64(0), assert.AnError)

	metrics, err := service.GetMetrics(context.Background(), time.Now())

	require.Error(t, err)
	assert.Nil(t, metrics)
	assert.Contains(t, err.Error(), "failed to count properties")
}
