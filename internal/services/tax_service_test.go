package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/mocks"
	"github.com/arrenda/arrenda-api/internal/services"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTaxService_CalculateTax(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxService(mockQuerier)

	// No persistence requested, so no db calls are expected.
	resp, err := service.CalculateTax(context.Background(), params.CalculateTaxParams{
		Jurisdiction:       business.JurisdictionPortugalRendimentos,
		AnnualRentalIncome: 12000,
		DeductibleExpenses: 3000,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Result)
	assert.Empty(t, resp.AssessmentID)
	assert.InDelta(t, 2520.0, resp.Result.TaxAmount, 0.001)
	assert.False(t, resp.CalculatedAt.IsZero())
}

func TestTaxService_CalculateTax_Persist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxService(mockQuerier)

	assessmentID := uuid.New()

	mockQuerier.EXPECT().
		CreateTaxAssessment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateTaxAssessmentParams) (db.TaxAssessment, error) {
			assert.Equal(t, business.JurisdictionSpainInmuebles, arg.Jurisdiction)

			gross, err := helpers.NumericToFloat(arg.GrossIncome)
			require.NoError(t, err)
			assert.InDelta(t, 30000.0, gross, 0.001)

			taxable, err := helpers.NumericToFloat(arg.TaxableIncome)
			require.NoError(t, err)
			assert.InDelta(t, 25000.0, taxable, 0.001)

			var breakdown map[string]float64
			require.NoError(t, json.Unmarshal(arg.Breakdown, &breakdown))
			assert.Len(t, breakdown, 3)

			return db.TaxAssessment{ID: assessmentID, Jurisdiction: arg.Jurisdiction}, nil
		})

	resp, err := service.CalculateTax(context.Background(), params.CalculateTaxParams{
		Jurisdiction:       business.JurisdictionSpainInmuebles,
		AnnualRentalIncome: 30000,
		DeductibleExpenses: 5000,
		Persist:            true,
	})

	require.NoError(t, err)
	assert.Equal(t, assessmentID.String(), resp.AssessmentID)
	assert.InDelta(t, 5665.50, resp.Result.TaxAmount, 0.001)
}

func TestTaxService_CalculateTax_UnsupportedJurisdiction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxService(mockQuerier)

	resp, err := service.CalculateTax(context.Background(), params.CalculateTaxParams{
		Jurisdiction:       "germany_mieteinnahmen",
		AnnualRentalIncome: 10000,
		Persist:            true,
	})

	require.ErrorIs(t, err, services.ErrUnsupportedJurisdiction)
	assert.Nil(t, resp)
}

func TestTaxService_ListAssessments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxService(mockQuerier)

	gross, err := helpers.NumericFromFloat(12000)
	require.NoError(t, err)
	tax, err := helpers.NumericFromFloat(2520)
	require.NoError(t, err)

	assessments := []db.TaxAssessment{
		{
			ID:           uuid.New(),
			Jurisdiction: business.JurisdictionPortugalRendimentos,
			GrossIncome:  gross,
			TaxAmount:    tax,
			Breakdown:    []byte(`{"maintenance":1500}`),
		},
	}

	mockQuerier.EXPECT().
		ListTaxAssessments(gomock.Any(), db.ListTaxAssessmentsParams{Limit: 25, Offset: 0}).
		Return(assessments, nil)
	mockQuerier.EXPECT().
		CountTaxAssessments(gomock.Any()).
		Return(int64(1), nil)

	resp, total, err := service.ListAssessments(context.Background(), params.ListTaxAssessmentsParams{
		Limit:  25,
		Offset: 0,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, resp, 1)
	assert.Equal(t, "tax_assessment", resp[0].Object)
	assert.InDelta(t, 12000.0, resp[0].GrossIncome, 0.001)
	assert.InDelta(t, 2520.0, resp[0].TaxAmount, 0.001)
	assert.Equal(t, 1500.0, resp[0].Breakdown["maintenance"])
}

func TestTaxService_ListJurisdictions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxService(mockQuerier)

	jurisdictions := service.ListJurisdictions()

	require.Len(t, jurisdictions, 2)
	assert.Equal(t, business.JurisdictionPortugalRendimentos, jurisdictions[0].Code)
	assert.Equal(t, "PT", jurisdictions[0].Country)
	assert.Equal(t, business.JurisdictionSpainInmuebles, jurisdictions[1].Code)
}
