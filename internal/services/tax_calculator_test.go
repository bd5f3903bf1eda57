package services_test

import (
	"math"
	"testing"

	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/services"
	"github.com/arrenda/arrenda-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

func TestTaxCalculator_SupportedJurisdictions(t *testing.T) {
	calculator := services.NewTaxCalculator()

	jurisdictions := calculator.SupportedJurisdictions()
	assert.Contains(t, jurisdictions, business.JurisdictionPortugalRendimentos)
	assert.Contains(t, jurisdictions, business.JurisdictionSpainInmuebles)
	assert.Len(t, jurisdictions, 2)
}

func TestTaxCalculator_PortugalFlatRate(t *testing.T) {
	calculator := services.NewTaxCalculator()

	result, err := calculator.CalculateRentalTax(business.JurisdictionPortugalRendimentos, 12000, 3000)
	require.NoError(t, err)

	assert.Equal(t, business.JurisdictionPortugalRendimentos, result.Jurisdiction)
	assert.InDelta(t, 12000, result.GrossIncome, 0.001)
	assert.InDelta(t, 9000, result.TaxableIncome, 0.001)
	// 28% flat rate on net income
	assert.InDelta(t, 2520.00, result.TaxAmount, 0.001)
	assert.InDelta(t, 0.21, result.EffectiveRate, 0.000001)
	assert.InDelta(t, 630.00, result.QuarterlyPayment, 0.001)
	assert.InDelta(t, 0, result.AnnualSettlement, 0.001)

	assert.InDelta(t, 3000, result.Deductions.Total, 0.001)
	assert.InDelta(t, 1500, result.Deductions.Breakdown["maintenance"], 0.001)
	assert.InDelta(t, 900, result.Deductions.Breakdown["condominium"], 0.001)
	assert.InDelta(t, 600, result.Deductions.Breakdown["municipal_property_tax"], 0.001)
}

func TestTaxCalculator_SpainProgressiveBrackets(t *testing.T) {
	calculator := services.NewTaxCalculator()

	tests := []struct {
		name            string
		income          float64
		expenses        float64
		wantTaxable     float64
		wantTax         float64
		wantQuarterly   float64
		wantSettlement  float64
	}{
		{
			name:        "first bracket only",
			income:      10000,
			expenses:    0,
			wantTaxable: 10000,
			// 10000 * 19%
			wantTax:        1900.00,
			wantQuarterly:  475.00,
			wantSettlement: 0,
		},
		{
			name:        "exactly at first bracket boundary",
			income:      12450,
			expenses:    0,
			wantTaxable: 12450,
			wantTax:     2365.50,
			// 2365.50 / 4 = 591.375, rounds to 591.38
			wantQuarterly:  591.38,
			wantSettlement: -0.02,
		},
		{
			name:        "spans three brackets",
			income:      30000,
			expenses:    5000,
			wantTaxable: 25000,
			// 12450*19% + 7750*24% + 4800*30%
			wantTax:        5665.50,
			wantQuarterly:  1416.38,
			wantSettlement: -0.02,
		},
		{
			name:        "top open-ended bracket",
			income:      100000,
			expenses:    0,
			wantTaxable: 100000,
			// 2365.50 + 1860 + 4500 + 9176 + 40000*45%
			wantTax:        35901.50,
			wantQuarterly:  8975.38,
			wantSettlement: -0.02,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calculator.CalculateRentalTax(business.JurisdictionSpainInmuebles, tt.income, tt.expenses)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantTaxable, result.TaxableIncome, 0.001)
			assert.InDelta(t, tt.wantTax, result.TaxAmount, 0.001)
			assert.InDelta(t, tt.wantQuarterly, result.QuarterlyPayment, 0.001)
			assert.InDelta(t, tt.wantSettlement, result.AnnualSettlement, 0.001)
		})
	}
}

func TestTaxCalculator_SpainDeductionAllocation(t *testing.T) {
	calculator := services.NewTaxCalculator()

	result, err := calculator.CalculateRentalTax(business.JurisdictionSpainInmuebles, 30000, 5000)
	require.NoError(t, err)

	assert.InDelta(t, 5000, result.Deductions.Total, 0.001)
	assert.InDelta(t, 2250, result.Deductions.Breakdown["conservation"], 0.001)
	assert.InDelta(t, 1750, result.Deductions.Breakdown["depreciation"], 0.001)
	assert.InDelta(t, 1000, result.Deductions.Breakdown["community_fees"], 0.001)
}

func TestTaxCalculator_DeductionsCappedAtGrossIncome(t *testing.T) {
	calculator := services.NewTaxCalculator()

	result, err := calculator.CalculateRentalTax(business.JurisdictionPortugalRendimentos, 1000, 5000)
	require.NoError(t, err)

	assert.InDelta(t, 1000, result.Deductions.Total, 0.001)
	assert.InDelta(t, 0, result.TaxableIncome, 0.001)
	assert.InDelta(t, 0, result.TaxAmount, 0.001)
	assert.InDelta(t, 0, result.QuarterlyPayment, 0.001)
	assert.InDelta(t, 0, result.AnnualSettlement, 0.001)
}

func TestTaxCalculator_ZeroGrossIncome(t *testing.T) {
	calculator := services.NewTaxCalculator()

	result, err := calculator.CalculateRentalTax(business.JurisdictionSpainInmuebles, 0, 0)
	require.NoError(t, err)

	assert.InDelta(t, 0, result.TaxAmount, 0.001)
	assert.InDelta(t, 0, result.EffectiveRate, 0.000001)
}

func TestTaxCalculator_BreakdownSumsToTotal(t *testing.T) {
	calculator := services.NewTaxCalculator()

	// Odd amounts force rounding in the per-category shares. The last
	// category absorbs the remainder so the breakdown stays consistent.
	amounts := []struct {
		income   float64
		expenses float64
	}{
		{12345.67, 1234.51},
		{999.99, 333.33},
		{50000, 10001.01},
	}

	for _, jurisdiction := range calculator.SupportedJurisdictions() {
		for _, amount := range amounts {
			result, err := calculator.CalculateRentalTax(jurisdiction, amount.income, amount.expenses)
			require.NoError(t, err)

			sum := 0.0
			for _, v := range result.Deductions.Breakdown {
				sum += v
			}
			assert.InDelta(t, result.Deductions.Total, sum, 0.001)
			assert.LessOrEqual(t, result.Deductions.Total, amount.expenses+0.001)
			assert.LessOrEqual(t, result.TaxableIncome, result.GrossIncome+0.001)
		}
	}
}

func TestTaxCalculator_QuarterlyScheduleReconciles(t *testing.T) {
	calculator := services.NewTaxCalculator()

	result, err := calculator.CalculateRentalTax(business.JurisdictionSpainInmuebles, 28391.77, 1893.14)
	require.NoError(t, err)

	reconciled := result.QuarterlyPayment*4 + result.AnnualSettlement
	assert.InDelta(t, result.TaxAmount, reconciled, 0.001)
}

func TestTaxCalculator_UnsupportedJurisdiction(t *testing.T) {
	calculator := services.NewTaxCalculator()

	_, err := calculator.CalculateRentalTax("france_foncier", 10000, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrUnsupportedJurisdiction)
}

func TestTaxCalculator_InvalidAmounts(t *testing.T) {
	calculator := services.NewTaxCalculator()

	tests := []struct {
		name     string
		income   float64
		expenses float64
	}{
		{"negative income", -1, 0},
		{"negative expenses", 1000, -1},
		{"NaN income", math.NaN(), 0},
		{"NaN expenses", 1000, math.NaN()},
		{"positive infinity income", math.Inf(1), 0},
		{"negative infinity expenses", 1000, math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calculator.CalculateRentalTax(business.JurisdictionPortugalRendimentos, tt.income, tt.expenses)
			require.Error(t, err)
			assert.ErrorIs(t, err, services.ErrInvalidAmount)
		})
	}
}
