package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arrenda/arrenda-api/internal/db"
	"github.com/arrenda/arrenda-api/internal/helpers"
	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/arrenda/arrenda-api/internal/types/api/params"
	"github.com/arrenda/arrenda-api/internal/types/api/responses"
	"github.com/arrenda/arrenda-api/internal/types/business"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// TaxService wraps the rental tax calculator with assessment persistence
type TaxService struct {
	queries    db.Querier
	calculator *TaxCalculator
	logger     *zap.Logger
}

// NewTaxService creates a new tax service
func NewTaxService(queries db.Querier) *TaxService {
	return &TaxService{
		queries:    queries,
		calculator: NewTaxCalculator(),
		logger:     logger.Log,
	}
}

// Calculator exposes the underlying pure calculator
func (s *TaxService) Calculator() *TaxCalculator {
	return s.calculator
}

// CalculateTax computes rental tax for a jurisdiction and optionally
// persists the assessment for later reference.
func (s *TaxService) CalculateTax(ctx context.Context, params params.CalculateTaxParams) (*responses.TaxCalculationResponse, error) {
	s.logger.Info("Calculating rental tax",
		zap.String("jurisdiction", params.Jurisdiction),
		zap.Float64("annual_rental_income", params.AnnualRentalIncome),
		zap.Float64("deductible_expenses", params.DeductibleExpenses))

	result, err := s.calculator.CalculateRentalTax(params.Jurisdiction, params.AnnualRentalIncome, params.DeductibleExpenses)
	if err != nil {
		return nil, err
	}

	response := &responses.TaxCalculationResponse{
		Result:       result,
		CalculatedAt: time.Now(),
	}

	if params.Persist {
		assessment, err := s.persistAssessment(ctx, params, result)
		if err != nil {
			return nil, err
		}
		response.AssessmentID = assessment.ID.String()
	}

	return response, nil
}

// ListAssessments returns a page of persisted assessments plus the total count
func (s *TaxService) ListAssessments(ctx context.Context, params params.ListTaxAssessmentsParams) ([]responses.TaxAssessmentResponse, int64, error) {
	assessments, err := s.queries.ListTaxAssessments(ctx, db.ListTaxAssessmentsParams{
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tax assessments: %w", err)
	}

	total, err := s.queries.CountTaxAssessments(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tax assessments: %w", err)
	}

	result := make([]responses.TaxAssessmentResponse, 0, len(assessments))
	for _, assessment := range assessments {
		response, err := s.toAssessmentResponse(assessment)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *response)
	}

	return result, total, nil
}

// ListJurisdictions describes the supported tax regimes
func (s *TaxService) ListJurisdictions() []responses.JurisdictionResponse {
	return []responses.JurisdictionResponse{
		{
			Code:        business.JurisdictionPortugalRendimentos,
			Country:     "PT",
			Description: "Portugal Category F rental income, flat rate",
		},
		{
			Code:        business.JurisdictionSpainInmuebles,
			Country:     "ES",
			Description: "Spain IRPF real-estate rental income, progressive scale",
		},
	}
}

func (s *TaxService) persistAssessment(ctx context.Context, params params.CalculateTaxParams, result *business.TaxResult) (db.TaxAssessment, error) {
	breakdown, err := json.Marshal(result.Deductions.Breakdown)
	if err != nil {
		return db.TaxAssessment{}, fmt.Errorf("failed to marshal deduction breakdown: %w", err)
	}

	arg := db.CreateTaxAssessmentParams{
		Jurisdiction: result.Jurisdiction,
		Breakdown:    breakdown,
	}

	fields := map[*pgtype.Numeric]float64{
		&arg.GrossIncome:        result.GrossIncome,
		&arg.DeductibleExpenses: params.DeductibleExpenses,
		&arg.TaxableIncome:      result.TaxableIncome,
		&arg.TaxAmount:          result.TaxAmount,
		&arg.EffectiveRate:      result.EffectiveRate,
		&arg.QuarterlyPayment:   result.QuarterlyPayment,
		&arg.AnnualSettlement:   result.AnnualSettlement,
	}
	for dst, value := range fields {
		n, err := helpers.NumericFromFloat(value)
		if err != nil {
			return db.TaxAssessment{}, err
		}
		*dst = n
	}

	assessment, err := s.queries.CreateTaxAssessment(ctx, arg)
	if err != nil {
		return db.TaxAssessment{}, fmt.Errorf("failed to persist tax assessment: %w", err)
	}

	s.logger.Info("Persisted tax assessment",
		zap.String("assessment_id", assessment.ID.String()),
		zap.String("jurisdiction", assessment.Jurisdiction))

	return assessment, nil
}

func (s *TaxService) toAssessmentResponse(assessment db.TaxAssessment) (*responses.TaxAssessmentResponse, error) {
	response := &responses.TaxAssessmentResponse{
		ID:           assessment.ID.String(),
		Object:       "tax_assessment",
		Jurisdiction: assessment.Jurisdiction,
		CreatedAt:    helpers.TimeOrZero(assessment.CreatedAt),
	}

	fields := map[*float64]pgtype.Numeric{
		&response.GrossIncome:        assessment.GrossIncome,
		&response.DeductibleExpenses: assessment.DeductibleExpenses,
		&response.TaxableIncome:      assessment.TaxableIncome,
		&response.TaxAmount:          assessment.TaxAmount,
		&response.EffectiveRate:      assessment.EffectiveRate,
		&response.QuarterlyPayment:   assessment.QuarterlyPayment,
		&response.AnnualSettlement:   assessment.AnnualSettlement,
	}
	for dst, src := range fields {
		f, err := helpers.NumericToFloat(src)
		if err != nil {
			return nil, err
		}
		*dst = f
	}

	if len(assessment.Breakdown) > 0 {
		if err := json.Unmarshal(assessment.Breakdown, &response.Breakdown); err != nil {
			return nil, fmt.Errorf("failed to parse deduction breakdown: %w", err)
		}
	}

	return response, nil
}
