package responses

import (
	"time"

	"github.com/arrenda/arrenda-api/internal/types/business"
)

// TaxCalculationResponse contains the calculated rental tax figures
type TaxCalculationResponse struct {
	Result       *business.TaxResult `json:"result"`
	AssessmentID string              `json:"assessment_id,omitempty"`
	CalculatedAt time.Time           `json:"calculated_at"`
}

// TaxAssessmentResponse represents a persisted tax assessment
type TaxAssessmentResponse struct {
	ID                 string             `json:"id"`
	Object             string             `json:"object"`
	Jurisdiction       string             `json:"jurisdiction"`
	GrossIncome        float64            `json:"gross_income"`
	DeductibleExpenses float64            `json:"deductible_expenses"`
	TaxableIncome      float64            `json:"taxable_income"`
	TaxAmount          float64            `json:"tax_amount"`
	EffectiveRate      float64            `json:"effective_rate"`
	QuarterlyPayment   float64            `json:"quarterly_payment"`
	AnnualSettlement   float64            `json:"annual_settlement"`
	Breakdown          map[string]float64 `json:"breakdown"`
	CreatedAt          time.Time          `json:"created_at"`
}

// JurisdictionResponse describes a supported tax jurisdiction
type JurisdictionResponse struct {
	Code        string `json:"code"`
	Country     string `json:"country"`
	Description string `json:"description"`
}
