package business

// Supported tax jurisdiction identifiers. Each one selects a complete rule
// set (deduction allocation plus rate schedule) inside the tax calculator.
const (
	JurisdictionPortugalRendimentos = "portugal_rendimentos"
	JurisdictionSpainInmuebles      = "spain_inmuebles"
)

// DeductionSummary itemizes the allowed deductions applied to a tax
// calculation. Breakdown maps a deduction category name to the amount
// allocated to it; Total is the sum of all categories.
type DeductionSummary struct {
	Breakdown map[string]float64 `json:"breakdown"`
	Total     float64            `json:"total"`
}

// TaxResult is the structured outcome of a rental income tax calculation.
// All amounts are in the caller's base currency unit. AnnualSettlement is
// the only field that may be negative: it reconciles the rounding drift of
// the quarterly schedule against the exact annual tax amount.
type TaxResult struct {
	Jurisdiction     string           `json:"jurisdiction"`
	GrossIncome      float64          `json:"gross_income"`
	TaxableIncome    float64          `json:"taxable_income"`
	TaxAmount        float64          `json:"tax_amount"`
	EffectiveRate    float64          `json:"effective_rate"`
	QuarterlyPayment float64          `json:"quarterly_payment"`
	AnnualSettlement float64          `json:"annual_settlement"`
	Deductions       DeductionSummary `json:"deductions"`
}

// TaxBracket is a single marginal bracket of a progressive rate schedule.
// UpperBound is the taxable income ceiling for the bracket; a zero
// UpperBound marks the open-ended top bracket.
type TaxBracket struct {
	UpperBound float64
	Rate       float64
}

// DeductionRule allocates a share of the claimed deductible expenses to a
// named category.
type DeductionRule struct {
	Category string
	Share    float64
}
