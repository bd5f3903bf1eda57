package services

import (
	"math"

	"github.com/arrenda/arrenda-api/internal/types/business"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// taxRegime describes one jurisdiction's rule set: how deductible expenses
// are allocated across named categories and which rate brackets apply.
// Brackets are ordered by upper bound; a zero upper bound marks the
// open-ended top bracket.
type taxRegime struct {
	country    string
	deductions []business.DeductionRule
	brackets   []business.TaxBracket
}

// Regime tables. Portugal taxes Category F rental income at a flat rate;
// Spain applies the progressive IRPF scale to net rental income.
var taxRegimes = map[string]taxRegime{
	business.JurisdictionPortugalRendimentos: {
		country: "PT",
		deductions: []business.DeductionRule{
			{Category: "maintenance", Share: 0.50},
			{Category: "condominium", Share: 0.30},
			{Category: "municipal_property_tax", Share: 0.20},
		},
		brackets: []business.TaxBracket{
			{UpperBound: 0, Rate: 0.28},
		},
	},
	business.JurisdictionSpainInmuebles: {
		country: "ES",
		deductions: []business.DeductionRule{
			{Category: "conservation", Share: 0.45},
			{Category: "depreciation", Share: 0.35},
			{Category: "community_fees", Share: 0.20},
		},
		brackets: []business.TaxBracket{
			{UpperBound: 12450, Rate: 0.19},
			{UpperBound: 20200, Rate: 0.24},
			{UpperBound: 35200, Rate: 0.30},
			{UpperBound: 60000, Rate: 0.37},
			{UpperBound: 0, Rate: 0.45},
		},
	},
}

// TaxCalculator computes jurisdiction-specific rental income tax. It is
// stateless and safe for concurrent use.
type TaxCalculator struct{}

// NewTaxCalculator creates a new tax calculator
func NewTaxCalculator() *TaxCalculator {
	return &TaxCalculator{}
}

// SupportedJurisdictions returns the identifiers of all supported regimes.
func (c *TaxCalculator) SupportedJurisdictions() []string {
	return []string{
		business.JurisdictionPortugalRendimentos,
		business.JurisdictionSpainInmuebles,
	}
}

// CalculateRentalTax computes the annual tax liability for rental income
// under the given jurisdiction. Amounts are in the caller's base currency
// unit. The returned result is freshly allocated on every call.
func (c *TaxCalculator) CalculateRentalTax(jurisdiction string, annualRentalIncome, deductibleExpenses float64) (*business.TaxResult, error) {
	if !isValidAmount(annualRentalIncome) {
		return nil, errors.Wrapf(ErrInvalidAmount, "annual rental income %v", annualRentalIncome)
	}
	if !isValidAmount(deductibleExpenses) {
		return nil, errors.Wrapf(ErrInvalidAmount, "deductible expenses %v", deductibleExpenses)
	}

	regime, ok := taxRegimes[jurisdiction]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedJurisdiction, "jurisdiction %q", jurisdiction)
	}

	gross := decimal.NewFromFloat(annualRentalIncome)
	expenses := decimal.NewFromFloat(deductibleExpenses)

	// Deductions can never exceed the claimed expenses nor push taxable
	// income below zero.
	allowed := decimal.Min(expenses, gross)
	breakdown, total := allocateDeductions(regime.deductions, allowed)

	taxable := gross.Sub(total)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	tax := applyBrackets(regime.brackets, taxable).Round(2)

	effectiveRate := decimal.Zero
	if gross.IsPositive() {
		effectiveRate = tax.Div(gross).Round(6)
	}

	// Quarterly installments are rounded half-up to the cent; the annual
	// settlement reconciles the rounding remainder and may be negative.
	quarterly := tax.Div(decimal.NewFromInt(4)).Round(2)
	settlement := tax.Sub(quarterly.Mul(decimal.NewFromInt(4)))

	result := &business.TaxResult{
		Jurisdiction:     jurisdiction,
		GrossIncome:      gross.InexactFloat64(),
		TaxableIncome:    taxable.InexactFloat64(),
		TaxAmount:        tax.InexactFloat64(),
		EffectiveRate:    effectiveRate.InexactFloat64(),
		QuarterlyPayment: quarterly.InexactFloat64(),
		AnnualSettlement: settlement.InexactFloat64(),
		Deductions: business.DeductionSummary{
			Breakdown: make(map[string]float64, len(breakdown)),
			Total:     total.InexactFloat64(),
		},
	}
	for category, amount := range breakdown {
		result.Deductions.Breakdown[category] = amount.InexactFloat64()
	}

	return result, nil
}

// allocateDeductions splits the allowed deduction total across the regime's
// categories by share. The final category absorbs the rounding remainder so
// the breakdown sums exactly to the total.
func allocateDeductions(rules []business.DeductionRule, allowed decimal.Decimal) (map[string]decimal.Decimal, decimal.Decimal) {
	breakdown := make(map[string]decimal.Decimal, len(rules))

	assigned := decimal.Zero
	for i, rule := range rules {
		var amount decimal.Decimal
		if i == len(rules)-1 {
			amount = allowed.Sub(assigned)
		} else {
			amount = allowed.Mul(decimal.NewFromFloat(rule.Share)).Round(2)
		}
		breakdown[rule.Category] = amount
		assigned = assigned.Add(amount)
	}

	return breakdown, assigned
}

// applyBrackets computes tax over taxable income using marginal bracket
// accumulation. Each bracket's rate applies only to the slice of income
// inside that bracket.
func applyBrackets(brackets []business.TaxBracket, taxable decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	lower := decimal.Zero

	for _, bracket := range brackets {
		rate := decimal.NewFromFloat(bracket.Rate)

		if bracket.UpperBound == 0 {
			// Open-ended top bracket takes everything above the last bound.
			if taxable.GreaterThan(lower) {
				tax = tax.Add(taxable.Sub(lower).Mul(rate))
			}
			break
		}

		upper := decimal.NewFromFloat(bracket.UpperBound)
		if taxable.LessThanOrEqual(lower) {
			break
		}

		slice := decimal.Min(taxable, upper).Sub(lower)
		tax = tax.Add(slice.Mul(rate))
		lower = upper
	}

	return tax
}

func isValidAmount(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
