package params

// CalculateTaxParams contains parameters for a rental tax calculation
type CalculateTaxParams struct {
	Jurisdiction       string
	AnnualRentalIncome float64
	DeductibleExpenses float64
	Persist            bool
}

// ListTaxAssessmentsParams contains parameters for listing persisted assessments
type ListTaxAssessmentsParams struct {
	Limit  int32
	Offset int32
}
