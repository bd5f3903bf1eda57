package requests

// CalculateTaxRequest represents the request body for a rental tax calculation
type CalculateTaxRequest struct {
	Jurisdiction       string  `json:"jurisdiction" binding:"required"`
	AnnualRentalIncome float64 `json:"annual_rental_income"`
	DeductibleExpenses float64 `json:"deductible_expenses"`
	Persist            bool    `json:"persist,omitempty"`
}
