package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createTaxAssessment = `-- name: CreateTaxAssessment :one
INSERT INTO tax_assessments (jurisdiction, gross_income, deductible_expenses, taxable_income, tax_amount, effective_rate, quarterly_payment, annual_settlement, breakdown)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, jurisdiction, gross_income, deductible_expenses, taxable_income, tax_amount, effective_rate, quarterly_payment, annual_settlement, breakdown, created_at
`

type CreateTaxAssessmentParams struct {
	Jurisdiction       string
	GrossIncome        pgtype.Numeric
	DeductibleExpenses pgtype.Numeric
	TaxableIncome      pgtype.Numeric
	TaxAmount          pgtype.Numeric
	EffectiveRate      pgtype.Numeric
	QuarterlyPayment   pgtype.Numeric
	AnnualSettlement   pgtype.Numeric
	Breakdown          []byte
}

func (q *Queries) CreateTaxAssessment(ctx context.Context, arg CreateTaxAssessmentParams) (TaxAssessment, error) {
	row := q.db.QueryRow(ctx, createTaxAssessment,
		arg.Jurisdiction,
		arg.GrossIncome,
		arg.DeductibleExpenses,
		arg.TaxableIncome,
		arg.TaxAmount,
		arg.EffectiveRate,
		arg.QuarterlyPayment,
		arg.AnnualSettlement,
		arg.Breakdown,
	)
	var i TaxAssessment
	err := row.Scan(
		&i.ID,
		&i.Jurisdiction,
		&i.GrossIncome,
		&i.DeductibleExpenses,
		&i.TaxableIncome,
		&i.TaxAmount,
		&i.EffectiveRate,
		&i.QuarterlyPayment,
		&i.AnnualSettlement,
		&i.Breakdown,
		&i.CreatedAt,
	)
	return i, err
}

const listTaxAssessments = `-- name: ListTaxAssessments :many
SELECT id, jurisdiction, gross_income, deductible_expenses, taxable_income, tax_amount, effective_rate, quarterly_payment, annual_settlement, breakdown, created_at
FROM tax_assessments
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

type ListTaxAssessmentsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListTaxAssessments(ctx context.Context, arg ListTaxAssessmentsParams) ([]TaxAssessment, error) {
	rows, err := q.db.Query(ctx, listTaxAssessments, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TaxAssessment
	for rows.Next() {
		var i TaxAssessment
		if err := rows.Scan(
			&i.ID,
			&i.Jurisdiction,
			&i.GrossIncome,
			&i.DeductibleExpenses,
			&i.TaxableIncome,
			&i.TaxAmount,
			&i.EffectiveRate,
			&i.QuarterlyPayment,
			&i.AnnualSettlement,
			&i.Breakdown,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countTaxAssessments = `-- name: CountTaxAssessments :one
SELECT count(*) FROM tax_assessments
`

func (q *Queries) CountTaxAssessments(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countTaxAssessments)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getMonthlyRentRoll = `-- name: GetMonthlyRentRoll :one
SELECT COALESCE(sum(rent_amount), 0)::numeric FROM leases WHERE status = 'active'
`

func (q *Queries) GetMonthlyRentRoll(ctx context.Context) (pgtype.Numeric, error) {
	row := q.db.QueryRow(ctx, getMonthlyRentRoll)
	var column_1 pgtype.Numeric
	err := row.Scan(&column_1)
	return column_1, err
}
