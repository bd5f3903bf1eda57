package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReceipt = `-- name: CreateReceipt :one
INSERT INTO receipts (lease_id, amount, period_start, period_end, method, reference)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, lease_id, amount, period_start, period_end, method, reference, issued_at, paid_at, created_at
`

type CreateReceiptParams struct {
	LeaseID     uuid.UUID
	Amount      pgtype.Numeric
	PeriodStart pgtype.Date
	PeriodEnd   pgtype.Date
	Method      pgtype.Text
	Reference   string
}

func (q *Queries) CreateReceipt(ctx context.Context, arg CreateReceiptParams) (Receipt, error) {
	row := q.db.QueryRow(ctx, createReceipt,
		arg.LeaseID,
		arg.Amount,
		arg.PeriodStart,
		arg.PeriodEnd,
		arg.Method,
		arg.Reference,
	)
	var i Receipt
	err := row.Scan(
		&i.ID,
		&i.LeaseID,
		&i.Amount,
		&i.PeriodStart,
		&i.PeriodEnd,
		&i.Method,
		&i.Reference,
		&i.IssuedAt,
		&i.PaidAt,
		&i.CreatedAt,
	)
	return i, err
}

const getReceipt = `-- name: GetReceipt :one
SELECT id, lease_id, amount, period_start, period_end, method, reference, issued_at, paid_at, created_at
FROM receipts WHERE id = $1
`

func (q *Queries) GetReceipt(ctx context.Context, id uuid.UUID) (Receipt, error) {
	row := q.db.QueryRow(ctx, getReceipt, id)
	var i Receipt
	err := row.Scan(
		&i.ID,
		&i.LeaseID,
		&i.Amount,
		&i.PeriodStart,
		&i.PeriodEnd,
		&i.Method,
		&i.Reference,
		&i.IssuedAt,
		&i.PaidAt,
		&i.CreatedAt,
	)
	return i, err
}

const listReceiptsByLease = `-- name: ListReceiptsByLease :many
SELECT id, lease_id, amount, period_start, period_end, method, reference, issued_at, paid_at, created_at
FROM receipts
WHERE lease_id = $1
ORDER BY period_start DESC
LIMIT $2 OFFSET $3
`

type ListReceiptsByLeaseParams struct {
	LeaseID uuid.UUID
	Limit   int32
	Offset  int32
}

func (q *Queries) ListReceiptsByLease(ctx context.Context, arg ListReceiptsByLeaseParams) ([]Receipt, error) {
	rows, err := q.db.Query(ctx, listReceiptsByLease, arg.LeaseID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Receipt
	for rows.Next() {
		var i Receipt
		if err := rows.Scan(
			&i.ID,
			&i.LeaseID,
			&i.Amount,
			&i.PeriodStart,
			&i.PeriodEnd,
			&i.Method,
			&i.Reference,
			&i.IssuedAt,
			&i.PaidAt,
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

const listOutstandingReceipts = `-- name: ListOutstandingReceipts :many
SELECT id, lease_id, amount, period_start, period_end, method, reference, issued_at, paid_at, created_at
FROM receipts
WHERE paid_at IS NULL
ORDER BY period_start
`

func (q *Queries) ListOutstandingReceipts(ctx context.Context) ([]Receipt, error) {
	rows, err := q.db.Query(ctx, listOutstandingReceipts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Receipt
	for rows.Next() {
		var i Receipt
		if err := rows.Scan(
			&i.ID,
			&i.LeaseID,
			&i.Amount,
			&i.PeriodStart,
			&i.PeriodEnd,
			&i.Method,
			&i.Reference,
			&i.IssuedAt,
			&i.PaidAt,
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

const markReceiptPaid = `-- name: MarkReceiptPaid :one
UPDATE receipts
SET paid_at = $2, method = $3
WHERE id = $1
RETURNING id, lease_id, amount, period_start, period_end, method, reference, issued_at, paid_at, created_at
`

type MarkReceiptPaidParams struct {
	ID     uuid.UUID
	PaidAt pgtype.Timestamptz
	Method pgtype.Text
}

func (q *Queries) MarkReceiptPaid(ctx context.Context, arg MarkReceiptPaidParams) (Receipt, error) {
	row := q.db.QueryRow(ctx, markReceiptPaid, arg.ID, arg.PaidAt, arg.Method)
	var i Receipt
	err := row.Scan(
		&i.ID,
		&i.LeaseID,
		&i.Amount,
		&i.PeriodStart,
		&i.PeriodEnd,
		&i.Method,
		&i.Reference,
		&i.IssuedAt,
		&i.PaidAt,
		&i.CreatedAt,
	)
	return i, err
}

const getCollectedAmount = `-- name: GetCollectedAmount :one
SELECT COALESCE(sum(amount), 0)::numeric
FROM receipts
WHERE paid_at IS NOT NULL AND period_start >= $1 AND period_start < $2
`

type GetCollectedAmountParams struct {
	PeriodFrom pgtype.Date
	PeriodTo   pgtype.Date
}

func (q *Queries) GetCollectedAmount(ctx context.Context, arg GetCollectedAmountParams) (pgtype.Numeric, error) {
	row := q.db.QueryRow(ctx, getCollectedAmount, arg.PeriodFrom, arg.PeriodTo)
	var column_1 pgtype.Numeric
	err := row.Scan(&column_1)
	return column_1, err
}

const getOutstandingAmount = `-- name: GetOutstandingAmount :one
SELECT COALESCE(sum(amount), 0)::numeric
FROM receipts
WHERE paid_at IS NULL
`

func (q *Queries) GetOutstandingAmount(ctx context.Context) (pgtype.Numeric, error) {
	row := q.db.QueryRow(ctx, getOutstandingAmount)
	var column_1 pgtype.Numeric
	err := row.Scan(&column_1)
	return column_1, err
}
