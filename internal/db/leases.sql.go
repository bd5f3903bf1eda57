package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const countLeases = `-- name: CountLeases :one
SELECT count(*) FROM leases
`

func (q *Queries) CountLeases(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countLeases)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countActiveLeases = `-- name: CountActiveLeases :one
SELECT count(*) FROM leases WHERE status = 'active'
`

func (q *Queries) CountActiveLeases(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countActiveLeases)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createLease = `-- name: CreateLease :one
INSERT INTO leases (property_id, tenant_id, rent_amount, currency, start_date, end_date, status)
VALUES ($1, $2, $3, $4, $5, $6, 'active')
RETURNING id, property_id, tenant_id, rent_amount, currency, start_date, end_date, status, created_at, updated_at
`

type CreateLeaseParams struct {
	PropertyID uuid.UUID
	TenantID   uuid.UUID
	RentAmount pgtype.Numeric
	Currency   string
	StartDate  pgtype.Date
	EndDate    pgtype.Date
}

func (q *Queries) CreateLease(ctx context.Context, arg CreateLeaseParams) (Lease, error) {
	row := q.db.QueryRow(ctx, createLease,
		arg.PropertyID,
		arg.TenantID,
		arg.RentAmount,
		arg.Currency,
		arg.StartDate,
		arg.EndDate,
	)
	var i Lease
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.TenantID,
		&i.RentAmount,
		&i.Currency,
		&i.StartDate,
		&i.EndDate,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getLease = `-- name: GetLease :one
SELECT id, property_id, tenant_id, rent_amount, currency, start_date, end_date, status, created_at, updated_at
FROM leases WHERE id = $1
`

func (q *Queries) GetLease(ctx context.Context, id uuid.UUID) (Lease, error) {
	row := q.db.QueryRow(ctx, getLease, id)
	var i Lease
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.TenantID,
		&i.RentAmount,
		&i.Currency,
		&i.StartDate,
		&i.EndDate,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getLeaseDetails = `-- name: GetLeaseDetails :one
SELECT l.id, l.property_id, l.tenant_id, l.rent_amount, l.currency, l.start_date, l.end_date, l.status,
       t.name AS tenant_name, t.email AS tenant_email,
       p.name AS property_name, p.address_line1 AS property_address, p.city AS property_city,
       p.bedrooms, p.bathrooms
FROM leases l
JOIN tenants t ON t.id = l.tenant_id
JOIN properties p ON p.id = l.property_id
WHERE l.id = $1
`

type GetLeaseDetailsRow struct {
	ID              uuid.UUID
	PropertyID      uuid.UUID
	TenantID        uuid.UUID
	RentAmount      pgtype.Numeric
	Currency        string
	StartDate       pgtype.Date
	EndDate         pgtype.Date
	Status          string
	TenantName      string
	TenantEmail     pgtype.Text
	PropertyName    string
	PropertyAddress string
	PropertyCity    string
	Bedrooms        pgtype.Int4
	Bathrooms       pgtype.Int4
}

func (q *Queries) GetLeaseDetails(ctx context.Context, id uuid.UUID) (GetLeaseDetailsRow, error) {
	row := q.db.QueryRow(ctx, getLeaseDetails, id)
	var i GetLeaseDetailsRow
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.TenantID,
		&i.RentAmount,
		&i.Currency,
		&i.StartDate,
		&i.EndDate,
		&i.Status,
		&i.TenantName,
		&i.TenantEmail,
		&i.PropertyName,
		&i.PropertyAddress,
		&i.PropertyCity,
		&i.Bedrooms,
		&i.Bathrooms,
	)
	return i, err
}

const listLeases = `-- name: ListLeases :many
SELECT id, property_id, tenant_id, rent_amount, currency, start_date, end_date, status, created_at, updated_at
FROM leases
ORDER BY start_date DESC
LIMIT $1 OFFSET $2
`

type ListLeasesParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListLeases(ctx context.Context, arg ListLeasesParams) ([]Lease, error) {
	rows, err := q.db.Query(ctx, listLeases, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Lease
	for rows.Next() {
		var i Lease
		if err := rows.Scan(
			&i.ID,
			&i.PropertyID,
			&i.TenantID,
			&i.RentAmount,
			&i.Currency,
			&i.StartDate,
			&i.EndDate,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const listLeasesByProperty = `-- name: ListLeasesByProperty :many
SELECT id, property_id, tenant_id, rent_amount, currency, start_date, end_date, status, created_at, updated_at
FROM leases
WHERE property_id = $1
ORDER BY start_date DESC
`

func (q *Queries) ListLeasesByProperty(ctx context.Context, propertyID uuid.UUID) ([]Lease, error) {
	rows, err := q.db.Query(ctx, listLeasesByProperty, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Lease
	for rows.Next() {
		var i Lease
		if err := rows.Scan(
			&i.ID,
			&i.PropertyID,
			&i.TenantID,
			&i.RentAmount,
			&i.Currency,
			&i.StartDate,
			&i.EndDate,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const listLeasesByTenant = `-- name: ListLeasesByTenant :many
SELECT id, property_id, tenant_id, rent_amount, currency, start_date, end_date, status, created_at, updated_at
FROM leases
WHERE tenant_id = $1
ORDER BY start_date DESC
`

func (q *Queries) ListLeasesByTenant(ctx context.Context, tenantID uuid.UUID) ([]Lease, error) {
	rows, err := q.db.Query(ctx, listLeasesByTenant, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Lease
	for rows.Next() {
		var i Lease
		if err := rows.Scan(
			&i.ID,
			&i.PropertyID,
			&i.TenantID,
			&i.RentAmount,
			&i.Currency,
			&i.StartDate,
			&i.EndDate,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const updateLease = `-- name: UpdateLease :one
UPDATE leases
SET rent_amount = COALESCE($2, rent_amount),
    currency = COALESCE($3, currency),
    end_date = COALESCE($4, end_date),
    updated_at = now()
WHERE id = $1
RETURNING id, property_id, tenant_id, rent_amount, currency, start_date, end_date, status, created_at, updated_at
`

type UpdateLeaseParams struct {
	ID         uuid.UUID
	RentAmount pgtype.Numeric
	Currency   pgtype.Text
	EndDate    pgtype.Date
}

func (q *Queries) UpdateLease(ctx context.Context, arg UpdateLeaseParams) (Lease, error) {
	row := q.db.QueryRow(ctx, updateLease,
		arg.ID,
		arg.RentAmount,
		arg.Currency,
		arg.EndDate,
	)
	var i Lease
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.TenantID,
		&i.RentAmount,
		&i.Currency,
		&i.StartDate,
		&i.EndDate,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateLeaseStatus = `-- name: UpdateLeaseStatus :one
UPDATE leases
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING id, property_id, tenant_id, rent_amount, currency, start_date, end_date, status, created_at, updated_at
`

type UpdateLeaseStatusParams struct {
	ID     uuid.UUID
	Status string
}

func (q *Queries) UpdateLeaseStatus(ctx context.Context, arg UpdateLeaseStatusParams) (Lease, error) {
	row := q.db.QueryRow(ctx, updateLeaseStatus, arg.ID, arg.Status)
	var i Lease
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.TenantID,
		&i.RentAmount,
		&i.Currency,
		&i.StartDate,
		&i.EndDate,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
