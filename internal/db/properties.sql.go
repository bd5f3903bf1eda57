package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const countProperties = `-- name: CountProperties :one
SELECT count(*) FROM properties
`

func (q *Queries) CountProperties(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countProperties)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createProperty = `-- name: CreateProperty :one
INSERT INTO properties (name, address_line1, address_line2, city, postal_code, country, bedrooms, bathrooms, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, name, address_line1, address_line2, city, postal_code, country, bedrooms, bathrooms, notes, created_at, updated_at
`

type CreatePropertyParams struct {
	Name         string
	AddressLine1 string
	AddressLine2 pgtype.Text
	City         string
	PostalCode   pgtype.Text
	Country      string
	Bedrooms     pgtype.Int4
	Bathrooms    pgtype.Int4
	Notes        pgtype.Text
}

func (q *Queries) CreateProperty(ctx context.Context, arg CreatePropertyParams) (Property, error) {
	row := q.db.QueryRow(ctx, createProperty,
		arg.Name,
		arg.AddressLine1,
		arg.AddressLine2,
		arg.City,
		arg.PostalCode,
		arg.Country,
		arg.Bedrooms,
		arg.Bathrooms,
		arg.Notes,
	)
	var i Property
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.AddressLine1,
		&i.AddressLine2,
		&i.City,
		&i.PostalCode,
		&i.Country,
		&i.Bedrooms,
		&i.Bathrooms,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteProperty = `-- name: DeleteProperty :exec
DELETE FROM properties WHERE id = $1
`

func (q *Queries) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteProperty, id)
	return err
}

const getProperty = `-- name: GetProperty :one
SELECT id, name, address_line1, address_line2, city, postal_code, country, bedrooms, bathrooms, notes, created_at, updated_at
FROM properties WHERE id = $1
`

func (q *Queries) GetProperty(ctx context.Context, id uuid.UUID) (Property, error) {
	row := q.db.QueryRow(ctx, getProperty, id)
	var i Property
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.AddressLine1,
		&i.AddressLine2,
		&i.City,
		&i.PostalCode,
		&i.Country,
		&i.Bedrooms,
		&i.Bathrooms,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listProperties = `-- name: ListProperties :many
SELECT id, name, address_line1, address_line2, city, postal_code, country, bedrooms, bathrooms, notes, created_at, updated_at
FROM properties
ORDER BY name
LIMIT $1 OFFSET $2
`

type ListPropertiesParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListProperties(ctx context.Context, arg ListPropertiesParams) ([]Property, error) {
	rows, err := q.db.Query(ctx, listProperties, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Property
	for rows.Next() {
		var i Property
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.AddressLine1,
			&i.AddressLine2,
			&i.City,
			&i.PostalCode,
			&i.Country,
			&i.Bedrooms,
			&i.Bathrooms,
			&i.Notes,
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

const updateProperty = `-- name: UpdateProperty :one
UPDATE properties
SET name = COALESCE($2, name),
    address_line1 = COALESCE($3, address_line1),
    address_line2 = COALESCE($4, address_line2),
    city = COALESCE($5, city),
    postal_code = COALESCE($6, postal_code),
    country = COALESCE($7, country),
    bedrooms = COALESCE($8, bedrooms),
    bathrooms = COALESCE($9, bathrooms),
    notes = COALESCE($10, notes),
    updated_at = now()
WHERE id = $1
RETURNING id, name, address_line1, address_line2, city, postal_code, country, bedrooms, bathrooms, notes, created_at, updated_at
`

type UpdatePropertyParams struct {
	ID           uuid.UUID
	Name         pgtype.Text
	AddressLine1 pgtype.Text
	AddressLine2 pgtype.Text
	City         pgtype.Text
	PostalCode   pgtype.Text
	Country      pgtype.Text
	Bedrooms     pgtype.Int4
	Bathrooms    pgtype.Int4
	Notes        pgtype.Text
}

func (q *Queries) UpdateProperty(ctx context.Context, arg UpdatePropertyParams) (Property, error) {
	row := q.db.QueryRow(ctx, updateProperty,
		arg.ID,
		arg.Name,
		arg.AddressLine1,
		arg.AddressLine2,
		arg.City,
		arg.PostalCode,
		arg.Country,
		arg.Bedrooms,
		arg.Bathrooms,
		arg.Notes,
	)
	var i Property
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.AddressLine1,
		&i.AddressLine2,
		&i.City,
		&i.PostalCode,
		&i.Country,
		&i.Bedrooms,
		&i.Bathrooms,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
