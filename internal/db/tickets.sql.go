package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const countOpenTickets = `-- name: CountOpenTickets :one
SELECT count(*) FROM maintenance_tickets WHERE status IN ('open', 'in_progress')
`

func (q *Queries) CountOpenTickets(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countOpenTickets)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createTicket = `-- name: CreateTicket :one
INSERT INTO maintenance_tickets (property_id, title, description, priority, status)
VALUES ($1, $2, $3, $4, 'open')
RETURNING id, property_id, title, description, priority, status, resolved_at, created_at, updated_at
`

type CreateTicketParams struct {
	PropertyID  uuid.UUID
	Title       string
	Description pgtype.Text
	Priority    string
}

func (q *Queries) CreateTicket(ctx context.Context, arg CreateTicketParams) (MaintenanceTicket, error) {
	row := q.db.QueryRow(ctx, createTicket,
		arg.PropertyID,
		arg.Title,
		arg.Description,
		arg.Priority,
	)
	var i MaintenanceTicket
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.Title,
		&i.Description,
		&i.Priority,
		&i.Status,
		&i.ResolvedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getTicket = `-- name: GetTicket :one
SELECT id, property_id, title, description, priority, status, resolved_at, created_at, updated_at
FROM maintenance_tickets WHERE id = $1
`

func (q *Queries) GetTicket(ctx context.Context, id uuid.UUID) (MaintenanceTicket, error) {
	row := q.db.QueryRow(ctx, getTicket, id)
	var i MaintenanceTicket
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.Title,
		&i.Description,
		&i.Priority,
		&i.Status,
		&i.ResolvedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listTickets = `-- name: ListTickets :many
SELECT id, property_id, title, description, priority, status, resolved_at, created_at, updated_at
FROM maintenance_tickets
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

type ListTicketsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListTickets(ctx context.Context, arg ListTicketsParams) ([]MaintenanceTicket, error) {
	rows, err := q.db.Query(ctx, listTickets, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MaintenanceTicket
	for rows.Next() {
		var i MaintenanceTicket
		if err := rows.Scan(
			&i.ID,
			&i.PropertyID,
			&i.Title,
			&i.Description,
			&i.Priority,
			&i.Status,
			&i.ResolvedAt,
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

const listTicketsByProperty = `-- name: ListTicketsByProperty :many
SELECT id, property_id, title, description, priority, status, resolved_at, created_at, updated_at
FROM maintenance_tickets
WHERE property_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListTicketsByProperty(ctx context.Context, propertyID uuid.UUID) ([]MaintenanceTicket, error) {
	rows, err := q.db.Query(ctx, listTicketsByProperty, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MaintenanceTicket
	for rows.Next() {
		var i MaintenanceTicket
		if err := rows.Scan(
			&i.ID,
			&i.PropertyID,
			&i.Title,
			&i.Description,
			&i.Priority,
			&i.Status,
			&i.ResolvedAt,
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

const countTickets = `-- name: CountTickets :one
SELECT count(*) FROM maintenance_tickets
`

func (q *Queries) CountTickets(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countTickets)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateTicket = `-- name: UpdateTicket :one
UPDATE maintenance_tickets
SET title = COALESCE($2, title),
    description = COALESCE($3, description),
    priority = COALESCE($4, priority),
    updated_at = now()
WHERE id = $1
RETURNING id, property_id, title, description, priority, status, resolved_at, created_at, updated_at
`

type UpdateTicketParams struct {
	ID          uuid.UUID
	Title       pgtype.Text
	Description pgtype.Text
	Priority    pgtype.Text
}

func (q *Queries) UpdateTicket(ctx context.Context, arg UpdateTicketParams) (MaintenanceTicket, error) {
	row := q.db.QueryRow(ctx, updateTicket,
		arg.ID,
		arg.Title,
		arg.Description,
		arg.Priority,
	)
	var i MaintenanceTicket
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.Title,
		&i.Description,
		&i.Priority,
		&i.Status,
		&i.ResolvedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateTicketStatus = `-- name: UpdateTicketStatus :one
UPDATE maintenance_tickets
SET status = $2,
    resolved_at = $3,
    updated_at = now()
WHERE id = $1
RETURNING id, property_id, title, description, priority, status, resolved_at, created_at, updated_at
`

type UpdateTicketStatusParams struct {
	ID         uuid.UUID
	Status     string
	ResolvedAt pgtype.Timestamptz
}

func (q *Queries) UpdateTicketStatus(ctx context.Context, arg UpdateTicketStatusParams) (MaintenanceTicket, error) {
	row := q.db.QueryRow(ctx, updateTicketStatus, arg.ID, arg.Status, arg.ResolvedAt)
	var i MaintenanceTicket
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.Title,
		&i.Description,
		&i.Priority,
		&i.Status,
		&i.ResolvedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
