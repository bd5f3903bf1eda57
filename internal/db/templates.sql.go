package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createTemplate = `-- name: CreateTemplate :one
INSERT INTO correspondence_templates (name, category, subject, content)
VALUES ($1, $2, $3, $4)
RETURNING id, name, category, subject, content, created_at, updated_at
`

type CreateTemplateParams struct {
	Name     string
	Category pgtype.Text
	Subject  pgtype.Text
	Content  string
}

func (q *Queries) CreateTemplate(ctx context.Context, arg CreateTemplateParams) (CorrespondenceTemplate, error) {
	row := q.db.QueryRow(ctx, createTemplate,
		arg.Name,
		arg.Category,
		arg.Subject,
		arg.Content,
	)
	var i CorrespondenceTemplate
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Category,
		&i.Subject,
		&i.Content,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteTemplate = `-- name: DeleteTemplate :exec
DELETE FROM correspondence_templates WHERE id = $1
`

func (q *Queries) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteTemplate, id)
	return err
}

const getTemplate = `-- name: GetTemplate :one
SELECT id, name, category, subject, content, created_at, updated_at
FROM correspondence_templates WHERE id = $1
`

func (q *Queries) GetTemplate(ctx context.Context, id uuid.UUID) (CorrespondenceTemplate, error) {
	row := q.db.QueryRow(ctx, getTemplate, id)
	var i CorrespondenceTemplate
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Category,
		&i.Subject,
		&i.Content,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listTemplates = `-- name: ListTemplates :many
SELECT id, name, category, subject, content, created_at, updated_at
FROM correspondence_templates
ORDER BY name
LIMIT $1 OFFSET $2
`

type ListTemplatesParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListTemplates(ctx context.Context, arg ListTemplatesParams) ([]CorrespondenceTemplate, error) {
	rows, err := q.db.Query(ctx, listTemplates, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CorrespondenceTemplate
	for rows.Next() {
		var i CorrespondenceTemplate
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Category,
			&i.Subject,
			&i.Content,
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

const countTemplates = `-- name: CountTemplates :one
SELECT count(*) FROM correspondence_templates
`

func (q *Queries) CountTemplates(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countTemplates)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateTemplate = `-- name: UpdateTemplate :one
UPDATE correspondence_templates
SET name = COALESCE($2, name),
    category = COALESCE($3, category),
    subject = COALESCE($4, subject),
    content = COALESCE($5, content),
    updated_at = now()
WHERE id = $1
RETURNING id, name, category, subject, content, created_at, updated_at
`

type UpdateTemplateParams struct {
	ID       uuid.UUID
	Name     pgtype.Text
	Category pgtype.Text
	Subject  pgtype.Text
	Content  pgtype.Text
}

func (q *Queries) UpdateTemplate(ctx context.Context, arg UpdateTemplateParams) (CorrespondenceTemplate, error) {
	row := q.db.QueryRow(ctx, updateTemplate,
		arg.ID,
		arg.Name,
		arg.Category,
		arg.Subject,
		arg.Content,
	)
	var i CorrespondenceTemplate
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Category,
		&i.Subject,
		&i.Content,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
