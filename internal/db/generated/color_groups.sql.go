// Hand-maintained in sqlc's output layout; keep in step with internal/db/queries.
// source: color_groups.sql

package dbgen

import (
	"context"
	"time"
)

const createColorGroup = `-- name: CreateColorGroup :one
INSERT INTO color_groups (id, name, created_at)
VALUES (?1, ?2, ?3)
RETURNING id, name, created_at
`

type CreateColorGroupParams struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

func (q *Queries) CreateColorGroup(ctx context.Context, arg CreateColorGroupParams) (ColorGroup, error) {
	row := q.db.QueryRowContext(ctx, createColorGroup, arg.ID, arg.Name, arg.CreatedAt)
	var i ColorGroup
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt)
	return i, err
}

const deleteColorGroup = `-- name: DeleteColorGroup :execrows
DELETE FROM color_groups
WHERE id = ?1
`

func (q *Queries) DeleteColorGroup(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteColorGroup, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getColorGroup = `-- name: GetColorGroup :one
SELECT id, name, created_at
FROM color_groups
WHERE id = ?1
`

func (q *Queries) GetColorGroup(ctx context.Context, id string) (ColorGroup, error) {
	row := q.db.QueryRowContext(ctx, getColorGroup, id)
	var i ColorGroup
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt)
	return i, err
}

const listColorGroups = `-- name: ListColorGroups :many
SELECT id, name, created_at
FROM color_groups
ORDER BY rowid
`

func (q *Queries) ListColorGroups(ctx context.Context) ([]ColorGroup, error) {
	rows, err := q.db.QueryContext(ctx, listColorGroups)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ColorGroup
	for rows.Next() {
		var i ColorGroup
		if err := rows.Scan(&i.ID, &i.Name, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
