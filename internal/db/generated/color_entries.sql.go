// Hand-maintained in sqlc's output layout; keep in step with internal/db/queries.
// source: color_entries.sql

package dbgen

import (
	"context"
	"time"
)

const countColorEntries = `-- name: CountColorEntries :one
SELECT COUNT(*)
FROM color_entries
WHERE group_id = ?1
`

func (q *Queries) CountColorEntries(ctx context.Context, groupID string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countColorEntries, groupID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createColorEntry = `-- name: CreateColorEntry :one
INSERT INTO color_entries (id, group_id, name, value, position, created_at)
VALUES (?1, ?2, ?3, ?4, ?5, ?6)
RETURNING id, group_id, name, value, position, created_at
`

type CreateColorEntryParams struct {
	ID        string
	GroupID   string
	Name      string
	Value     string
	Position  int64
	CreatedAt time.Time
}

func (q *Queries) CreateColorEntry(ctx context.Context, arg CreateColorEntryParams) (ColorEntry, error) {
	row := q.db.QueryRowContext(ctx, createColorEntry,
		arg.ID,
		arg.GroupID,
		arg.Name,
		arg.Value,
		arg.Position,
		arg.CreatedAt,
	)
	var i ColorEntry
	err := row.Scan(
		&i.ID,
		&i.GroupID,
		&i.Name,
		&i.Value,
		&i.Position,
		&i.CreatedAt,
	)
	return i, err
}

const deleteColorEntry = `-- name: DeleteColorEntry :execrows
DELETE FROM color_entries
WHERE id = ?1
`

func (q *Queries) DeleteColorEntry(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteColorEntry, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listColorEntries = `-- name: ListColorEntries :many
SELECT id, group_id, name, value, position, created_at
FROM color_entries
WHERE group_id = ?1
ORDER BY position, rowid
`

func (q *Queries) ListColorEntries(ctx context.Context, groupID string) ([]ColorEntry, error) {
	rows, err := q.db.QueryContext(ctx, listColorEntries, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ColorEntry
	for rows.Next() {
		var i ColorEntry
		if err := rows.Scan(
			&i.ID,
			&i.GroupID,
			&i.Name,
			&i.Value,
			&i.Position,
			&i.CreatedAt,
		); err != nil {
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

const updateColorEntryPosition = `-- name: UpdateColorEntryPosition :exec
UPDATE color_entries
SET position = ?1
WHERE id = ?2 AND group_id = ?3
`

type UpdateColorEntryPositionParams struct {
	Position int64
	ID       string
	GroupID  string
}

func (q *Queries) UpdateColorEntryPosition(ctx context.Context, arg UpdateColorEntryPositionParams) error {
	_, err := q.db.ExecContext(ctx, updateColorEntryPosition, arg.Position, arg.ID, arg.GroupID)
	return err
}
