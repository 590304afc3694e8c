// Package sqlstore implements store.Store on the SQLite database in
// internal/db.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/codr1/designtokens/internal/db"
	dbgen "github.com/codr1/designtokens/internal/db/generated"
	"github.com/codr1/designtokens/internal/models"
	"github.com/codr1/designtokens/internal/store"
)

type Store struct {
	db *db.DB
}

var _ store.Store = (*Store)(nil)

func New(database *db.DB) *Store {
	return &Store{db: database}
}

func (s *Store) CreateGroup(ctx context.Context, group models.ColorGroup) (models.ColorGroup, error) {
	row, err := s.db.Queries.CreateColorGroup(ctx, dbgen.CreateColorGroupParams{
		ID:        group.ID.String(),
		Name:      group.Name,
		CreatedAt: group.CreatedAt,
	})
	if err != nil {
		return models.ColorGroup{}, store.Wrap("create group", err)
	}
	created, err := groupFromDB(row)
	return created, store.Wrap("create group", err)
}

func (s *Store) GetGroup(ctx context.Context, id uuid.UUID) (models.ColorGroup, error) {
	group, err := getGroup(ctx, s.db.Queries, id)
	return group, store.Wrap("get group", err)
}

func (s *Store) ListGroups(ctx context.Context) ([]models.ColorGroup, error) {
	rows, err := s.db.Queries.ListColorGroups(ctx)
	if err != nil {
		return nil, store.Wrap("list groups", err)
	}

	groups := make([]models.ColorGroup, 0, len(rows))
	for _, row := range rows {
		group, err := groupFromDB(row)
		if err != nil {
			return nil, store.Wrap("list groups", err)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *Store) DeleteGroups(ctx context.Context, ids []uuid.UUID) error {
	err := s.db.RunInTx(ctx, func(tx *db.DB) error {
		for _, id := range ids {
			// color_entries rows go with the group via ON DELETE CASCADE.
			if _, err := tx.Queries.DeleteColorGroup(ctx, id.String()); err != nil {
				return fmt.Errorf("delete group %s: %w", id, err)
			}
		}
		return nil
	})
	return store.Wrap("delete groups", err)
}

func (s *Store) ListEntries(ctx context.Context, groupID uuid.UUID) ([]models.ColorEntry, error) {
	if _, err := getGroup(ctx, s.db.Queries, groupID); err != nil {
		return nil, store.Wrap("list entries", err)
	}

	rows, err := s.db.Queries.ListColorEntries(ctx, groupID.String())
	if err != nil {
		return nil, store.Wrap("list entries", err)
	}
	entries, err := entriesFromDB(rows)
	return entries, store.Wrap("list entries", err)
}

func (s *Store) AppendEntries(ctx context.Context, groupID uuid.UUID, entries []models.ColorEntry) ([]models.ColorEntry, error) {
	var created []models.ColorEntry
	err := s.db.RunInTx(ctx, func(tx *db.DB) error {
		if _, err := getGroup(ctx, tx.Queries, groupID); err != nil {
			return err
		}

		count, err := tx.Queries.CountColorEntries(ctx, groupID.String())
		if err != nil {
			return fmt.Errorf("count entries: %w", err)
		}

		created = make([]models.ColorEntry, 0, len(entries))
		for i, entry := range entries {
			row, err := tx.Queries.CreateColorEntry(ctx, dbgen.CreateColorEntryParams{
				ID:        entry.ID.String(),
				GroupID:   groupID.String(),
				Name:      entry.Name,
				Value:     entry.Value,
				Position:  count + int64(i),
				CreatedAt: entry.CreatedAt,
			})
			if err != nil {
				return fmt.Errorf("insert entry %s: %w", entry.ID, err)
			}
			stored, err := entryFromDB(row)
			if err != nil {
				return err
			}
			created = append(created, stored)
		}
		return nil
	})
	if err != nil {
		return nil, store.Wrap("append entries", err)
	}
	return created, nil
}

func (s *Store) ReplaceEntries(ctx context.Context, groupID uuid.UUID, entries []models.ColorEntry) error {
	err := s.db.RunInTx(ctx, func(tx *db.DB) error {
		if _, err := getGroup(ctx, tx.Queries, groupID); err != nil {
			return err
		}

		existing, err := tx.Queries.ListColorEntries(ctx, groupID.String())
		if err != nil {
			return fmt.Errorf("list entries: %w", err)
		}

		inGroup := make(map[string]bool, len(existing))
		for _, row := range existing {
			inGroup[row.ID] = true
		}

		// Ids that are not already in this group are ignored.
		ordered := make([]string, 0, len(entries))
		keep := make(map[string]bool, len(entries))
		for _, entry := range entries {
			id := entry.ID.String()
			if !inGroup[id] || keep[id] {
				continue
			}
			keep[id] = true
			ordered = append(ordered, id)
		}

		for _, row := range existing {
			if keep[row.ID] {
				continue
			}
			if _, err := tx.Queries.DeleteColorEntry(ctx, row.ID); err != nil {
				return fmt.Errorf("delete entry %s: %w", row.ID, err)
			}
		}

		for i, id := range ordered {
			if err := tx.Queries.UpdateColorEntryPosition(ctx, dbgen.UpdateColorEntryPositionParams{
				Position: int64(i),
				ID:       id,
				GroupID:  groupID.String(),
			}); err != nil {
				return fmt.Errorf("reposition entry %s: %w", id, err)
			}
		}
		return nil
	})
	return store.Wrap("replace entries", err)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func getGroup(ctx context.Context, q *dbgen.Queries, id uuid.UUID) (models.ColorGroup, error) {
	row, err := q.GetColorGroup(ctx, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ColorGroup{}, fmt.Errorf("color group %s: %w", id, store.ErrNotFound)
		}
		return models.ColorGroup{}, err
	}
	return groupFromDB(row)
}

func groupFromDB(row dbgen.ColorGroup) (models.ColorGroup, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return models.ColorGroup{}, fmt.Errorf("color group id %q: %w", row.ID, err)
	}
	return models.ColorGroup{
		ID:        id,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}, nil
}

func entriesFromDB(rows []dbgen.ColorEntry) ([]models.ColorEntry, error) {
	entries := make([]models.ColorEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := entryFromDB(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func entryFromDB(row dbgen.ColorEntry) (models.ColorEntry, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return models.ColorEntry{}, fmt.Errorf("color entry id %q: %w", row.ID, err)
	}
	groupID, err := uuid.Parse(row.GroupID)
	if err != nil {
		return models.ColorEntry{}, fmt.Errorf("color entry group id %q: %w", row.GroupID, err)
	}
	return models.ColorEntry{
		ID:        id,
		GroupID:   groupID,
		Name:      row.Name,
		Value:     row.Value,
		Position:  int(row.Position),
		CreatedAt: row.CreatedAt,
	}, nil
}
