// Package storetest holds behavior checks shared by every store.Store
// implementation.
package storetest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codr1/designtokens/internal/models"
	"github.com/codr1/designtokens/internal/store"
)

// Run exercises s against the store.Store contract. newStore must return an
// empty store each time it is called.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("CreateAndListGroupsInCreationOrder", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		names := []string{"Primary", "Greens", "Text"}
		for _, name := range names {
			group := mustGroup(t, name)
			created, err := s.CreateGroup(ctx, group)
			require.NoError(t, err)
			assert.Equal(t, group.ID, created.ID)
		}

		groups, err := s.ListGroups(ctx)
		require.NoError(t, err)
		require.Len(t, groups, len(names))
		for i, name := range names {
			assert.Equal(t, name, groups[i].Name)
		}
	})

	t.Run("GetGroupNotFound", func(t *testing.T) {
		s := newStore(t)

		_, err := s.GetGroup(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("AppendEntriesAssignsPositions", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		group := createGroup(t, s, "Blues")

		first, err := s.AppendEntries(ctx, group.ID, mustEntries(t, group.ID, "#0000FF", "#000080"))
		require.NoError(t, err)
		require.Len(t, first, 2)
		assert.Equal(t, 0, first[0].Position)
		assert.Equal(t, 1, first[1].Position)

		second, err := s.AppendEntries(ctx, group.ID, mustEntries(t, group.ID, "not a color"))
		require.NoError(t, err)
		require.Len(t, second, 1)
		assert.Equal(t, 2, second[0].Position)

		entries, err := s.ListEntries(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"#0000FF", "#000080", "not a color"}, values(entries))
		for i, entry := range entries {
			assert.Equal(t, i, entry.Position)
			assert.Equal(t, group.ID, entry.GroupID)
		}
	})

	t.Run("AppendEntriesUnknownGroup", func(t *testing.T) {
		s := newStore(t)

		_, err := s.AppendEntries(context.Background(), uuid.New(), mustEntries(t, uuid.Nil, "#FFFFFF"))
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("ReplaceEntriesReordersAndDeletes", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		group := createGroup(t, s, "Reds")

		created, err := s.AppendEntries(ctx, group.ID, mustEntries(t, group.ID, "a", "b", "c", "d"))
		require.NoError(t, err)

		next := []models.ColorEntry{created[3], created[0], created[2]}
		require.NoError(t, s.ReplaceEntries(ctx, group.ID, next))

		entries, err := s.ListEntries(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"d", "a", "c"}, values(entries))
		for i, entry := range entries {
			assert.Equal(t, i, entry.Position)
		}
	})

	t.Run("ReplaceEntriesIgnoresOtherGroupsEntries", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		mine := createGroup(t, s, "Mine")
		other := createGroup(t, s, "Other")

		own, err := s.AppendEntries(ctx, mine.ID, mustEntries(t, mine.ID, "a", "b"))
		require.NoError(t, err)
		foreign, err := s.AppendEntries(ctx, other.ID, mustEntries(t, other.ID, "x", "y"))
		require.NoError(t, err)

		next := []models.ColorEntry{foreign[1], own[1], own[0]}
		require.NoError(t, s.ReplaceEntries(ctx, mine.ID, next))

		entries, err := s.ListEntries(ctx, mine.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, values(entries))
		assert.Equal(t, 0, entries[0].Position)
		assert.Equal(t, 1, entries[1].Position)

		entries, err = s.ListEntries(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, values(entries))
		assert.Equal(t, 0, entries[0].Position)
		assert.Equal(t, 1, entries[1].Position)
	})

	t.Run("DeleteGroupsCascadesToEntries", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		doomed := createGroup(t, s, "Doomed")
		kept := createGroup(t, s, "Kept")

		_, err := s.AppendEntries(ctx, doomed.ID, mustEntries(t, doomed.ID, "#111111", "#222222"))
		require.NoError(t, err)
		_, err = s.AppendEntries(ctx, kept.ID, mustEntries(t, kept.ID, "#333333"))
		require.NoError(t, err)

		require.NoError(t, s.DeleteGroups(ctx, []uuid.UUID{doomed.ID, uuid.New()}))

		groups, err := s.ListGroups(ctx)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, kept.ID, groups[0].ID)

		_, err = s.ListEntries(ctx, doomed.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)

		entries, err := s.ListEntries(ctx, kept.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"#333333"}, values(entries))

		// Recreating a group with the same id must not resurrect old entries.
		_, err = s.CreateGroup(ctx, models.ColorGroup{ID: doomed.ID, Name: "Doomed", CreatedAt: doomed.CreatedAt})
		require.NoError(t, err)
		entries, err = s.ListEntries(ctx, doomed.ID)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func mustGroup(t *testing.T, name string) models.ColorGroup {
	t.Helper()

	group, err := models.NewColorGroup(name)
	require.NoError(t, err)
	return group
}

func createGroup(t *testing.T, s store.Store, name string) models.ColorGroup {
	t.Helper()

	group, err := s.CreateGroup(context.Background(), mustGroup(t, name))
	require.NoError(t, err)
	return group
}

func mustEntries(t *testing.T, groupID uuid.UUID, values ...string) []models.ColorEntry {
	t.Helper()

	entries := make([]models.ColorEntry, 0, len(values))
	for _, value := range values {
		entry, err := models.NewColorEntry(groupID, "", value)
		require.NoError(t, err)
		entries = append(entries, entry)
	}
	return entries
}

func values(entries []models.ColorEntry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Value
	}
	return out
}
