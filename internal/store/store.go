// Package store defines the durable collaborator behind color groups and
// their entries, with SQLite and Redis implementations in subpackages.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/codr1/designtokens/internal/models"
)

var ErrNotFound = errors.New("not found")

// StorageError reports a failed read or write against the backing store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Wrap returns err as a *StorageError for op. nil stays nil and ErrNotFound
// passes through untouched so callers can test for it directly.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// Store persists color groups and their ordered entries. Implementations are
// not required to be safe for concurrent mutation; callers serialize writes.
type Store interface {
	CreateGroup(ctx context.Context, group models.ColorGroup) (models.ColorGroup, error)
	GetGroup(ctx context.Context, id uuid.UUID) (models.ColorGroup, error)
	ListGroups(ctx context.Context) ([]models.ColorGroup, error)
	// DeleteGroups removes the groups and every entry they own. Unknown ids
	// are skipped.
	DeleteGroups(ctx context.Context, ids []uuid.UUID) error

	ListEntries(ctx context.Context, groupID uuid.UUID) ([]models.ColorEntry, error)
	// AppendEntries adds entries after the existing ones, assigning positions,
	// and returns them as stored.
	AppendEntries(ctx context.Context, groupID uuid.UUID, entries []models.ColorEntry) ([]models.ColorEntry, error)
	// ReplaceEntries makes entries the complete ordered list for the group.
	// Entries are matched by id; existing entries missing from the list are
	// deleted. Ids that are not already in the group are ignored, so it
	// never creates or moves entries across groups.
	ReplaceEntries(ctx context.Context, groupID uuid.UUID, entries []models.ColorEntry) error

	Close() error
}
