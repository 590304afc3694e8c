// Package palette manages color groups and the named colors inside them.
package palette

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/codr1/designtokens/internal/hexcolor"
	"github.com/codr1/designtokens/internal/metrics"
	"github.com/codr1/designtokens/internal/models"
	"github.com/codr1/designtokens/internal/store"
)

var (
	ErrInvalidName        = errors.New("invalid name")
	ErrPositionOutOfRange = errors.New("position out of range")
)

// Service applies palette operations to a store. Mutations are serialized so
// a process never has two writers on the same store.
type Service struct {
	mu    sync.Mutex
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) CreateGroup(ctx context.Context, name string) (group models.ColorGroup, err error) {
	defer observe("create_group", time.Now(), &err)

	group, err = models.NewColorGroup(name)
	if err != nil {
		return models.ColorGroup{}, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.store.CreateGroup(ctx, group)
	if err != nil {
		return models.ColorGroup{}, err
	}
	log.Ctx(ctx).Debug().Str("group_id", created.ID.String()).Str("name", created.Name).Msg("Color group created")
	return created, nil
}

func (s *Service) GetGroup(ctx context.Context, id uuid.UUID) (group models.ColorGroup, err error) {
	defer observe("get_group", time.Now(), &err)
	return s.store.GetGroup(ctx, id)
}

func (s *Service) ListGroups(ctx context.Context) (groups []models.ColorGroup, err error) {
	defer observe("list_groups", time.Now(), &err)
	return s.store.ListGroups(ctx)
}

// DeleteGroups removes the groups and all of their colors. Unknown ids are
// ignored.
func (s *Service) DeleteGroups(ctx context.Context, ids []uuid.UUID) (err error) {
	defer observe("delete_groups", time.Now(), &err)
	if len(ids) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteGroups(ctx, ids); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().Int("count", len(ids)).Msg("Color groups deleted")
	return nil
}

func (s *Service) ListColors(ctx context.Context, groupID uuid.UUID) (entries []models.ColorEntry, err error) {
	defer observe("list_colors", time.Now(), &err)
	return s.store.ListEntries(ctx, groupID)
}

// AddColor appends one named color after checking hex with the strict
// decoder. Invalid hex returns an error wrapping
// hexcolor.ErrInvalidColorFormat and leaves the group unchanged.
func (s *Service) AddColor(ctx context.Context, groupID uuid.UUID, name, hex string) (entry models.ColorEntry, err error) {
	defer observe("add_color", time.Now(), &err)

	hex = strings.TrimSpace(hex)
	if _, err := hexcolor.DecodeStrict(hex); err != nil {
		metrics.ColorsRejectedTotal.WithLabelValues("invalid_hex").Inc()
		return models.ColorEntry{}, err
	}

	entry, err = models.NewColorEntry(groupID, name, hex)
	if err != nil {
		return models.ColorEntry{}, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.store.AppendEntries(ctx, groupID, []models.ColorEntry{entry})
	if err != nil {
		return models.ColorEntry{}, err
	}
	return created[0], nil
}

// ImportColors appends every color in payload (see ParseImport). A payload
// that cannot be parsed yields an empty slice and a *ParseError; the group is
// not touched.
func (s *Service) ImportColors(ctx context.Context, groupID uuid.UUID, payload string) (entries []models.ColorEntry, err error) {
	defer observe("import_colors", time.Now(), &err)

	items, err := ParseImport(payload)
	if err != nil {
		metrics.ColorsRejectedTotal.WithLabelValues("parse_error").Inc()
		return []models.ColorEntry{}, err
	}

	entries = make([]models.ColorEntry, 0, len(items))
	for i, item := range items {
		entry, err := models.NewColorEntry(groupID, item.Name, item.Value)
		if err != nil {
			return []models.ColorEntry{}, &ParseError{Err: fmt.Errorf("item %d: %w", i, err)}
		}
		entries = append(entries, entry)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(entries) == 0 {
		// Nothing to write, but an unknown group is still an error.
		if _, err := s.store.GetGroup(ctx, groupID); err != nil {
			return []models.ColorEntry{}, err
		}
		return entries, nil
	}

	created, err := s.store.AppendEntries(ctx, groupID, entries)
	if err != nil {
		return []models.ColorEntry{}, err
	}
	metrics.ColorsImportedTotal.Add(float64(len(created)))
	log.Ctx(ctx).Debug().Str("group_id", groupID.String()).Int("count", len(created)).Msg("Colors imported")
	return created, nil
}

// RemoveColors deletes the colors at positions and returns the remaining
// list. Other colors keep their relative order.
func (s *Service) RemoveColors(ctx context.Context, groupID uuid.UUID, positions []int) (entries []models.ColorEntry, err error) {
	defer observe("remove_colors", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.ListEntries(ctx, groupID)
	if err != nil {
		return nil, err
	}
	next, err := RemovePositions(current, positions)
	if err != nil {
		return nil, err
	}
	if err := s.store.ReplaceEntries(ctx, groupID, next); err != nil {
		return nil, err
	}
	return renumber(next), nil
}

// MoveColors moves the colors at from so they sit before the color that was
// at position to, and returns the new list.
func (s *Service) MoveColors(ctx context.Context, groupID uuid.UUID, from []int, to int) (entries []models.ColorEntry, err error) {
	defer observe("move_colors", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.ListEntries(ctx, groupID)
	if err != nil {
		return nil, err
	}
	next, err := MovePositions(current, from, to)
	if err != nil {
		return nil, err
	}
	if err := s.store.ReplaceEntries(ctx, groupID, next); err != nil {
		return nil, err
	}
	return renumber(next), nil
}

// RemovePositions returns list without the elements at positions. Duplicate
// positions are ignored; any position outside the list is an error.
func RemovePositions[T any](list []T, positions []int) ([]T, error) {
	drop, err := positionSet(len(list), positions)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(list)-len(drop))
	for i, item := range list {
		if !drop[i] {
			out = append(out, item)
		}
	}
	return out, nil
}

// MovePositions moves the elements at from, keeping their relative order, to
// just before the element that was at index to. to may equal len(list) to
// move them to the end.
func MovePositions[T any](list []T, from []int, to int) ([]T, error) {
	if to < 0 || to > len(list) {
		return nil, fmt.Errorf("%w: destination %d not in [0, %d]", ErrPositionOutOfRange, to, len(list))
	}
	moving, err := positionSet(len(list), from)
	if err != nil {
		return nil, err
	}

	moved := make([]T, 0, len(moving))
	rest := make([]T, 0, len(list)-len(moving))
	insertAt := to
	for i, item := range list {
		if moving[i] {
			moved = append(moved, item)
			if i < to {
				insertAt--
			}
			continue
		}
		rest = append(rest, item)
	}

	out := make([]T, 0, len(list))
	out = append(out, rest[:insertAt]...)
	out = append(out, moved...)
	out = append(out, rest[insertAt:]...)
	return out, nil
}

func positionSet(length int, positions []int) (map[int]bool, error) {
	set := make(map[int]bool, len(positions))
	for _, position := range positions {
		if position < 0 || position >= length {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrPositionOutOfRange, position, length)
		}
		set[position] = true
	}
	return set, nil
}

func renumber(entries []models.ColorEntry) []models.ColorEntry {
	for i := range entries {
		entries[i].Position = i
	}
	return entries
}

func observe(operation string, start time.Time, err *error) {
	metrics.ObserveStore(operation, start, *err)
}
