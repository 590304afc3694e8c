// Package redisstore implements store.Store on Redis.
//
// Layout, with the default prefix:
//
//	designtokens:groups                 list of group ids in creation order
//	designtokens:group:{id}             hash {name, created_at}
//	designtokens:group:{id}:entries     list of entry ids in display order
//	designtokens:entry:{id}             hash {group_id, name, value, created_at}
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/codr1/designtokens/internal/models"
	"github.com/codr1/designtokens/internal/store"
)

const defaultPrefix = "designtokens"

type Store struct {
	client *redis.Client
	prefix string
}

var _ store.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets the key prefix. Default is "designtokens".
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

func New(client *redis.Client, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) CreateGroup(ctx context.Context, group models.ColorGroup) (models.ColorGroup, error) {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.groupKey(group.ID), map[string]any{
			"name":       group.Name,
			"created_at": group.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
		pipe.RPush(ctx, s.groupsKey(), group.ID.String())
		return nil
	})
	if err != nil {
		return models.ColorGroup{}, store.Wrap("create group", fmt.Errorf("redis pipeline failed: %w", err))
	}
	return group, nil
}

func (s *Store) GetGroup(ctx context.Context, id uuid.UUID) (models.ColorGroup, error) {
	group, err := s.getGroup(ctx, id)
	return group, store.Wrap("get group", err)
}

func (s *Store) ListGroups(ctx context.Context) ([]models.ColorGroup, error) {
	ids, err := s.client.LRange(ctx, s.groupsKey(), 0, -1).Result()
	if err != nil {
		return nil, store.Wrap("list groups", fmt.Errorf("redis lrange failed: %w", err))
	}
	if len(ids) == 0 {
		return []models.ColorGroup{}, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, raw := range ids {
		cmds[i] = pipe.HGetAll(ctx, s.rawGroupKey(raw))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, store.Wrap("list groups", fmt.Errorf("redis pipeline failed: %w", err))
	}

	groups := make([]models.ColorGroup, 0, len(ids))
	for i, raw := range ids {
		fields := cmds[i].Val()
		if len(fields) == 0 {
			continue
		}
		group, err := groupFromHash(raw, fields)
		if err != nil {
			return nil, store.Wrap("list groups", err)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// DeleteGroups reads every group's entry list before writing anything, then
// removes the groups, their entries and their list slots in one MULTI/EXEC.
func (s *Store) DeleteGroups(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	reads := s.client.Pipeline()
	lists := make([]*redis.StringSliceCmd, len(ids))
	for i, id := range ids {
		lists[i] = reads.LRange(ctx, s.entriesKey(id), 0, -1)
	}
	if _, err := reads.Exec(ctx); err != nil {
		return store.Wrap("delete groups", fmt.Errorf("redis lrange failed: %w", err))
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			for _, entryID := range lists[i].Val() {
				pipe.Del(ctx, s.rawEntryKey(entryID))
			}
			pipe.Del(ctx, s.entriesKey(id), s.groupKey(id))
			pipe.LRem(ctx, s.groupsKey(), 0, id.String())
		}
		return nil
	})
	if err != nil {
		return store.Wrap("delete groups", fmt.Errorf("redis pipeline failed: %w", err))
	}
	return nil
}

func (s *Store) ListEntries(ctx context.Context, groupID uuid.UUID) ([]models.ColorEntry, error) {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return nil, store.Wrap("list entries", err)
	}

	ids, err := s.client.LRange(ctx, s.entriesKey(groupID), 0, -1).Result()
	if err != nil {
		return nil, store.Wrap("list entries", fmt.Errorf("redis lrange failed: %w", err))
	}
	if len(ids) == 0 {
		return []models.ColorEntry{}, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, raw := range ids {
		cmds[i] = pipe.HGetAll(ctx, s.rawEntryKey(raw))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, store.Wrap("list entries", fmt.Errorf("redis pipeline failed: %w", err))
	}

	entries := make([]models.ColorEntry, 0, len(ids))
	for i, raw := range ids {
		fields := cmds[i].Val()
		if len(fields) == 0 {
			continue
		}
		entry, err := entryFromHash(raw, fields)
		if err != nil {
			return nil, store.Wrap("list entries", err)
		}
		entry.Position = len(entries)
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Store) AppendEntries(ctx context.Context, groupID uuid.UUID, entries []models.ColorEntry) ([]models.ColorEntry, error) {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return nil, store.Wrap("append entries", err)
	}

	count, err := s.client.LLen(ctx, s.entriesKey(groupID)).Result()
	if err != nil {
		return nil, store.Wrap("append entries", fmt.Errorf("redis llen failed: %w", err))
	}

	created := make([]models.ColorEntry, len(entries))
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, entry := range entries {
			entry.GroupID = groupID
			entry.Position = int(count) + i
			created[i] = entry

			pipe.HSet(ctx, s.entryKey(entry.ID), map[string]any{
				"group_id":   groupID.String(),
				"name":       entry.Name,
				"value":      entry.Value,
				"created_at": entry.CreatedAt.UTC().Format(time.RFC3339Nano),
			})
			pipe.RPush(ctx, s.entriesKey(groupID), entry.ID.String())
		}
		return nil
	})
	if err != nil {
		return nil, store.Wrap("append entries", fmt.Errorf("redis pipeline failed: %w", err))
	}
	return created, nil
}

func (s *Store) ReplaceEntries(ctx context.Context, groupID uuid.UUID, entries []models.ColorEntry) error {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return store.Wrap("replace entries", err)
	}

	existing, err := s.client.LRange(ctx, s.entriesKey(groupID), 0, -1).Result()
	if err != nil {
		return store.Wrap("replace entries", fmt.Errorf("redis lrange failed: %w", err))
	}

	inGroup := make(map[string]bool, len(existing))
	for _, raw := range existing {
		inGroup[raw] = true
	}

	// Ids that are not already in this group are ignored.
	keep := make(map[string]bool, len(entries))
	ordered := make([]any, 0, len(entries))
	for _, entry := range entries {
		raw := entry.ID.String()
		if !inGroup[raw] || keep[raw] {
			continue
		}
		keep[raw] = true
		ordered = append(ordered, raw)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, raw := range existing {
			if !keep[raw] {
				pipe.Del(ctx, s.rawEntryKey(raw))
			}
		}
		pipe.Del(ctx, s.entriesKey(groupID))
		if len(ordered) > 0 {
			pipe.RPush(ctx, s.entriesKey(groupID), ordered...)
		}
		return nil
	})
	if err != nil {
		return store.Wrap("replace entries", fmt.Errorf("redis pipeline failed: %w", err))
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) getGroup(ctx context.Context, id uuid.UUID) (models.ColorGroup, error) {
	fields, err := s.client.HGetAll(ctx, s.groupKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.ColorGroup{}, fmt.Errorf("color group %s: %w", id, store.ErrNotFound)
		}
		return models.ColorGroup{}, fmt.Errorf("redis hgetall failed: %w", err)
	}
	if len(fields) == 0 {
		return models.ColorGroup{}, fmt.Errorf("color group %s: %w", id, store.ErrNotFound)
	}
	return groupFromHash(id.String(), fields)
}

func (s *Store) groupsKey() string {
	return s.prefix + ":groups"
}

func (s *Store) groupKey(id uuid.UUID) string {
	return s.rawGroupKey(id.String())
}

func (s *Store) rawGroupKey(id string) string {
	return s.prefix + ":group:" + id
}

func (s *Store) entriesKey(groupID uuid.UUID) string {
	return s.groupKey(groupID) + ":entries"
}

func (s *Store) entryKey(id uuid.UUID) string {
	return s.rawEntryKey(id.String())
}

func (s *Store) rawEntryKey(id string) string {
	return s.prefix + ":entry:" + id
}

func groupFromHash(rawID string, fields map[string]string) (models.ColorGroup, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return models.ColorGroup{}, fmt.Errorf("color group id %q: %w", rawID, err)
	}
	createdAt, err := parseTime(fields["created_at"])
	if err != nil {
		return models.ColorGroup{}, fmt.Errorf("color group %s created_at: %w", rawID, err)
	}
	return models.ColorGroup{
		ID:        id,
		Name:      fields["name"],
		CreatedAt: createdAt,
	}, nil
}

func entryFromHash(rawID string, fields map[string]string) (models.ColorEntry, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return models.ColorEntry{}, fmt.Errorf("color entry id %q: %w", rawID, err)
	}
	groupID, err := uuid.Parse(fields["group_id"])
	if err != nil {
		return models.ColorEntry{}, fmt.Errorf("color entry %s group_id: %w", rawID, err)
	}
	createdAt, err := parseTime(fields["created_at"])
	if err != nil {
		return models.ColorEntry{}, fmt.Errorf("color entry %s created_at: %w", rawID, err)
	}
	return models.ColorEntry{
		ID:        id,
		GroupID:   groupID,
		Name:      fields["name"],
		Value:     fields["value"],
		CreatedAt: createdAt,
	}, nil
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, raw)
}
