// Hand-maintained in sqlc's output layout; keep in step with internal/db/queries.

package dbgen

import (
	"context"
)

type Querier interface {
	CountColorEntries(ctx context.Context, groupID string) (int64, error)
	CreateColorEntry(ctx context.Context, arg CreateColorEntryParams) (ColorEntry, error)
	CreateColorGroup(ctx context.Context, arg CreateColorGroupParams) (ColorGroup, error)
	DeleteColorEntry(ctx context.Context, id string) (int64, error)
	DeleteColorGroup(ctx context.Context, id string) (int64, error)
	GetColorGroup(ctx context.Context, id string) (ColorGroup, error)
	ListColorEntries(ctx context.Context, groupID string) ([]ColorEntry, error)
	ListColorGroups(ctx context.Context) ([]ColorGroup, error)
	UpdateColorEntryPosition(ctx context.Context, arg UpdateColorEntryPositionParams) error
}

var _ Querier = (*Queries)(nil)
