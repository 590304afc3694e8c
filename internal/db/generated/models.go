// Hand-maintained in sqlc's output layout; keep in step with internal/db/queries.

package dbgen

import (
	"time"
)

type ColorEntry struct {
	ID        string
	GroupID   string
	Name      string
	Value     string
	Position  int64
	CreatedAt time.Time
}

type ColorGroup struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
