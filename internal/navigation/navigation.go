// Package navigation tracks the catalog drill-down: categories, then the
// color groups of a category, then the colors of a group.
package navigation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/codr1/designtokens/internal/models"
)

var ErrInvalidTransition = errors.New("invalid navigation transition")

type Level int

const (
	LevelCatalog Level = iota
	LevelGroupList
	LevelEntryList
)

func (l Level) String() string {
	switch l {
	case LevelCatalog:
		return "catalog"
	case LevelGroupList:
		return "groups"
	case LevelEntryList:
		return "entries"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Loader fetches the data shown at each level. palette.Service satisfies it.
type Loader interface {
	ListGroups(ctx context.Context) ([]models.ColorGroup, error)
	GetGroup(ctx context.Context, id uuid.UUID) (models.ColorGroup, error)
	ListColors(ctx context.Context, groupID uuid.UUID) ([]models.ColorEntry, error)
}

// Frame is one level of the navigation stack with the data loaded for it.
type Frame struct {
	Level      Level
	Categories []models.Category
	Category   models.Category
	Groups     []models.ColorGroup
	Group      models.ColorGroup
	Entries    []models.ColorEntry
}

// Navigator is a stack of frames. Going back pops a frame and shows the data
// it was loaded with; nothing is fetched again until Refresh.
type Navigator struct {
	loader Loader
	stack  []Frame
}

func New(loader Loader) *Navigator {
	return &Navigator{
		loader: loader,
		stack: []Frame{{
			Level:      LevelCatalog,
			Categories: models.Catalog(),
		}},
	}
}

func (n *Navigator) Current() Frame {
	return n.stack[len(n.stack)-1]
}

func (n *Navigator) Depth() int {
	return len(n.stack)
}

// SelectCategory drills from the catalog into the groups of a category.
func (n *Navigator) SelectCategory(ctx context.Context, categoryID int) (Frame, error) {
	if n.Current().Level != LevelCatalog {
		return Frame{}, fmt.Errorf("%w: select category from %s", ErrInvalidTransition, n.Current().Level)
	}

	category, err := models.CategoryByID(categoryID)
	if err != nil {
		return Frame{}, err
	}
	groups, err := n.loader.ListGroups(ctx)
	if err != nil {
		return Frame{}, fmt.Errorf("load groups: %w", err)
	}

	frame := Frame{Level: LevelGroupList, Category: category, Groups: groups}
	n.stack = append(n.stack, frame)
	return frame, nil
}

// SelectGroup drills from a group list into the colors of one group.
func (n *Navigator) SelectGroup(ctx context.Context, groupID uuid.UUID) (Frame, error) {
	current := n.Current()
	if current.Level != LevelGroupList {
		return Frame{}, fmt.Errorf("%w: select group from %s", ErrInvalidTransition, current.Level)
	}

	group, err := n.loader.GetGroup(ctx, groupID)
	if err != nil {
		return Frame{}, fmt.Errorf("load group: %w", err)
	}
	entries, err := n.loader.ListColors(ctx, groupID)
	if err != nil {
		return Frame{}, fmt.Errorf("load colors: %w", err)
	}

	frame := Frame{Level: LevelEntryList, Category: current.Category, Group: group, Entries: entries}
	n.stack = append(n.stack, frame)
	return frame, nil
}

// Back returns to the previous level. At the catalog it does nothing.
func (n *Navigator) Back() Frame {
	if len(n.stack) > 1 {
		n.stack = n.stack[:len(n.stack)-1]
	}
	return n.Current()
}

// Refresh reloads the data of the current level, for use after a mutation.
func (n *Navigator) Refresh(ctx context.Context) (Frame, error) {
	frame := n.Current()
	switch frame.Level {
	case LevelCatalog:
		frame.Categories = models.Catalog()
	case LevelGroupList:
		groups, err := n.loader.ListGroups(ctx)
		if err != nil {
			return Frame{}, fmt.Errorf("load groups: %w", err)
		}
		frame.Groups = groups
	case LevelEntryList:
		entries, err := n.loader.ListColors(ctx, frame.Group.ID)
		if err != nil {
			return Frame{}, fmt.Errorf("load colors: %w", err)
		}
		frame.Entries = entries
	}
	n.stack[len(n.stack)-1] = frame
	return frame, nil
}
