// internal/models/colors.go
package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxGroupNameLength = 100
const maxEntryNameLength = 100

// ColorGroup is a user-defined bucket of color entries.
type ColorGroup struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ColorEntry is a named color. Value holds whatever text the user supplied;
// it is only interpreted when rendered.
type ColorEntry struct {
	ID        uuid.UUID `json:"id"`
	GroupID   uuid.UUID `json:"groupId"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewColorGroup(name string) (ColorGroup, error) {
	name = strings.TrimSpace(name)
	if err := ValidateGroupName(name); err != nil {
		return ColorGroup{}, err
	}
	return ColorGroup{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func NewColorEntry(groupID uuid.UUID, name, value string) (ColorEntry, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > maxEntryNameLength {
		return ColorEntry{}, fmt.Errorf("name must be %d characters or fewer", maxEntryNameLength)
	}
	return ColorEntry{
		ID:        uuid.New(),
		GroupID:   groupID,
		Name:      name,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func ValidateGroupName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("name is required")
	}
	if trimmed != name {
		return fmt.Errorf("name must not have leading or trailing whitespace")
	}
	if utf8.RuneCountInString(trimmed) > maxGroupNameLength {
		return fmt.Errorf("name must be %d characters or fewer", maxGroupNameLength)
	}
	return nil
}
