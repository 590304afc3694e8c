package palette

import (
	"github.com/google/uuid"

	"github.com/codr1/designtokens/internal/models"
)

type Group struct {
	models.ColorGroup
	IsSelected bool
}

type ColorListData struct {
	Group    models.ColorGroup
	Swatches []models.Swatch
}

func NewGroup(group models.ColorGroup, selectedID uuid.UUID) Group {
	return Group{
		ColorGroup: group,
		IsSelected: selectedID != uuid.Nil && group.ID == selectedID,
	}
}

func NewGroups(rows []models.ColorGroup, selectedID uuid.UUID) []Group {
	groups := make([]Group, len(rows))
	for i, row := range rows {
		groups[i] = NewGroup(row, selectedID)
	}
	return groups
}

func NewColorListData(group models.ColorGroup, entries []models.ColorEntry) ColorListData {
	return ColorListData{
		Group:    group,
		Swatches: models.NewSwatches(entries),
	}
}
