// internal/models/catalog.go
package models

import "fmt"

// Category is one kind of design token shown at the top of the catalog.
type Category struct {
	ID          int    `json:"id"`
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var categories = []Category{
	{ID: 0, Icon: "Color", Name: "Color", Description: "View color tokens"},
	{ID: 1, Icon: "Space", Name: "Space", Description: "View space tokens"},
	{ID: 2, Icon: "Size", Name: "Size", Description: "View size tokens"},
	{ID: 3, Icon: "Typography", Name: "Typography", Description: "View typography tokens"},
	{ID: 4, Icon: "Border", Name: "Border", Description: "View border tokens"},
	{ID: 5, Icon: "Shadow", Name: "Shadow", Description: "View shadow tokens"},
	{ID: 6, Icon: "Color", Name: "Duration", Description: "View duration tokens"},
}

// Catalog returns the token categories in display order. The slice is a copy.
func Catalog() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func CategoryByID(id int) (Category, error) {
	for _, category := range categories {
		if category.ID == id {
			return category, nil
		}
	}
	return Category{}, fmt.Errorf("unknown category %d", id)
}
