package models

import "testing"

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	want := []string{"Color", "Space", "Size", "Typography", "Border", "Shadow", "Duration"}
	if len(catalog) != len(want) {
		t.Fatalf("Catalog() length = %d, want %d", len(catalog), len(want))
	}

	seen := map[int]bool{}
	for i, category := range catalog {
		if category.Name != want[i] {
			t.Fatalf("Catalog()[%d].Name = %q, want %q", i, category.Name, want[i])
		}
		if seen[category.ID] {
			t.Fatalf("duplicate category id %d", category.ID)
		}
		seen[category.ID] = true
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0].Name = "Changed"

	if got := Catalog()[0].Name; got != "Color" {
		t.Fatalf("catalog mutated through returned slice: %q", got)
	}
}

func TestCategoryByID(t *testing.T) {
	category, err := CategoryByID(3)
	if err != nil {
		t.Fatalf("CategoryByID(3) error = %v", err)
	}
	if category.Name != "Typography" {
		t.Fatalf("CategoryByID(3).Name = %q", category.Name)
	}

	if _, err := CategoryByID(99); err == nil {
		t.Fatalf("CategoryByID(99) expected error")
	}
}
