package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codr1/designtokens/internal/models"
)

const swatchWidth = 12

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))
)

// swatchBlock paints the swatch's color behind its label. Alpha is dropped;
// terminals have no notion of it.
func swatchBlock(swatch models.Swatch, label string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(swatch.Color.Colorful().Clamped().Hex())).
		Foreground(lipgloss.Color(swatch.TextColor)).
		Width(swatchWidth).
		Align(lipgloss.Center).
		Render(label)
}

func printSwatches(w io.Writer, swatches []models.Swatch) {
	if len(swatches) == 0 {
		fmt.Fprintln(w, dimStyle.Render("no colors"))
		return
	}
	for _, swatch := range swatches {
		name := swatch.Entry.Name
		if name == "" {
			name = dimStyle.Render("(unnamed)")
		}
		fmt.Fprintf(w, "%3d %s %-10s %s\n", swatch.Entry.Position, swatchBlock(swatch, swatch.Hex), swatch.Entry.Value, name)
	}
}

func printGroups(w io.Writer, groups []models.ColorGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, dimStyle.Render("no color groups"))
		return
	}
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-36s  %s", "ID", "NAME")))
	for _, group := range groups {
		fmt.Fprintf(w, "%-36s  %s\n", group.ID, group.Name)
	}
}

func printCategories(w io.Writer, categories []models.Category) {
	for _, category := range categories {
		fmt.Fprintf(w, "%d  %s  %s\n", category.ID, headerStyle.Render(fmt.Sprintf("%-10s", category.Name)), dimStyle.Render(category.Description))
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = fmt.Sprint(value)
	}
	return strings.Join(parts, ",")
}
