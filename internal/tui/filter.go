package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/dashboard"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

type chipKind int

const (
	chipCategory chipKind = iota
	chipSource
)

type chip struct {
	kind  chipKind
	value string
}

// filterBar shows the All News category and source chips. Which chips are
// on comes from the dashboard filter; the bar only tracks the cursor.
type filterBar struct {
	chips      []chip
	filterMode bool
	cursor     int
}

func newFilterBar(categories, sources []string) filterBar {
	var chips []chip
	for _, c := range categories {
		chips = append(chips, chip{kind: chipCategory, value: c})
	}
	for _, s := range sources {
		chips = append(chips, chip{kind: chipSource, value: s})
	}
	return filterBar{chips: chips}
}

func (f *filterBar) move(delta int) {
	f.cursor += delta
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.cursor > len(f.chips)-1 {
		f.cursor = max(0, len(f.chips)-1)
	}
}

// toggleAction returns the action for the chip at i, or nil when i is out
// of range.
func (f *filterBar) toggleAction(i int) dashboard.Action {
	if i < 0 || i >= len(f.chips) {
		return nil
	}
	c := f.chips[i]
	if c.kind == chipCategory {
		return dashboard.ToggleCategory{Category: c.value}
	}
	return dashboard.ToggleSource{Source: c.value}
}

func isOn(c chip, filter news.Filter) bool {
	if c.kind == chipCategory {
		return slices.Contains(filter.Categories, c.value)
	}
	return slices.Contains(filter.Sources, c.value)
}

func activeLabel(filter news.Filter) string {
	var parts []string
	parts = append(parts, filter.Categories...)
	parts = append(parts, filter.Sources...)
	if filter.Date != "" {
		parts = append(parts, filter.Date)
	}
	if filter.Search != "" {
		parts = append(parts, "\""+filter.Search+"\"")
	}
	if len(parts) == 0 {
		return "All"
	}
	return strings.Join(parts, ", ")
}

func (f *filterBar) render(filter news.Filter, width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string

	if filter.IsZero() {
		parts = append(parts, tabActiveStyle.Render("All"))
	} else {
		parts = append(parts, tabInactiveStyle.Render("All"))
	}

	for i, c := range f.chips {
		style := tabInactiveStyle
		if isOn(c, filter) {
			style = tabActiveStyle
		}
		label := c.value
		if f.filterMode && i == f.cursor {
			label = "[" + label + "]"
		}
		parts = append(parts, style.Render(label))
	}
	if filter.Date != "" {
		parts = append(parts, tabActiveStyle.Render("date "+filter.Date))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
