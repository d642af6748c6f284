package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

type profileRowKind int

const (
	rowName profileRowKind = iota
	rowCategory
	rowSource
	rowKeywords
)

type profileRow struct {
	kind  profileRowKind
	value string
}

// profileForm edits the preference record: name, category and source
// checkboxes, and a comma-separated keyword field.
type profileForm struct {
	name     textinput.Model
	keywords textinput.Model
	rows     []profileRow
	checked  map[profileRow]bool
	cursor   int
}

func newProfileForm(prefs news.Preferences, categories, sources []string) profileForm {
	name := newInput()
	name.Placeholder = news.DefaultName
	name.CharLimit = 80
	name.SetValue(prefs.Name)

	keywords := newInput()
	keywords.Placeholder = "e.g. solar, carbon capture"
	keywords.CharLimit = 200
	keywords.SetValue(prefs.KeywordText())

	f := profileForm{
		name:     name,
		keywords: keywords,
		checked:  make(map[profileRow]bool),
	}

	f.rows = append(f.rows, profileRow{kind: rowName})
	for _, c := range union(categories, prefs.PreferredCategories) {
		r := profileRow{kind: rowCategory, value: c}
		f.rows = append(f.rows, r)
		f.checked[r] = prefs.HasCategory(c)
	}
	for _, s := range union(sources, prefs.PreferredSources) {
		r := profileRow{kind: rowSource, value: s}
		f.rows = append(f.rows, r)
		f.checked[r] = prefs.HasSource(s)
	}
	f.rows = append(f.rows, profileRow{kind: rowKeywords})

	f.focus()
	return f
}

// union keeps preferred values that no longer appear in the article list so
// saving the form does not silently drop them.
func union(options, preferred []string) []string {
	out := slices.Clone(options)
	for _, p := range preferred {
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

func (f *profileForm) current() profileRow {
	return f.rows[f.cursor]
}

func (f *profileForm) focus() {
	f.name.Blur()
	f.keywords.Blur()
	switch f.current().kind {
	case rowName:
		f.name.Focus()
	case rowKeywords:
		f.keywords.Focus()
	}
}

func (f *profileForm) move(delta int) {
	f.cursor = (f.cursor + delta + len(f.rows)) % len(f.rows)
	f.focus()
}

// Preferences builds the record the form currently describes.
func (f *profileForm) Preferences() news.Preferences {
	var categories, sources []string
	for _, r := range f.rows {
		if !f.checked[r] {
			continue
		}
		switch r.kind {
		case rowCategory:
			categories = append(categories, r.value)
		case rowSource:
			sources = append(sources, r.value)
		}
	}
	return news.PreferencesFromForm(strings.TrimSpace(f.name.Value()), categories, sources, f.keywords.Value())
}

// update handles a key. submit is true when the form was saved; cancel when
// it was dismissed.
func (f *profileForm) update(msg tea.KeyMsg) (cmd tea.Cmd, submit, cancel bool) {
	switch msg.String() {
	case "esc":
		return nil, false, true
	case "ctrl+s":
		return nil, true, false
	case "enter":
		if f.current().kind == rowKeywords {
			return nil, true, false
		}
		f.move(1)
		return nil, false, false
	case "tab", "down":
		f.move(1)
		return nil, false, false
	case "shift+tab", "up":
		f.move(-1)
		return nil, false, false
	case " ":
		if r := f.current(); r.kind == rowCategory || r.kind == rowSource {
			f.checked[r] = !f.checked[r]
			return nil, false, false
		}
	}

	switch f.current().kind {
	case rowName:
		f.name, cmd = f.name.Update(msg)
	case rowKeywords:
		f.keywords, cmd = f.keywords.Update(msg)
	}
	return cmd, false, false
}

func (f *profileForm) view(width, height int) string {
	var lines []string
	lines = append(lines, formFocusStyle.Render("Your Profile"), "")

	label := func(i int, s string) string {
		if i == f.cursor {
			return formFocusStyle.Render("> " + s)
		}
		return formLabelStyle.Render("  " + s)
	}

	section := rowName
	for i, r := range f.rows {
		if r.kind != section && (r.kind == rowCategory || r.kind == rowSource || r.kind == rowKeywords) {
			section = r.kind
			lines = append(lines, "")
			switch r.kind {
			case rowCategory:
				lines = append(lines, helpDimStyle.Render("Preferred categories"))
			case rowSource:
				lines = append(lines, helpDimStyle.Render("Preferred sources"))
			}
		}
		switch r.kind {
		case rowName:
			lines = append(lines, label(i, "Name      ")+" "+f.name.View())
		case rowCategory, rowSource:
			box := "[ ]"
			if f.checked[r] {
				box = "[x]"
			}
			lines = append(lines, label(i, box+" "+r.value))
		case rowKeywords:
			lines = append(lines, label(i, "Keywords  ")+" "+f.keywords.View())
		}
	}

	lines = append(lines, "", helpDimStyle.Render("tab/↑↓ move  space toggle  ctrl+s save  esc cancel"))
	card := formCardStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
