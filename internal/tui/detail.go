package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

// detailLines lays out the article detail view at the given width, one
// entry per terminal row.
func detailLines(a news.Article, width int) []string {
	contentWidth := width - 4
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := a.Title
	if a.Bookmarked {
		title = "★ " + title
	}
	header := detailTitleStyle.Width(contentWidth).Render(title)
	meta := detailMetaStyle.Render(fmt.Sprintf("By %s | %s", a.Source, displayDate(a)) +
		"  " + categoryBadgeStyle.Render(a.Category))

	body := a.Content
	if body == "" {
		body = "(No content available)"
	}
	bodyBlock := detailBodyStyle.Width(contentWidth).Render(wrapText(body, contentWidth))

	parts := []string{header, meta, bodyBlock}
	if u := a.URL(); u != "" {
		parts = append(parts, detailLinkStyle.Width(contentWidth).Render("Read more: "+u))
	}
	content := lipgloss.NewStyle().PaddingLeft(2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return strings.Split(content, "\n")
}

// maxDetailScroll is the furthest the detail view scrolls before the last
// line reaches the bottom of a height-row viewport.
func maxDetailScroll(a news.Article, width, height int) int {
	return max(0, len(detailLines(a, width))-max(height, 1))
}

// renderDetail draws exactly height rows (at least one) of the article,
// starting scroll rows down.
func renderDetail(a news.Article, width, height, scroll int) string {
	height = max(height, 1)
	lines := detailLines(a, width)
	scroll = min(max(scroll, 0), max(0, len(lines)-height))
	lines = lines[scroll:]

	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
