package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

// displayDate renders an article date as "Oct 26, 2025", or the raw string
// when it does not parse.
func displayDate(a news.Article) string {
	t, ok := a.Published()
	if !ok {
		return a.Date
	}
	return t.Format("Jan 2, 2006")
}

func renderCard(a news.Article, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	mark := "  "
	if a.Bookmarked {
		mark = bookmarkStyle.Render("★ ")
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> ") + mark + itemSelectedStyle.Render(truncateStr(a.Title, width-4))
	} else {
		title = "  " + mark + itemTitleStyle.Render(truncateStr(a.Title, width-4))
	}

	meta := "    " + itemSourceStyle.Render(a.Source) +
		itemTimeStyle.Render(" · ") + categoryBadgeStyle.Render(a.Category) +
		itemTimeStyle.Render(" · "+displayDate(a))
	if a.Bookmarked && a.BookmarkedOn != nil {
		meta += itemTimeStyle.Render(" · saved " + relativeTime(*a.BookmarkedOn))
	}

	snippet := "    " + snippetStyle.Render(truncateStr(a.Content, width-4))

	return title + "\n" + meta + "\n" + snippet
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// renderList draws the cards that fit in height, scrolled so the cursor
// stays visible. empty is shown when there is nothing to list.
func renderList(articles []news.Article, cursor, height, width int, empty string) string {
	if len(articles) == 0 {
		return lipglossCenter(emptyStyle.Render(empty), len(empty), width, height)
	}

	// Each card is 3 lines + 1 blank line
	itemHeight := 4
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(articles) {
		end = len(articles)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderCard(articles[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func lipglossCenter(s string, textWidth, width, height int) string {
	pad := (width - textWidth) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
