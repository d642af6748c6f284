package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/config"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/dashboard"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

func visibleIDs(e *testEnv) []int {
	out := []int{}
	for _, a := range e.app.dashboard.visible() {
		out = append(out, a.ID)
	}
	return out
}

func TestTabsCycle(t *testing.T) {
	e := newTestEnv(t, nil, true)
	require.Equal(t, dashboard.TabForYou, e.app.dashboard.state.Tab)
	assert.Equal(t, []int{1, 3, 5, 7}, visibleIDs(e))

	e.press("tab")
	assert.Equal(t, dashboard.TabAllNews, e.app.dashboard.state.Tab)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, visibleIDs(e))

	e.press("tab")
	assert.Equal(t, dashboard.TabBookmarks, e.app.dashboard.state.Tab)
	assert.Equal(t, []int{2, 5}, visibleIDs(e))

	e.press("shift+tab", "shift+tab")
	assert.Equal(t, dashboard.TabForYou, e.app.dashboard.state.Tab)
}

func TestAllNewsPaging(t *testing.T) {
	e := newTestEnv(t, nil, true)
	e.press("tab", "n")
	assert.Equal(t, []int{7, 8}, visibleIDs(e))
	assert.Contains(t, e.app.View(), "Next ›")

	e.press("n")
	assert.Equal(t, 2, e.app.dashboard.state.Page, "next is disabled on the last page")

	e.press("1")
	assert.Equal(t, 1, e.app.dashboard.state.Page)
	e.press("9")
	assert.Equal(t, 1, e.app.dashboard.state.Page, "out of range page is ignored")
}

func TestBookmarkToastExpires(t *testing.T) {
	e := newTestEnv(t, nil, true)
	e.press("tab", "n") // page 2: articles 7, 8

	_, cmd := e.app.Update(key("b"))
	d := e.app.dashboard
	require.NotNil(t, cmd)
	assert.Equal(t, dashboard.ToastBookmarked, d.state.Toast)
	assert.True(t, d.state.Articles[6].Bookmarked)
	assert.Contains(t, e.app.View(), "Article bookmarked!")

	// A stale timer leaves the toast alone.
	e.app.Update(toastExpiredMsg{seq: d.toastSeq - 1})
	assert.Equal(t, dashboard.ToastBookmarked, e.app.dashboard.state.Toast)

	e.app.Update(toastExpiredMsg{seq: d.toastSeq})
	assert.Empty(t, e.app.dashboard.state.Toast)
}

func TestBookmarksSessionOnlyByDefault(t *testing.T) {
	e := newTestEnv(t, nil, true)
	e.press("tab", "b") // bookmark article 1

	require.True(t, e.app.dashboard.state.Articles[0].Bookmarked)
	stored, err := e.db.Articles()
	require.NoError(t, err)
	assert.False(t, stored[0].Bookmarked)
}

func TestBookmarksPersistWhenEnabled(t *testing.T) {
	e := newTestEnv(t, &config.Config{PersistBookmarks: true}, true)
	e.press("tab", "b")

	stored, err := e.db.Articles()
	require.NoError(t, err)
	assert.True(t, stored[0].Bookmarked)
	assert.NotNil(t, stored[0].BookmarkedOn)
}

func TestUnbookmarkOnBookmarksTabClampsCursor(t *testing.T) {
	e := newTestEnv(t, nil, true)
	e.press("tab", "tab", "j")
	require.Equal(t, 1, e.app.dashboard.cursor)

	e.press("b") // removes article 5
	assert.Equal(t, []int{2}, visibleIDs(e))
	assert.Equal(t, 0, e.app.dashboard.cursor)
}

func TestSearchFiltersLiveAndResetsPage(t *testing.T) {
	e := newTestEnv(t, nil, true)
	e.press("tab", "n")
	require.Equal(t, 2, e.app.dashboard.state.Page)

	e.press("/")
	e.typeText("climate")
	d := e.app.dashboard
	assert.Equal(t, "climate", d.state.Filter.Search)
	assert.Equal(t, 1, d.state.Page)
	assert.Equal(t, []int{2, 8}, visibleIDs(e))

	e.press("esc")
	assert.Empty(t, e.app.dashboard.state.Filter.Search)
	assert.Len(t, visibleIDs(e), 6)
}

func TestBookmarkSearch(t *testing.T) {
	e := newTestEnv(t, nil, true)
	e.press("tab", "tab", "/")
	e.typeText("wind")
	assert.Equal(t, "wind", e.app.dashboard.state.BookmarkSearch)
	assert.Equal(t, []int{5}, visibleIDs(e))
}

func TestFilterChips(t *testing.T) {
	e := newTestEnv(t, nil, true)
	e.press("f")
	require.Equal(t, modeFilter, e.app.dashboard.mode)

	// Chips: Energy, Policy, Tech, then sources.
	e.press("2")
	assert.Equal(t, []string{"Policy"}, e.app.dashboard.state.Filter.Categories)
	assert.Equal(t, []int{2, 4, 6, 8}, visibleIDs(e))

	e.press("l", "l", "l", "l", " ") // The Guardian
	assert.Equal(t, []string{"The Guardian"}, e.app.dashboard.state.Filter.Sources)
	assert.Equal(t, []int{2, 6, 8}, visibleIDs(e))

	e.press("c")
	assert.True(t, e.app.dashboard.state.Filter.IsZero())
	e.press("esc")
	assert.Equal(t, modeBrowse, e.app.dashboard.mode)
}

func TestDateFilter(t *testing.T) {
	e := newTestEnv(t, nil, true)
	e.press("d")
	e.typeText("2025-10-2")
	assert.Len(t, visibleIDs(e), 6)
	e.typeText("6")
	assert.Equal(t, []int{1, 2}, visibleIDs(e))
	e.press("enter")
	assert.Equal(t, "2025-10-26", e.app.dashboard.state.Filter.Date)
}

func TestArticleDetail(t *testing.T) {
	e := newTestEnv(t, nil, true)
	e.press("enter")

	a, ok := e.app.dashboard.state.Article()
	require.True(t, ok)
	assert.Equal(t, 1, a.ID)
	assert.Contains(t, e.app.View(), "By Reuters | Oct 26, 2025")

	e.press("b")
	assert.True(t, e.app.dashboard.state.Articles[0].Bookmarked)

	e.press("esc")
	assert.Zero(t, e.app.dashboard.state.OpenArticle)
}

func TestDetailScrollStopsAtLastLine(t *testing.T) {
	e := newTestEnv(t, nil, true)
	e.app.Update(tea.WindowSizeMsg{Width: 40, Height: 4})
	e.press("enter")

	a, ok := e.app.dashboard.state.Article()
	require.True(t, ok)
	limit := maxDetailScroll(a, 40, e.app.dashboard.bodyHeight())
	require.Positive(t, limit)

	for i := 0; i < limit+10; i++ {
		e.press("j")
	}
	assert.Equal(t, limit, e.app.dashboard.scroll)

	e.press("k")
	assert.Equal(t, limit-1, e.app.dashboard.scroll)
}

func TestTinyTerminalDoesNotPanic(t *testing.T) {
	for _, height := range []int{1, 2, 3} {
		e := newTestEnv(t, nil, true)
		e.app.Update(tea.WindowSizeMsg{Width: 80, Height: height})

		e.press("enter")
		assert.NotPanics(t, func() { e.app.View() }, "detail at height %d", height)
		e.press("esc", "?")
		assert.NotPanics(t, func() { e.app.View() }, "help at height %d", height)
		e.press("?", "P")
		assert.NotPanics(t, func() { e.app.View() }, "profile at height %d", height)
	}
}

func TestProfileSave(t *testing.T) {
	e := newTestEnv(t, nil, true)
	e.press("P")
	require.Equal(t, modeProfile, e.app.dashboard.mode)

	// Rows: name, Energy, Policy, Tech, ...
	e.press("down", "down", " ")
	e.press("ctrl+s")

	d := e.app.dashboard
	assert.Equal(t, modeBrowse, d.mode)
	assert.Equal(t, []string{"Energy", "Policy", "Tech"}, d.state.Prefs.PreferredCategories)
	assert.Len(t, visibleIDs(e), 8)

	saved, err := e.db.Preferences(news.Preferences{})
	require.NoError(t, err)
	assert.Equal(t, d.state.Prefs, saved)
}

func TestProfileKeywords(t *testing.T) {
	e := newTestEnv(t, nil, true)
	e.press("P", "shift+tab") // wraps to the keyword row
	e.typeText(" methane , ")
	e.press("enter")

	prefs := e.app.dashboard.state.Prefs
	assert.Equal(t, []string{"methane"}, prefs.TrackedKeywords)
	assert.Contains(t, visibleIDs(e), 4)
}

func TestProfileCancel(t *testing.T) {
	e := newTestEnv(t, nil, true)
	before := e.app.dashboard.state.Prefs
	e.press("P", "esc")
	assert.Equal(t, modeBrowse, e.app.dashboard.mode)
	assert.Equal(t, before, e.app.dashboard.state.Prefs)
}

func TestEmptyForYouMessage(t *testing.T) {
	e := newTestEnv(t, nil, true)
	e.app.dashboard.state.Prefs = news.Preferences{Name: "Ada"}
	assert.Empty(t, visibleIDs(e))
	assert.Contains(t, e.app.View(), dashboard.EmptyForYou)
}
