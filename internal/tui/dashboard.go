package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/auth"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/browser"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/config"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/dashboard"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/feed"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/store"
)

const refreshTimeout = 30 * time.Second

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeFilter
	modeDate
	modeProfile
	modeHelp
)

type dashboardModel struct {
	cfg     *config.Config
	db      *store.Store
	auth    *auth.Service
	logger  *zap.Logger
	fetcher feed.Fetcher
	now     func() time.Time

	state  dashboard.State
	mode   mode
	cursor int
	scroll int

	searchInput textinput.Model
	dateInput   textinput.Model
	filterBar   filterBar
	profile     profileForm
	spinner     spinner.Model

	refreshing bool
	err        error
	toastSeq   int

	width  int
	height int
}

type dashboardOpts struct {
	cfg      *config.Config
	db       *store.Store
	auth     *auth.Service
	logger   *zap.Logger
	articles []news.Article
	prefs    news.Preferences
	filter   news.Filter
}

func newDashboard(opts dashboardOpts) dashboardModel {
	ti := newInput()
	ti.Placeholder = "Search titles..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	di := newInput()
	di.Placeholder = "YYYY-MM-DD or YYYY-MM"
	di.Prompt = searchPromptStyle.Render("date ")
	di.CharLimit = 10

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	state := dashboard.New(opts.articles, opts.prefs, dashboard.Options{
		PageSize:     opts.cfg.GetPageSize(),
		ForYouWindow: opts.cfg.ForYouDuration(),
	})
	state.Filter = opts.filter
	if !opts.filter.IsZero() {
		state.Tab = dashboard.TabAllNews
	}

	return dashboardModel{
		cfg:         opts.cfg,
		db:          opts.db,
		auth:        opts.auth,
		logger:      opts.logger,
		fetcher:     feed.NewRSSFetcher(),
		now:         time.Now,
		state:       state,
		searchInput: ti,
		dateInput:   di,
		filterBar:   newFilterBar(news.Categories(opts.articles), news.Sources(opts.articles)),
		spinner:     sp,
	}
}

// visible is the article list of the current tab, after paging.
func (m *dashboardModel) visible() []news.Article {
	v := dashboard.Derive(m.state, m.now())
	switch m.state.Tab {
	case dashboard.TabAllNews:
		return v.AllNews.Items
	case dashboard.TabBookmarks:
		return v.Bookmarks
	default:
		return v.ForYou
	}
}

func (m *dashboardModel) selected() (news.Article, bool) {
	items := m.visible()
	if m.cursor < 0 || m.cursor >= len(items) {
		return news.Article{}, false
	}
	return items[m.cursor], true
}

func (m *dashboardModel) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

// apply runs a through the reducer and returns the side effects it needs.
func (m *dashboardModel) apply(a dashboard.Action) tea.Cmd {
	prev := m.state
	m.state = dashboard.Reduce(m.state, a)
	m.clampCursor()

	switch a := a.(type) {
	case dashboard.SetSearch, dashboard.ToggleCategory, dashboard.ToggleSource,
		dashboard.SetDate, dashboard.ClearFilters, dashboard.GoToPage,
		dashboard.PrevPage, dashboard.NextPage, dashboard.SelectTab,
		dashboard.SetBookmarkSearch:
		if m.state.Page != prev.Page || m.state.Tab != prev.Tab {
			m.cursor = 0
		}
	case dashboard.ToggleBookmark:
		i := news.Find(m.state.Articles, a.ID)
		if i < 0 {
			return nil
		}
		art := m.state.Articles[i]
		m.logger.Debug("bookmark toggled", zap.Int("id", art.ID), zap.Bool("bookmarked", art.Bookmarked))
		return tea.Batch(m.showToast(), m.persistBookmark(art))
	case dashboard.UpdateProfile:
		return tea.Batch(m.showToast(), m.savePreferences(a.Prefs))
	}
	return nil
}

// do applies a and returns the updated model with its side effects.
func (m dashboardModel) do(a dashboard.Action) (dashboardModel, tea.Cmd) {
	cmd := m.apply(a)
	return m, cmd
}

func (m *dashboardModel) showToast() tea.Cmd {
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(m.cfg.ToastDuration(), func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *dashboardModel) persistBookmark(a news.Article) tea.Cmd {
	if !m.cfg.PersistBookmarks {
		return nil
	}
	db := m.db
	return func() tea.Msg {
		if err := db.SetBookmark(a.ID, a.Bookmarked, a.BookmarkedOn); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func (m *dashboardModel) savePreferences(p news.Preferences) tea.Cmd {
	db := m.db
	logger := m.logger
	return func() tea.Msg {
		if err := db.SavePreferences(p); err != nil {
			return errMsg{err: err}
		}
		logger.Info("preferences saved",
			zap.Strings("categories", p.PreferredCategories),
			zap.Strings("sources", p.PreferredSources),
			zap.Strings("keywords", p.TrackedKeywords))
		return nil
	}
}

func (m *dashboardModel) doRefresh() tea.Cmd {
	sources := m.cfg.EnabledSources()
	db := m.db
	fetcher := m.fetcher
	logger := m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		result := feed.FetchAll(ctx, fetcher, sources)
		for _, err := range result.Errors {
			logger.Warn("feed fetch failed", zap.Error(err))
		}

		if err := db.UpsertArticles(result.Articles); err != nil {
			return refreshDoneMsg{errs: append(result.Errors, err)}
		}
		if err := db.SetLastRefresh(); err != nil {
			logger.Warn("recording refresh time", zap.Error(err))
		}
		articles, err := db.Articles()
		if err != nil {
			return refreshDoneMsg{errs: append(result.Errors, err)}
		}
		return refreshDoneMsg{articles: articles, count: len(result.Articles), errs: result.Errors}
	}
}

func (m *dashboardModel) logout() tea.Cmd {
	svc := m.auth
	return func() tea.Msg {
		if err := svc.Logout(); err != nil {
			return errMsg{err: err}
		}
		return loggedOutMsg{}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func (m dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Clear sticky error on any keypress
		m.err = nil
		return m.handleKey(msg)

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.state = dashboard.Reduce(m.state, dashboard.DismissToast{})
		}
		return m, nil

	case refreshDoneMsg:
		m.refreshing = false
		if msg.articles != nil {
			m.state = dashboard.Reduce(m.state, dashboard.ReplaceArticles{Articles: msg.articles})
			m.filterBar = newFilterBar(news.Categories(m.state.Articles), news.Sources(m.state.Articles))
			m.clampCursor()
		}
		if len(msg.errs) > 0 {
			m.err = errors.Join(msg.errs...)
		}
		m.logger.Info("refresh finished", zap.Int("fetched", msg.count), zap.Int("errors", len(msg.errs)))
		return m, nil

	case errMsg:
		m.err = msg.err
		m.logger.Error("dashboard error", zap.Error(msg.err))
		return m, nil

	case spinner.TickMsg:
		if m.refreshing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (dashboardModel, tea.Cmd) {
	if m.state.OpenArticle != 0 {
		return m.handleDetailKey(msg)
	}

	switch m.mode {
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			m.mode = modeBrowse
		}
		return m, nil
	case modeProfile:
		cmd, submit, cancel := m.profile.update(msg)
		switch {
		case submit:
			m.mode = modeBrowse
			return m.do(dashboard.UpdateProfile{Prefs: m.profile.Preferences()})
		case cancel:
			m.mode = modeBrowse
		}
		return m, cmd
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeDate:
		return m.handleDateKey(msg)
	case modeFilter:
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		return m.do(dashboard.SelectTab{Tab: (m.state.Tab + 1) % dashboard.Tab(len(dashboard.Tabs()))})
	case "shift+tab":
		n := dashboard.Tab(len(dashboard.Tabs()))
		return m.do(dashboard.SelectTab{Tab: (m.state.Tab + n - 1) % n})
	case "j", "down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "enter":
		if a, ok := m.selected(); ok {
			m.scroll = 0
			return m.do(dashboard.OpenArticle{ID: a.ID})
		}
		return m, nil
	case "b", " ":
		if a, ok := m.selected(); ok {
			return m.do(dashboard.ToggleBookmark{ID: a.ID, At: m.now()})
		}
		return m, nil
	case "o":
		if a, ok := m.selected(); ok && a.URL() != "" {
			return m, openBrowserCmd(a.URL())
		}
		return m, nil
	case "/":
		if m.state.Tab == dashboard.TabBookmarks {
			m.searchInput.SetValue(m.state.BookmarkSearch)
		} else {
			m.apply(dashboard.SelectTab{Tab: dashboard.TabAllNews})
			m.searchInput.SetValue(m.state.Filter.Search)
		}
		m.mode = modeSearch
		m.searchInput.CursorEnd()
		m.searchInput.Focus()
		return m, textinput.Blink
	case "f":
		m.apply(dashboard.SelectTab{Tab: dashboard.TabAllNews})
		m.mode = modeFilter
		m.filterBar.filterMode = true
		return m, nil
	case "d":
		m.apply(dashboard.SelectTab{Tab: dashboard.TabAllNews})
		m.mode = modeDate
		m.dateInput.SetValue(m.state.Filter.Date)
		m.dateInput.CursorEnd()
		m.dateInput.Focus()
		return m, textinput.Blink
	case "c":
		return m.do(dashboard.ClearFilters{})
	case "n", "right", "l":
		if m.state.Tab == dashboard.TabAllNews {
			return m.do(dashboard.NextPage{})
		}
		return m, nil
	case "p", "left", "h":
		if m.state.Tab == dashboard.TabAllNews {
			return m.do(dashboard.PrevPage{})
		}
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if m.state.Tab == dashboard.TabAllNews {
			return m.do(dashboard.GoToPage{Page: int(msg.String()[0] - '0')})
		}
		return m, nil
	case "P":
		m.profile = newProfileForm(m.state.Prefs, news.Categories(m.state.Articles), news.Sources(m.state.Articles))
		m.mode = modeProfile
		return m, textinput.Blink
	case "r":
		if m.refreshing {
			return m, nil
		}
		if len(m.cfg.EnabledSources()) == 0 {
			m.err = fmt.Errorf("no feed sources enabled in %s", config.DefaultConfigPath())
			return m, nil
		}
		m.refreshing = true
		return m, tea.Batch(m.doRefresh(), m.spinner.Tick)
	case "L":
		return m, m.logout()
	case "?":
		m.mode = modeHelp
		return m, nil
	}
	return m, nil
}

func (m dashboardModel) handleDetailKey(msg tea.KeyMsg) (dashboardModel, tea.Cmd) {
	a, _ := m.state.Article()
	switch msg.String() {
	case "esc", "backspace":
		return m.do(dashboard.CloseArticle{})
	case "q":
		return m, tea.Quit
	case "b", " ":
		return m.do(dashboard.ToggleBookmark{ID: a.ID, At: m.now()})
	case "o":
		if a.URL() != "" {
			return m, openBrowserCmd(a.URL())
		}
	case "j", "down":
		if m.scroll < maxDetailScroll(a, m.width, m.bodyHeight()) {
			m.scroll++
		}
	case "k", "up":
		if m.scroll > 0 {
			m.scroll--
		}
	}
	return m, nil
}

func (m dashboardModel) searchAction(text string) dashboard.Action {
	if m.state.Tab == dashboard.TabBookmarks {
		return dashboard.SetBookmarkSearch{Text: text}
	}
	return dashboard.SetSearch{Text: text}
}

// handleSearchKey filters on every keystroke; esc clears the search.
func (m dashboardModel) handleSearchKey(msg tea.KeyMsg) (dashboardModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		return m.do(m.searchAction(""))
	case "enter":
		m.mode = modeBrowse
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Only re-filter on actual value changes, not cursor moves etc.
	if v := m.searchInput.Value(); v != before {
		m.apply(m.searchAction(v))
	}
	return m, cmd
}

func (m dashboardModel) handleDateKey(msg tea.KeyMsg) (dashboardModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.dateInput.SetValue("")
		m.dateInput.Blur()
		return m.do(dashboard.SetDate{Date: ""})
	case "enter":
		m.mode = modeBrowse
		m.dateInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.dateInput.Value()
	m.dateInput, cmd = m.dateInput.Update(msg)
	if v := m.dateInput.Value(); v != before {
		m.apply(dashboard.SetDate{Date: v})
	}
	return m, cmd
}

func (m dashboardModel) handleFilterKey(msg tea.KeyMsg) (dashboardModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		m.mode = modeBrowse
		m.filterBar.filterMode = false
		return m, nil
	case "left", "h":
		m.filterBar.move(-1)
		return m, nil
	case "right", "l":
		m.filterBar.move(1)
		return m, nil
	case " ", "enter":
		if a := m.filterBar.toggleAction(m.filterBar.cursor); a != nil {
			return m.do(a)
		}
		return m, nil
	case "c":
		return m.do(dashboard.ClearFilters{})
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if a := m.filterBar.toggleAction(int(msg.String()[0] - '1')); a != nil {
			return m.do(a)
		}
		return m, nil
	}
	return m, nil
}

// bodyHeight is the space left under the header and tabs and above the
// status bar.
func (m dashboardModel) bodyHeight() int {
	return max(m.height-3, 1)
}

func (m dashboardModel) view() string {
	if m.width == 0 {
		return lipgloss.NewStyle().Foreground(colorPrimary).Render("  GreenStream")
	}

	headerLeft := headerStyle.Render("GreenStream")
	headerRight := headerUserStyle.Render("Welcome, " + m.state.Prefs.Name + " ")
	headerGap := max(0, m.width-lipgloss.Width(headerLeft)-lipgloss.Width(headerRight))
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	tabs := m.renderTabs()

	switch {
	case m.mode == modeHelp:
		return lipgloss.JoinVertical(lipgloss.Left, header, tabs, m.renderHelp(m.bodyHeight()), m.renderStatus())
	case m.mode == modeProfile:
		return lipgloss.JoinVertical(lipgloss.Left, header, tabs, m.profile.view(m.width, m.bodyHeight()), m.renderStatus())
	}

	if a, ok := m.state.Article(); ok {
		body := renderDetail(a, m.width, m.bodyHeight(), m.scroll)
		return lipgloss.JoinVertical(lipgloss.Left, header, tabs, body, m.renderStatus())
	}

	toolbar := m.renderToolbar()
	views := dashboard.Derive(m.state, m.now())

	// header, tabs, toolbar, status, plus a blank line around the list
	contentHeight := m.height - 6
	var pager string
	if m.state.Tab == dashboard.TabAllNews {
		pager = renderPagination(views.AllNews, views.Matching)
		contentHeight--
	}
	if contentHeight < 3 {
		contentHeight = 3
	}

	var items []news.Article
	var empty string
	switch m.state.Tab {
	case dashboard.TabAllNews:
		items, empty = views.AllNews.Items, dashboard.EmptyAllNews
	case dashboard.TabBookmarks:
		items, empty = views.Bookmarks, dashboard.EmptyBookmarks
	default:
		items, empty = views.ForYou, dashboard.EmptyForYou
	}
	list := lipgloss.NewStyle().Height(contentHeight).Render(renderList(items, m.cursor, contentHeight, m.width-2, empty))

	parts := []string{header, tabs, toolbar, "", list}
	if pager != "" {
		parts = append(parts, pager)
	}
	parts = append(parts, m.renderStatus())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m dashboardModel) renderTabs() string {
	var parts []string
	for _, t := range dashboard.Tabs() {
		label := t.String()
		if t == dashboard.TabBookmarks {
			label = fmt.Sprintf("%s (%d)", label, len(news.Bookmarks(m.state.Articles, "")))
		}
		if t == m.state.Tab {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabInactiveStyle.Render(label))
		}
	}
	return " " + strings.Join(parts, " ")
}

func (m dashboardModel) renderToolbar() string {
	switch m.state.Tab {
	case dashboard.TabAllNews:
		switch m.mode {
		case modeSearch:
			return m.searchInput.View()
		case modeDate:
			return m.dateInput.View()
		}
		return m.filterBar.render(m.state.Filter, m.width)
	case dashboard.TabBookmarks:
		if m.mode == modeSearch {
			return m.searchInput.View()
		}
		if m.state.BookmarkSearch != "" {
			return helpDimStyle.Render(" search: " + m.state.BookmarkSearch)
		}
		return helpDimStyle.Render(" / search bookmarks")
	default:
		p := m.state.Prefs
		based := append(append([]string{}, p.PreferredCategories...), p.PreferredSources...)
		line := " Based on: " + strings.Join(based, ", ")
		if len(p.TrackedKeywords) > 0 {
			line += " · keywords: " + p.KeywordText()
		}
		if m.state.ForYouWindow > 0 {
			line += " · last " + m.state.ForYouWindow.String()
		}
		return helpDimStyle.Render(line)
	}
}

// renderPagination draws "‹ Prev  1  2  Next ›" for the current page.
func renderPagination(p news.Page, matching int) string {
	prev := pageStyle.Render("‹ Prev")
	if p.PrevDisabled {
		prev = pageDisabledStyle.Render("‹ Prev")
	}
	next := pageStyle.Render("Next ›")
	if p.NextDisabled {
		next = pageDisabledStyle.Render("Next ›")
	}

	parts := []string{" " + prev}
	for _, b := range p.Buttons {
		if b.Active {
			parts = append(parts, pageActiveStyle.Render(fmt.Sprint(b.Number)))
		} else {
			parts = append(parts, pageStyle.Render(fmt.Sprint(b.Number)))
		}
	}
	parts = append(parts, next, helpDimStyle.Render(fmt.Sprintf("  %d articles", matching)))
	return strings.Join(parts, " ")
}

func (m dashboardModel) renderStatus() string {
	var left string
	switch {
	case m.err != nil:
		left = errorStyle.Render(m.err.Error())
	case m.state.Toast != "":
		left = toastStyle.Render(m.state.Toast)
	default:
		left = fmt.Sprintf("%d articles · filter: %s", len(m.state.Articles), activeLabel(m.state.Filter))
	}
	if m.refreshing {
		left = m.spinner.View() + " refreshing... " + left
	}

	hints := "tab views  enter read  b bookmark  / search  f filter  P profile  ? help  q quit"
	switch {
	case m.state.OpenArticle != 0:
		hints = "esc back  b bookmark  o open  q quit"
	case m.mode == modeSearch, m.mode == modeDate:
		hints = "esc clear  enter done"
	case m.mode == modeFilter:
		hints = "←/→ move  space toggle  c clear  esc done"
	case m.mode == modeProfile:
		hints = "ctrl+s save  esc cancel"
	}
	return renderStatusBar(left, hints, m.width)
}

func (m dashboardModel) renderHelp(height int) string {
	title := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render("GreenStream")
	dim := helpDimStyle

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  tab/shift+tab  Switch between For You, All News, Bookmarks\n" +
		"  j/k, ↑/↓      Move between articles\n" +
		"  enter          Read article\n" +
		"  n/p, ←/→      Next / previous page (All News)\n" +
		"  1-9            Go to page (All News)\n\n" +
		dim.Render("Actions") + "\n" +
		"  b, space       Toggle bookmark\n" +
		"  o              Open article in browser\n" +
		"  /              Search\n" +
		"  f              Category and source filters\n" +
		"  d              Date filter\n" +
		"  c              Clear filters\n" +
		"  P              Edit profile\n" +
		"  r              Refresh feeds\n\n" +
		dim.Render("General") + "\n" +
		"  L              Log out\n" +
		"  ?              Toggle this help\n" +
		"  q, ctrl+c      Quit"

	card := helpCardStyle.Render(help)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, card)
}
