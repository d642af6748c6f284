// Package dashboard holds the dashboard state and the pure functions that
// change it and derive views from it. Nothing here touches the terminal or
// the store.
package dashboard

import (
	"time"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

type Tab int

const (
	TabForYou Tab = iota
	TabAllNews
	TabBookmarks
)

var tabNames = []string{"For You", "All News", "Bookmarks"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "Unknown"
	}
	return tabNames[t]
}

// Tabs lists the tabs in display order.
func Tabs() []Tab { return []Tab{TabForYou, TabAllNews, TabBookmarks} }

const (
	EmptyForYou    = "Update your profile to get personalized news."
	EmptyAllNews   = "No articles match your filters."
	EmptyBookmarks = "You have no bookmarked articles."

	ToastBookmarked      = "Article bookmarked!"
	ToastBookmarkRemoved = "Bookmark removed."
	ToastProfileSaved    = "Preferences saved!"
)

// Options are the per-install knobs read from config.
type Options struct {
	PageSize     int
	ForYouWindow time.Duration
}

// State is everything the dashboard renders from.
type State struct {
	Articles []news.Article
	Prefs    news.Preferences

	Tab            Tab
	Page           int
	Filter         news.Filter
	BookmarkSearch string

	// OpenArticle is the id shown in the detail view, 0 when closed.
	OpenArticle int
	Toast       string

	PageSize     int
	ForYouWindow time.Duration
}

func New(articles []news.Article, prefs news.Preferences, opts Options) State {
	size := opts.PageSize
	if size <= 0 {
		size = news.DefaultPageSize
	}
	return State{
		Articles:     articles,
		Prefs:        prefs,
		Tab:          TabForYou,
		Page:         1,
		PageSize:     size,
		ForYouWindow: opts.ForYouWindow,
	}
}

// Views are the three derived article lists.
type Views struct {
	ForYou    []news.Article
	AllNews   news.Page
	Matching  int // size of the filtered All News list before paging
	Bookmarks []news.Article
}

// Derive recomputes all views from scratch.
func Derive(s State, now time.Time) Views {
	all := news.AllNews(s.Articles, s.Filter)
	return Views{
		ForYou:    news.ForYou(s.Articles, s.Prefs, news.ForYouOpts{Window: s.ForYouWindow, Now: now}),
		AllNews:   news.Paginate(all, s.Page, s.PageSize),
		Matching:  len(all),
		Bookmarks: news.Bookmarks(s.Articles, s.BookmarkSearch),
	}
}

// Article returns the open article, if any.
func (s State) Article() (news.Article, bool) {
	if s.OpenArticle == 0 {
		return news.Article{}, false
	}
	i := news.Find(s.Articles, s.OpenArticle)
	if i < 0 {
		return news.Article{}, false
	}
	return s.Articles[i], true
}

func (s State) totalPages() int {
	return news.TotalPages(len(news.AllNews(s.Articles, s.Filter)), s.PageSize)
}
