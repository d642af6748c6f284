package news

import (
	"strings"
	"time"
)

// Filter holds the All News filter controls. Empty fields match everything.
type Filter struct {
	Search     string
	Categories []string
	Sources    []string
	Date       string // prefix of Article.Date, e.g. "2025-10" or "2025-10-26"
}

func (f Filter) IsZero() bool {
	return f.Search == "" && len(f.Categories) == 0 && len(f.Sources) == 0 && f.Date == ""
}

// ForYouOpts tunes the For You derivation.
type ForYouOpts struct {
	// Window, when non-zero, additionally requires the article date to be
	// no older than Window before Now.
	Window time.Duration
	Now    time.Time
}

// ForYou returns the articles matching any of the user's preferred
// categories, preferred sources or tracked keywords.
func ForYou(articles []Article, prefs Preferences, opts ForYouOpts) []Article {
	keywords := make([]string, 0, len(prefs.TrackedKeywords))
	for _, k := range prefs.TrackedKeywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}

	out := []Article{}
	for _, a := range articles {
		if !prefers(a, prefs, keywords) {
			continue
		}
		if opts.Window > 0 && !withinWindow(a, opts.Window, opts.Now) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func prefers(a Article, prefs Preferences, keywords []string) bool {
	if prefs.HasCategory(a.Category) || prefs.HasSource(a.Source) {
		return true
	}
	title := strings.ToLower(a.Title)
	for _, k := range keywords {
		if strings.Contains(title, k) {
			return true
		}
	}
	return false
}

func withinWindow(a Article, window time.Duration, now time.Time) bool {
	pub, ok := a.Published()
	if !ok {
		return false
	}
	return now.Sub(pub) <= window
}

// AllNews applies the All News filter controls.
func AllNews(articles []Article, f Filter) []Article {
	search := strings.ToLower(f.Search)
	out := []Article{}
	for _, a := range articles {
		if !strings.Contains(strings.ToLower(a.Title), search) {
			continue
		}
		if len(f.Categories) > 0 && !contains(f.Categories, a.Category) {
			continue
		}
		if len(f.Sources) > 0 && !contains(f.Sources, a.Source) {
			continue
		}
		if f.Date != "" && !strings.HasPrefix(a.Date, f.Date) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Bookmarks returns bookmarked articles whose title contains search.
func Bookmarks(articles []Article, search string) []Article {
	search = strings.ToLower(search)
	out := []Article{}
	for _, a := range articles {
		if a.Bookmarked && strings.Contains(strings.ToLower(a.Title), search) {
			out = append(out, a)
		}
	}
	return out
}

// ToggleBookmark flips the bookmark on the article with the given id and
// stamps or clears BookmarkedOn. It returns a new slice; the input is not
// modified. ok is false when no article has that id.
func ToggleBookmark(articles []Article, id int, at time.Time) (out []Article, bookmarked, ok bool) {
	i := Find(articles, id)
	if i < 0 {
		return articles, false, false
	}
	out = make([]Article, len(articles))
	copy(out, articles)

	a := out[i]
	a.Bookmarked = !a.Bookmarked
	if a.Bookmarked {
		stamp := at
		a.BookmarkedOn = &stamp
	} else {
		a.BookmarkedOn = nil
	}
	out[i] = a
	return out, a.Bookmarked, true
}
