package dashboard

import (
	"time"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

// Action is a user intent. Reduce is the only place actions are applied.
type Action interface{ action() }

type (
	SetSearch         struct{ Text string }
	ToggleCategory    struct{ Category string }
	ToggleSource      struct{ Source string }
	SetDate           struct{ Date string }
	ClearFilters      struct{}
	GoToPage          struct{ Page int }
	PrevPage          struct{}
	NextPage          struct{}
	SetBookmarkSearch struct{ Text string }
	SelectTab         struct{ Tab Tab }
	OpenArticle       struct{ ID int }
	CloseArticle      struct{}
	DismissToast      struct{}

	// ToggleBookmark carries its own timestamp so Reduce stays pure.
	ToggleBookmark struct {
		ID int
		At time.Time
	}

	UpdateProfile struct{ Prefs news.Preferences }

	// ReplaceArticles swaps in a reloaded article list. Bookmark state of
	// articles already on screen wins over the reloaded copy.
	ReplaceArticles struct{ Articles []news.Article }
)

func (SetSearch) action()         {}
func (ToggleCategory) action()    {}
func (ToggleSource) action()      {}
func (SetDate) action()           {}
func (ClearFilters) action()      {}
func (GoToPage) action()          {}
func (PrevPage) action()          {}
func (NextPage) action()          {}
func (SetBookmarkSearch) action() {}
func (SelectTab) action()         {}
func (OpenArticle) action()       {}
func (CloseArticle) action()      {}
func (DismissToast) action()      {}
func (ToggleBookmark) action()    {}
func (UpdateProfile) action()     {}
func (ReplaceArticles) action()   {}

// Reduce applies a to s and returns the new state. s is not modified.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetSearch:
		s.Filter.Search = a.Text
		s.Page = 1
	case ToggleCategory:
		s.Filter.Categories = toggle(s.Filter.Categories, a.Category)
		s.Page = 1
	case ToggleSource:
		s.Filter.Sources = toggle(s.Filter.Sources, a.Source)
		s.Page = 1
	case SetDate:
		s.Filter.Date = a.Date
		s.Page = 1
	case ClearFilters:
		s.Filter = news.Filter{}
		s.Page = 1

	case GoToPage:
		if a.Page >= 1 && a.Page <= s.totalPages() {
			s.Page = a.Page
		}
	case PrevPage:
		if s.Page > 1 {
			s.Page--
		}
	case NextPage:
		if s.Page < s.totalPages() {
			s.Page++
		}

	case SetBookmarkSearch:
		s.BookmarkSearch = a.Text
	case SelectTab:
		s.Tab = a.Tab

	case OpenArticle:
		if news.Find(s.Articles, a.ID) >= 0 {
			s.OpenArticle = a.ID
		}
	case CloseArticle:
		s.OpenArticle = 0

	case ToggleBookmark:
		articles, bookmarked, ok := news.ToggleBookmark(s.Articles, a.ID, a.At)
		if !ok {
			return s
		}
		s.Articles = articles
		if bookmarked {
			s.Toast = ToastBookmarked
		} else {
			s.Toast = ToastBookmarkRemoved
		}
	case DismissToast:
		s.Toast = ""

	case UpdateProfile:
		s.Prefs = a.Prefs
		s.Toast = ToastProfileSaved

	case ReplaceArticles:
		s.Articles = merge(s.Articles, a.Articles)
		if s.OpenArticle != 0 && news.Find(s.Articles, s.OpenArticle) < 0 {
			s.OpenArticle = 0
		}
		if s.Page > s.totalPages() {
			s.Page = max(1, s.totalPages())
		}
	}
	return s
}

func toggle(set []string, v string) []string {
	out := make([]string, 0, len(set)+1)
	found := false
	for _, s := range set {
		if s == v {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, v)
	}
	return out
}

func merge(current, fresh []news.Article) []news.Article {
	out := make([]news.Article, len(fresh))
	copy(out, fresh)
	for i := range out {
		if j := news.Find(current, out[i].ID); j >= 0 {
			out[i].Bookmarked = current[j].Bookmarked
			out[i].BookmarkedOn = current[j].BookmarkedOn
		}
	}
	return out
}
