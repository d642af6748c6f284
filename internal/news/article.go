package news

import (
	"embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the layout of Article.Date.
const DateLayout = "2006-01-02"

//go:embed catalog.yaml
var catalogFS embed.FS

type Article struct {
	ID           int        `yaml:"id" json:"id"`
	Source       string     `yaml:"source" json:"source"`
	Title        string     `yaml:"title" json:"title"`
	Date         string     `yaml:"date" json:"date"`
	Category     string     `yaml:"category" json:"category"`
	Bookmarked   bool       `yaml:"bookmarked" json:"bookmarked"`
	BookmarkedOn *time.Time `yaml:"bookmarked_on,omitempty" json:"bookmarkedOn"`
	Content      string     `yaml:"content" json:"content"`
	Image        string     `yaml:"image,omitempty" json:"image,omitempty"`
	Link         string     `yaml:"link,omitempty" json:"link,omitempty"`
}

// Published parses Date. ok is false when the date is missing or malformed.
func (a Article) Published() (t time.Time, ok bool) {
	t, err := time.Parse(DateLayout, a.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// URL returns the link to open for the article: the feed link when there
// is one, otherwise the image.
func (a Article) URL() string {
	if a.Link != "" {
		return a.Link
	}
	return a.Image
}

// Catalog returns the built-in article list in its original order.
func Catalog() ([]Article, error) {
	data, err := catalogFS.ReadFile("catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded catalog: %w", err)
	}
	var articles []Article
	if err := yaml.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("parsing embedded catalog: %w", err)
	}
	return articles, nil
}

// Preview returns the first n articles of the catalog for the landing screen.
func Preview(articles []Article, n int) []Article {
	if n > len(articles) {
		n = len(articles)
	}
	return articles[:n]
}

// Find returns the index of the article with the given id, or -1.
func Find(articles []Article, id int) int {
	for i := range articles {
		if articles[i].ID == id {
			return i
		}
	}
	return -1
}

// Categories returns the distinct categories in order of first appearance.
func Categories(articles []Article) []string {
	return distinct(articles, func(a Article) string { return a.Category })
}

// Sources returns the distinct sources in order of first appearance.
func Sources(articles []Article) []string {
	return distinct(articles, func(a Article) string { return a.Source })
}

func distinct(articles []Article, key func(Article) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range articles {
		k := key(a)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
