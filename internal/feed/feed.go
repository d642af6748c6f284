package feed

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/classify"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/config"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

const (
	maxAge        = 7 * 24 * time.Hour
	contentLimit  = 600
	maxConcurrent = 4
)

type Fetcher interface {
	Fetch(ctx context.Context, source config.Source) ([]news.Article, error)
}

type RSSFetcher struct {
	parser *gofeed.Parser
	now    func() time.Time
}

func NewRSSFetcher() *RSSFetcher {
	return &RSSFetcher{parser: gofeed.NewParser(), now: time.Now}
}

// Fetch downloads one source and converts its recent items into articles.
// Items without a link are skipped since the link is their identity.
func (f *RSSFetcher) Fetch(ctx context.Context, source config.Source) ([]news.Article, error) {
	feed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.Name, err)
	}

	now := f.now()
	cutoff := now.Add(-maxAge)
	articles := make([]news.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		pub := now
		if item.PublishedParsed != nil {
			pub = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			pub = *item.UpdatedParsed
		}
		if pub.Before(cutoff) {
			continue
		}

		desc := item.Description
		if desc == "" {
			desc = item.Content
		}
		desc = stripHTML(desc)

		articles = append(articles, news.Article{
			Source:   source.Name,
			Title:    strings.TrimSpace(item.Title),
			Date:     pub.Format(news.DateLayout),
			Category: string(classify.Classify(item.Title, desc)),
			Content:  truncate(desc, contentLimit),
			Image:    imageURL(item),
			Link:     item.Link,
		})
	}
	return articles, nil
}

func imageURL(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

type FetchResult struct {
	Articles []news.Article
	Errors   []error
}

// FetchAll fetches every source with bounded concurrency. A failing source
// is recorded in Errors and does not stop the others. Articles keep source
// order.
func FetchAll(ctx context.Context, fetcher Fetcher, sources []config.Source) FetchResult {
	var (
		mu      sync.Mutex
		result  FetchResult
		batches = make([][]news.Article, len(sources))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)
	for i, src := range sources {
		g.Go(func() error {
			articles, err := fetcher.Fetch(ctx, src)
			if err != nil {
				mu.Lock()
				result.Errors = append(result.Errors, err)
				mu.Unlock()
				return nil
			}
			batches[i] = articles
			return nil
		})
	}
	_ = g.Wait()

	for _, b := range batches {
		result.Articles = append(result.Articles, b...)
	}
	return result
}
