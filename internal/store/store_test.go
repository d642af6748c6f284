package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

func testDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	db, err := Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func feedArticles() []news.Article {
	return []news.Article{
		{Source: "Grist", Title: "Heat Pumps Outsell Gas Furnaces", Link: "https://a.example/heat", Date: "2025-10-27", Category: "Energy"},
		{Source: "Grist", Title: "Coastal Cities Plan for Sea Rise", Link: "https://a.example/sea", Date: "2025-10-27", Category: "Policy"},
	}
}

func TestOpenSeedsCatalog(t *testing.T) {
	db := testDB(t)

	got, err := db.Articles()
	if err != nil {
		t.Fatalf("articles: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("expected 8 catalog articles, got %d", len(got))
	}
	for i, a := range got {
		if a.ID != i+1 {
			t.Errorf("expected id %d at position %d, got %d", i+1, i, a.ID)
		}
	}
	if !got[1].Bookmarked || got[0].Bookmarked {
		t.Error("expected catalog bookmark flags to be preserved")
	}
}

func TestReopenKeepsBookmarks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	on := time.Date(2025, 10, 27, 8, 0, 0, 0, time.UTC)
	if err := db.SetBookmark(1, true, &on); err != nil {
		t.Fatalf("SetBookmark: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	got, err := db.Articles()
	if err != nil {
		t.Fatalf("articles: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("reseeding must not duplicate rows, got %d", len(got))
	}
	if !got[0].Bookmarked {
		t.Error("expected bookmark on article 1 to survive reopen")
	}
	if got[0].BookmarkedOn == nil || !got[0].BookmarkedOn.Equal(on) {
		t.Errorf("expected bookmarked_on %v, got %v", on, got[0].BookmarkedOn)
	}
}

func TestSetBookmarkClears(t *testing.T) {
	db := testDB(t)
	if err := db.SetBookmark(2, false, nil); err != nil {
		t.Fatalf("SetBookmark: %v", err)
	}
	got, _ := db.Articles()
	if got[1].Bookmarked || got[1].BookmarkedOn != nil {
		t.Errorf("expected bookmark cleared, got %+v", got[1])
	}
}

func TestSetBookmarkUnknownID(t *testing.T) {
	db := testDB(t)
	err := db.SetBookmark(404, true, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertAppendsAfterCatalog(t *testing.T) {
	db := testDB(t)
	if err := db.UpsertArticles(feedArticles()); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := db.Articles()
	if err != nil {
		t.Fatalf("articles: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 articles, got %d", len(got))
	}
	if got[8].ID != 9 || got[8].Link != "https://a.example/heat" {
		t.Errorf("expected first feed article as id 9, got %+v", got[8])
	}
}

func TestUpsertUpdatesExisting(t *testing.T) {
	db := testDB(t)
	articles := feedArticles()
	if err := db.UpsertArticles(articles); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	articles[0].Title = "Updated Heat Pumps"
	if err := db.UpsertArticles(articles[:1]); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := db.Articles()
	if err != nil {
		t.Fatalf("articles: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 articles after upsert, got %d", len(got))
	}
	if got[8].Title != "Updated Heat Pumps" || got[8].ID != 9 {
		t.Errorf("expected updated title with same id, got %+v", got[8])
	}
}

func TestUpsertRequiresLink(t *testing.T) {
	db := testDB(t)
	if err := db.UpsertArticles([]news.Article{{Title: "No link"}}); err == nil {
		t.Error("expected error for article without link")
	}
}

func TestNeedsRefresh(t *testing.T) {
	db := testDB(t)

	if !db.NeedsRefresh(1 * time.Hour) {
		t.Error("expected NeedsRefresh=true when no last_refresh set")
	}

	if err := db.SetLastRefresh(); err != nil {
		t.Fatalf("SetLastRefresh: %v", err)
	}

	if db.NeedsRefresh(1 * time.Hour) {
		t.Error("expected NeedsRefresh=false right after SetLastRefresh")
	}

	if !db.NeedsRefresh(0) {
		t.Error("expected NeedsRefresh=true with zero interval")
	}
}

func TestPruneKeepsCatalogAndBookmarks(t *testing.T) {
	db := testDB(t)
	if err := db.UpsertArticles(feedArticles()); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := db.SetBookmark(10, true, nil); err != nil {
		t.Fatalf("SetBookmark: %v", err)
	}

	// Negative retention puts the cutoff in the future.
	deleted, err := db.Prune(-time.Hour)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 pruned, got %d", deleted)
	}

	got, _ := db.Articles()
	if len(got) != 9 {
		t.Errorf("expected 9 remaining articles, got %d", len(got))
	}
}

func TestPruneNothingToDelete(t *testing.T) {
	db := testDB(t)
	if err := db.UpsertArticles(feedArticles()); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	deleted, err := db.Prune(365 * 24 * time.Hour)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 pruned, got %d", deleted)
	}
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	count, size, err := db.Stats(dbPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if count != 8 {
		t.Errorf("expected count 8, got %d", count)
	}
	if size == 0 {
		t.Error("expected non-zero db size")
	}
}

func TestOpenCreatesDir(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "deep", "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("opening db in nested dir: %v", err)
	}
	db.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Error("expected directory to be created")
	}
}
