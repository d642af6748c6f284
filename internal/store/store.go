package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("not found")

type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	s := &Store{writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.seedCatalog(); err != nil {
		s.Close()
		return nil, err
	}

	// Opened after the schema exists so the read-only handle never races
	// file creation.
	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}
	s.readDB = readDB
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS articles (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			link          TEXT UNIQUE,
			source        TEXT NOT NULL,
			title         TEXT NOT NULL,
			date          TEXT NOT NULL,
			category      TEXT NOT NULL DEFAULT '',
			content       TEXT NOT NULL DEFAULT '',
			image         TEXT NOT NULL DEFAULT '',
			bookmarked    INTEGER NOT NULL DEFAULT 0,
			bookmarked_on DATETIME,
			fetched_at    DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_articles_date ON articles(date);

		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	return errors.Join(errs...)
}

// seedCatalog stores the built-in articles before any feed article can
// claim their ids.
func (s *Store) seedCatalog() error {
	catalog, err := news.Catalog()
	if err != nil {
		return err
	}
	if err := s.SeedArticles(catalog); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	return nil
}

// SeedArticles inserts articles with their own ids, leaving rows that
// already exist untouched. Used for the built-in catalog.
func (s *Store) SeedArticles(articles []news.Article) error {
	tx, err := s.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO articles
			(id, link, source, title, date, category, content, image, bookmarked, bookmarked_on, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, a := range articles {
		_, err := stmt.Exec(a.ID, nullString(a.Link), a.Source, a.Title, a.Date, a.Category,
			a.Content, a.Image, a.Bookmarked, nullTime(a.BookmarkedOn), now)
		if err != nil {
			return fmt.Errorf("seeding article %d: %w", a.ID, err)
		}
	}
	return tx.Commit()
}

// UpsertArticles stores feed articles keyed by link. New links get fresh
// ids after every existing row; known links keep their id and bookmark.
func (s *Store) UpsertArticles(articles []news.Article) error {
	tx, err := s.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO articles (link, source, title, date, category, content, image, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(link) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			image = excluded.image,
			fetched_at = excluded.fetched_at
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, a := range articles {
		if a.Link == "" {
			return fmt.Errorf("upserting article %q: link is required", a.Title)
		}
		_, err := stmt.Exec(a.Link, a.Source, a.Title, a.Date, a.Category, a.Content, a.Image, now)
		if err != nil {
			return fmt.Errorf("upserting article %s: %w", a.Link, err)
		}
	}
	return tx.Commit()
}

// Articles returns every stored article in id order.
func (s *Store) Articles() ([]news.Article, error) {
	rows, err := s.readDB.Query(`
		SELECT id, link, source, title, date, category, content, image, bookmarked, bookmarked_on
		FROM articles ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var articles []news.Article
	for rows.Next() {
		var (
			a    news.Article
			link sql.NullString
			on   sql.NullTime
		)
		if err := rows.Scan(&a.ID, &link, &a.Source, &a.Title, &a.Date, &a.Category,
			&a.Content, &a.Image, &a.Bookmarked, &on); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		a.Link = link.String
		if on.Valid {
			t := on.Time
			a.BookmarkedOn = &t
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// SetBookmark records the bookmark flag of one article.
func (s *Store) SetBookmark(id int, bookmarked bool, on *time.Time) error {
	res, err := s.writeDB.Exec(
		`UPDATE articles SET bookmarked = ?, bookmarked_on = ? WHERE id = ?`,
		bookmarked, nullTime(on), id,
	)
	if err != nil {
		return fmt.Errorf("updating bookmark %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("updating bookmark %d: %w", id, ErrNotFound)
	}
	return nil
}

// Prune deletes feed articles fetched longer ago than retention. Catalog
// rows and bookmarked articles are kept.
func (s *Store) Prune(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	res, err := s.writeDB.Exec(
		`DELETE FROM articles WHERE link IS NOT NULL AND bookmarked = 0 AND fetched_at < ?`,
		cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("pruning articles: %w", err)
	}
	return res.RowsAffected()
}

// Stats reports the number of stored articles and the database file size.
func (s *Store) Stats(dbPath string) (count int, size int64, err error) {
	if err := s.readDB.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting articles: %w", err)
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, fmt.Errorf("stat %s: %w", dbPath, err)
	}
	return count, info.Size(), nil
}

const keyLastRefresh = "last_refresh"

func (s *Store) NeedsRefresh(interval time.Duration) bool {
	var value string
	if err := s.Get(keyLastRefresh, &value); err != nil {
		return true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return true
	}
	return time.Since(t) > interval
}

func (s *Store) SetLastRefresh() error {
	return s.Set(keyLastRefresh, time.Now().Format(time.RFC3339))
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
