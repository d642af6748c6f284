package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/auth"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/config"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/store"
)

var flagPruneOlderThan string

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old feed articles from the local store",
	Long: `Delete fetched feed articles older than the retention period and reclaim disk space.
Built-in articles and bookmarked articles are always kept.

Uses the retention value from config (default: 30d) unless overridden with --older-than.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.Open(config.DataPath())
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer db.Close()

		retention := cfg.RetentionDuration()
		if flagPruneOlderThan != "" {
			d, err := config.ParseDuration(flagPruneOlderThan)
			if err != nil {
				return fmt.Errorf("invalid --older-than value: %w", err)
			}
			retention = d
		}

		deleted, err := db.Prune(retention)
		if err != nil {
			return fmt.Errorf("pruning: %w", err)
		}

		if deleted == 0 {
			fmt.Println("Nothing to prune.")
		} else {
			fmt.Printf("Pruned %d article(s) older than %s.\n", deleted, formatDuration(retention))
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.DataPath()
		db, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer db.Close()

		count, size, err := db.Stats(dbPath)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}
		articles, err := db.Articles()
		if err != nil {
			return fmt.Errorf("reading articles: %w", err)
		}
		keys, err := db.Keys()
		if err != nil {
			return fmt.Errorf("reading keys: %w", err)
		}

		fmt.Printf("Store: %s\n", dbPath)
		fmt.Printf("Articles: %d (%d bookmarked)\n", count, len(news.Bookmarks(articles, "")))
		fmt.Printf("Sources: %s\n", strings.Join(news.Sources(articles), ", "))
		fmt.Printf("Keys: %s\n", strings.Join(keys, ", "))
		fmt.Printf("Size: %s\n", formatBytes(size))
		return nil
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch enabled feed sources into the local store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(cfg.EnabledSources()) == 0 {
			fmt.Printf("No feed sources enabled. Enable some in %s.\n", config.DefaultConfigPath())
			return nil
		}
		db, err := store.Open(config.DataPath())
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer db.Close()

		before, err := db.Articles()
		if err != nil {
			return fmt.Errorf("reading articles: %w", err)
		}
		if err := refreshFeeds(db); err != nil {
			return err
		}
		after, err := db.Articles()
		if err != nil {
			return fmt.Errorf("reading articles: %w", err)
		}
		fmt.Printf("Refreshed %s: %d new article(s).\n", strings.Join(cfg.SourceNames(), ", "), len(after)-len(before))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out the current user",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.Open(config.DataPath())
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer db.Close()

		svc := auth.NewService(db, logger)
		session, err := svc.Current()
		if err != nil {
			return err
		}
		if session == nil {
			fmt.Println("Not logged in.")
			return nil
		}
		if err := svc.Logout(); err != nil {
			return err
		}
		fmt.Printf("Logged out %s.\n", session.Email)
		return nil
	},
}

func init() {
	pruneCmd.Flags().StringVar(&flagPruneOlderThan, "older-than", "", "override retention period (e.g., 30d, 720h)")
}

// formatDuration prints whole days, falling back to hours under a day.
func formatDuration(d time.Duration) string {
	if days := d / (24 * time.Hour); days > 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dh", d/time.Hour)
}

func formatBytes(b int64) string {
	if b < 0 {
		b = 0
	}
	return humanize.IBytes(uint64(b))
}
