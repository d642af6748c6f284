package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/auth"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/classify"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/config"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/feed"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/store"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/tui"
)

var errNotLoggedIn = errors.New("not logged in: run greenstream to sign in first")

var (
	flagCategories []string
	flagSources    []string
	flagDate       string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the dashboard directly",
	Long: `Skip the landing screen and open the dashboard for the logged-in user.

Filters given here are applied to All News on start, e.g.
  greenstream dashboard --category energy --source Reuters --date 2025-10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := startFilter(flagCategories, flagSources, flagDate)
		if err != nil {
			return err
		}
		return runApp(true, filter)
	},
}

func init() {
	dashboardCmd.Flags().StringSliceVar(&flagCategories, "category", nil, "preselect a category (energy, policy, tech, climate)")
	dashboardCmd.Flags().StringSliceVar(&flagSources, "source", nil, "preselect a source by name")
	dashboardCmd.Flags().StringVar(&flagDate, "date", "", "preselect a date prefix (YYYY-MM or YYYY-MM-DD)")
	dashboardCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "force refresh feeds before launching")
}

func runTUI(cmd *cobra.Command, args []string) error {
	return runApp(false, news.Filter{})
}

// startFilter resolves command-line filter flags into an All News filter.
func startFilter(categories, sources []string, date string) (news.Filter, error) {
	var f news.Filter
	for _, c := range categories {
		cat, err := classify.ResolveAlias(c)
		if err != nil {
			return news.Filter{}, err
		}
		f.Categories = append(f.Categories, string(cat))
	}
	f.Sources = append(f.Sources, sources...)
	f.Date = date
	return f, nil
}

func runApp(requireSession bool, filter news.Filter) error {
	db, err := store.Open(config.DataPath())
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	if len(cfg.EnabledSources()) > 0 && (flagRefresh || db.NeedsRefresh(cfg.RefreshDuration())) {
		fmt.Println("Fetching feeds...")
		if err := refreshFeeds(db); err != nil {
			return err
		}
	}

	svc := auth.NewService(db, logger)
	session, err := svc.Current()
	if err != nil {
		return err
	}
	if requireSession && session == nil {
		return errNotLoggedIn
	}

	logger.Info("starting ui", zap.Bool("logged_in", session != nil))
	return tui.Run(tui.RunOpts{
		Cfg:     cfg,
		DB:      db,
		Auth:    svc,
		Logger:  logger,
		Session: session,
		Filter:  filter,
	})
}

// refreshFeeds fetches every enabled source into the store and prunes
// expired feed articles.
func refreshFeeds(db *store.Store) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	result := feed.FetchAll(ctx, feed.NewRSSFetcher(), cfg.EnabledSources())
	cancel()

	for _, e := range result.Errors {
		fmt.Printf("  [warn] %v\n", e)
		logger.Warn("feed fetch failed", zap.Error(e))
	}

	if err := db.UpsertArticles(result.Articles); err != nil {
		return fmt.Errorf("storing articles: %w", err)
	}
	if err := db.SetLastRefresh(); err != nil {
		logger.Warn("recording refresh time", zap.Error(err))
	}

	// Auto-prune old articles after refresh
	pruned, err := db.Prune(cfg.RetentionDuration())
	if err != nil {
		logger.Warn("pruning after refresh", zap.Error(err))
	}
	logger.Info("feeds refreshed", zap.Int("fetched", len(result.Articles)), zap.Int64("pruned", pruned))
	return nil
}
