package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/auth"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/config"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/store"
)

type screen int

const (
	screenLanding screen = iota
	screenDashboard
)

// App switches between the landing screen and the dashboard. A successful
// login is the only way from the first to the second.
type App struct {
	cfg    *config.Config
	db     *store.Store
	auth   *auth.Service
	logger *zap.Logger

	articles []news.Article
	filter   news.Filter

	screen    screen
	landing   landingModel
	dashboard dashboardModel

	width  int
	height int
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg    *config.Config
	DB     *store.Store
	Auth   *auth.Service
	Logger *zap.Logger

	// Session skips the landing screen when someone is already logged in.
	Session *auth.Session
	// Filter preselects All News filters.
	Filter news.Filter
}

func NewApp(opts RunOpts) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	articles, err := opts.DB.Articles()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      opts.Cfg,
		db:       opts.DB,
		auth:     opts.Auth,
		logger:   logger,
		articles: articles,
		filter:   opts.Filter,
		landing:  newLanding(opts.Auth, articles),
	}
	if opts.Session != nil {
		if err := a.enterDashboard(opts.Session); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// enterDashboard loads the stored preferences and builds a fresh dashboard
// over the current article list. Without saved preferences the profile is
// named after the session's user.
func (a *App) enterDashboard(session *auth.Session) error {
	fallback := news.DefaultPreferences()
	if session != nil && session.Name != "" {
		fallback.Name = session.Name
	}
	prefs, err := a.db.Preferences(fallback)
	if err != nil {
		return err
	}
	a.dashboard = newDashboard(dashboardOpts{
		cfg:      a.cfg,
		db:       a.db,
		auth:     a.auth,
		logger:   a.logger,
		articles: a.articles,
		prefs:    prefs,
		filter:   a.filter,
	})
	a.dashboard.width, a.dashboard.height = a.width, a.height
	a.screen = screenDashboard
	return nil
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.width, a.dashboard.height = msg.Width, msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case loginResultMsg:
		if msg.err == nil && msg.session != nil {
			a.logger.Info("entering dashboard", zap.String("email", msg.session.Email))
			if err := a.enterDashboard(msg.session); err != nil {
				a.landing.err = err.Error()
			}
			return a, nil
		}

	case loggedOutMsg:
		// Keep bookmarks and refreshed articles from this session.
		a.articles = a.dashboard.state.Articles
		a.landing = newLanding(a.auth, a.articles)
		a.screen = screenLanding
		return a, nil
	}

	var cmd tea.Cmd
	switch a.screen {
	case screenDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	default:
		a.landing, cmd = a.landing.update(msg)
	}
	return a, cmd
}

func (a *App) View() string {
	if a.screen == screenDashboard {
		return a.dashboard.view()
	}
	if a.width == 0 {
		return ""
	}
	return a.landing.viewString(a.width, a.height)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
