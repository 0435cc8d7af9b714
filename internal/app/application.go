package app

import (
	"fmt"
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriShell/internal/auth"
	"github.com/Rorical/RoriShell/internal/config"
	"github.com/Rorical/RoriShell/internal/dispatcher"
	"github.com/Rorical/RoriShell/internal/eventbus"
	"github.com/Rorical/RoriShell/internal/models"
	"github.com/Rorical/RoriShell/internal/notify"
	"github.com/Rorical/RoriShell/internal/router"
	"github.com/Rorical/RoriShell/internal/screens"
	"github.com/Rorical/RoriShell/internal/store"
	"github.com/Rorical/RoriShell/internal/theme"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	settings   config.Settings
	store      *store.Store
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	center     *notify.Center
	provider   *notify.Provider
	model      *Model
}

// NewApplication wires the shell for cfg. The state database lives next to
// the config file.
func NewApplication(cfg *config.Config, settings config.Settings) (*Application, error) {
	if err := cfg.Apply(settings); err != nil {
		return nil, err
	}
	client := cfg.Current()

	st, err := store.OpenInDir(filepath.Dir(cfg.Path()))
	if err != nil {
		return nil, fmt.Errorf("open state: %w", err)
	}

	resolver := newResolver(st, client, settings.Theme)

	authSvc := auth.New(st, auth.WithLatency(max(settings.LoginLatency, 0)))

	// Create event bus
	eb := eventbus.NewEventBus()

	// Create dispatcher
	disp := dispatcher.NewEventDispatcher(eb)

	center := notify.NewCenter(eb)
	provider := notify.NewProvider(notify.WithLogger(slog.Default()))

	appModel := &models.AppModel{
		Status:  "Ready",
		AppName: client.AppName,
	}
	initial := router.Login
	if sess, ok := authSvc.Restore(); ok {
		appModel.Session = &sess
		initial = router.Tabs
	}
	appModel.Route = initial

	deps := screens.Deps{
		Config: cfg,
		Theme:  resolver,
		Auth:   authSvc,
		Center: center,
		App:    appModel,
	}

	slog.Info("application ready", "client", cfg.ActiveClient, "theme", resolver.Current(), "route", initial)
	return &Application{
		config:     cfg,
		settings:   settings,
		store:      st,
		eventBus:   eb,
		dispatcher: disp,
		center:     center,
		provider:   provider,
		model:      NewModel(deps, provider, disp, router.New(initial)),
	}, nil
}

// newResolver picks the theme: an explicit name wins, then the stored one,
// then the client's dark mode hint.
func newResolver(st *store.Store, client config.Client, explicit string) *theme.Resolver {
	fallback := theme.Light
	if client.Theme.DarkMode {
		fallback = theme.Dark
	}
	r := theme.NewResolver(st, fallback)
	r.SetBrand(client.PrimaryColor)
	if explicit == "" {
		return r
	}
	name, err := theme.Parse(explicit)
	if err != nil {
		slog.Warn("ignoring theme setting", "theme", explicit, "err", err)
		return r
	}
	if err := r.Set(name); err != nil {
		slog.Warn("theme not saved", "err", err)
	}
	return r
}

// ProgramOptions are the Bubble Tea options for the current settings.
func (app *Application) ProgramOptions() []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !app.settings.NoMouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	return opts
}

func (app *Application) Start() error {
	// Start background services
	app.dispatcher.Start()
	app.center.Attach(app.provider)

	// Run UI
	p := tea.NewProgram(app.model, app.ProgramOptions()...)
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.center.Detach(app.provider)
	app.provider.Close()
	app.dispatcher.Stop()
	app.eventBus.Close()
	if err := app.store.Close(); err != nil {
		slog.Error("closing state", "err", err)
	}
}
