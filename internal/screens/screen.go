// Package screens holds the routed screens of the shell. Each screen is a
// small Bubble Tea model that draws into the body area between the header
// and the status line and raises notifications through the Center.
package screens

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriShell/internal/auth"
	"github.com/Rorical/RoriShell/internal/config"
	"github.com/Rorical/RoriShell/internal/models"
	"github.com/Rorical/RoriShell/internal/notify"
	"github.com/Rorical/RoriShell/internal/router"
	"github.com/Rorical/RoriShell/internal/theme"
)

// Screen is one routed page. Mouse coordinates reaching Update are relative
// to the top-left corner of the body area.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	Title() string
}

// Capturer is implemented by screens with popups of their own that need esc.
type Capturer interface {
	Capturing() bool
}

type listKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Press key.Binding
}

// listKeys move the cursor of the simple pick lists on Home and Explore.
var listKeys = listKeyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
}

// Deps are the collaborators every screen may use.
type Deps struct {
	Config *config.Config
	Theme  *theme.Resolver
	Auth   *auth.Service
	Center *notify.Center
	App    *models.AppModel
}

func (d Deps) palette() theme.Palette {
	return d.Theme.Palette()
}

func (d Deps) client() config.Client {
	return d.Config.Current()
}

// alert raises an alert. A missing provider only loses the alert.
func (d Deps) alert(title, message string, buttons ...notify.Button) {
	if err := d.Center.Alert(title, message, buttons...); err != nil {
		slog.Debug("alert not shown", "title", title, "err", err)
	}
}

func (d Deps) toast(kind notify.ToastType, message string) {
	if err := d.Center.Toast(notify.ToastConfig{Message: message, Type: kind}); err != nil {
		slog.Debug("toast not shown", "message", message, "err", err)
	}
}

func (d Deps) sheet(cfg notify.SheetConfig) {
	if err := d.Center.ActionSheet(cfg); err != nil {
		slog.Debug("action sheet not shown", "title", cfg.Title, "err", err)
	}
}

// New builds the screen mounted at path. Unknown paths get the login screen.
func New(path string, d Deps) Screen {
	switch path {
	case router.Tabs:
		return NewTabs(d)
	case router.Trade:
		return NewTrade(d)
	case router.Chart:
		return NewChart(d)
	case router.Help:
		return NewHelp(d)
	}
	return NewLogin(d)
}
