package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriShell/internal/eventbus"
	"github.com/Rorical/RoriShell/internal/models"
	"github.com/Rorical/RoriShell/internal/notify"
	"github.com/Rorical/RoriShell/internal/router"
)

// HandleKeyMsg handles the keys that work on every screen. handled is false
// when the key should go on to the screen.
//
// capturing is true while the screen has an open popup of its own; esc then
// belongs to the screen.
func HandleKeyMsg(appModel *models.AppModel, keyMsg tea.KeyMsg, r *router.Router, capturing bool) (tea.Cmd, bool) {
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit, true
	case "esc":
		if capturing || r.Depth() < 2 {
			return nil, false
		}
		return router.BackCmd(), true
	}
	return nil, false
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	// Only handle UI animations - loading dots
	if appModel.Loading {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	} else {
		appModel.LoadingDots = 0
	}
	return TickCmd()
}

// HandleRouteChanged records the new route and resets the status line.
func HandleRouteChanged(appModel *models.AppModel, changed router.ChangedMsg) {
	appModel.Route = changed.Path
	appModel.Loading = false
	appModel.SetStatus("Ready")
}

// HandleRequest adds a notification request to the history.
func HandleRequest(appModel *models.AppModel, req eventbus.Request, now time.Time) {
	switch req := req.(type) {
	case notify.ToastRequest:
		appModel.Record(models.Message{
			Content: req.Config.Message,
			Type:    models.Toast,
			Level:   string(req.Config.Type),
			At:      now,
		})
	case notify.AlertRequest:
		content := req.Config.Title
		if req.Config.Message != "" {
			content += ": " + req.Config.Message
		}
		appModel.Record(models.Message{Content: content, Type: models.Alert, At: now})
	case notify.SheetRequest:
		appModel.Record(models.Message{Content: req.Config.Title, Type: models.ActionSheet, At: now})
	}
}
