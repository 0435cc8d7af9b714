package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriShell/internal/dispatcher"
	"github.com/Rorical/RoriShell/internal/models"
	"github.com/Rorical/RoriShell/internal/router"
)

// HandleUpdate applies the app-wide part of msg. handled is false when msg
// still has to reach the notification layer and the screen.
func HandleUpdate(appModel *models.AppModel, msg tea.Msg, r *router.Router, capturing bool) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(appModel, msg, r, capturing)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil, false
	case TickMsg:
		return HandleTickMsg(appModel), true
	case router.ChangedMsg:
		HandleRouteChanged(appModel, msg)
		return nil, true
	case dispatcher.RequestMsg:
		HandleRequest(appModel, msg.Request, time.Now())
		return nil, false
	}
	return nil, false
}
