package dispatcher

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriShell/internal/eventbus"
)

// RequestMsg wraps one request taken off the bus. The receiver must call
// Listen again to get the next one.
type RequestMsg struct {
	Request eventbus.Request
}

// ClosedMsg is delivered once the bus is closed or the dispatcher stopped.
type ClosedMsg struct{}

// EventDispatcher moves requests from the event bus into the Bubble Tea loop.
type EventDispatcher struct {
	eventBus *eventbus.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewEventDispatcher(eventBus *eventbus.EventBus) *EventDispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &EventDispatcher{
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start installs the bus error logger.
func (ed *EventDispatcher) Start() {
	ed.eventBus.SetErrorCallback(func(err eventbus.EventBusError) {
		slog.Warn("notification request dropped", "op", err.Operation, "err", err.Err)
	})
}

func (ed *EventDispatcher) Stop() {
	ed.cancel()
}

func (ed *EventDispatcher) GetEventBus() *eventbus.EventBus {
	return ed.eventBus
}

// Listen waits for the next request on the bus.
func (ed *EventDispatcher) Listen() tea.Cmd {
	requests := ed.eventBus.Requests()
	ctx := ed.ctx
	return func() tea.Msg {
		select {
		case req, ok := <-requests:
			if !ok {
				return ClosedMsg{}
			}
			return RequestMsg{Request: req}
		case <-ctx.Done():
			return ClosedMsg{}
		}
	}
}
