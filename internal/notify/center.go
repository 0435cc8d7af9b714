package notify

import (
	"log/slog"

	"github.com/Rorical/RoriShell/internal/eventbus"
)

type ToastRequest struct {
	Target int
	Config ToastConfig
}

type AlertRequest struct {
	Target int
	Config AlertConfig
}

type SheetRequest struct {
	Target int
	Config SheetConfig
}

func (ToastRequest) Request() {}
func (AlertRequest) Request() {}
func (SheetRequest) Request() {}

// Center lets code outside a provider's Update raise notifications. Requests
// travel over the event bus and are applied by the attached provider on a
// later tick. With nothing attached every call is a no-op.
type Center struct {
	bus *eventbus.EventBus
}

func NewCenter(bus *eventbus.EventBus) *Center {
	return &Center{bus: bus}
}

// Attach makes p the receiver of every request published from now on.
func (c *Center) Attach(p *Provider) {
	c.bus.Attach(p.ID())
}

// Detach is called when p unmounts.
func (c *Center) Detach(p *Provider) {
	c.bus.Detach(p.ID())
}

// Alert shows an alert with the given buttons, or a single OK button.
func (c *Center) Alert(title, message string, buttons ...Button) error {
	return c.AlertWith(AlertConfig{Title: title, Message: message, Buttons: buttons})
}

func (c *Center) AlertWith(cfg AlertConfig) error {
	return c.publish(func(target int) eventbus.Request {
		return AlertRequest{Target: target, Config: cfg}
	})
}

func (c *Center) Toast(cfg ToastConfig) error {
	return c.publish(func(target int) eventbus.Request {
		return ToastRequest{Target: target, Config: cfg}
	})
}

func (c *Center) ActionSheet(cfg SheetConfig) error {
	return c.publish(func(target int) eventbus.Request {
		return SheetRequest{Target: target, Config: cfg}
	})
}

func (c *Center) publish(build func(target int) eventbus.Request) error {
	target, ok := c.bus.Attached()
	if !ok {
		slog.Debug("notification skipped, no provider attached")
		return eventbus.ErrDetached
	}
	return c.bus.Publish(build(target))
}
