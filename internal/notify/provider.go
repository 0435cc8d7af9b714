package notify

import (
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriShell/internal/theme"
	"github.com/Rorical/RoriShell/ui/components"
)

type KeyMap struct {
	Prev       key.Binding
	Next       key.Binding
	Up         key.Binding
	Down       key.Binding
	Press      key.Binding
	Back       key.Binding
	CloseToast key.Binding
}

var DefaultKeyMap = KeyMap{
	Prev:       key.NewBinding(key.WithKeys("left", "shift+tab", "h"), key.WithHelp("←", "previous")),
	Next:       key.NewBinding(key.WithKeys("right", "tab", "l"), key.WithHelp("→", "next")),
	Up:         key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓", "down")),
	Press:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	CloseToast: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "close toast")),
}

var lastProviderID int64

type Option func(*Provider)

// WithTiming overrides the animation timings of every surface.
func WithTiming(toast, alert, sheet Timing) Option {
	return func(p *Provider) {
		p.toast.timing = toast
		p.alert.timing = alert
		p.sheet.timing = sheet
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.log = l
		}
	}
}

// Provider owns one toast, one alert and one action sheet slot and draws
// them over the screen in that stacking order: sheet, alert, toast.
type Provider struct {
	id  int
	log *slog.Logger

	toast *slot[ToastConfig]
	alert *slot[AlertConfig]
	sheet *slot[SheetConfig]

	alertCursor int
	sheetCursor int

	// hit boxes from the last View, in screen cells
	toastClose   components.Rect
	alertBox     components.Rect
	alertButtons []components.Rect
	sheetBox     components.Rect
	sheetButtons []components.Rect

	Keys KeyMap
}

func NewProvider(opts ...Option) *Provider {
	id := int(atomic.AddInt64(&lastProviderID, 1))
	p := &Provider{
		id:    id,
		log:   slog.Default(),
		toast: newSlot[ToastConfig](id, surfaceToast, ToastTiming),
		alert: newSlot[AlertConfig](id, surfaceAlert, AlertTiming),
		sheet: newSlot[SheetConfig](id, surfaceSheet, SheetTiming),
		Keys:  DefaultKeyMap,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) ID() int {
	return p.id
}

func (p *Provider) ShowToast(cfg ToastConfig) tea.Cmd {
	return p.toast.show(cfg.normalized())
}

func (p *Provider) HideToast() tea.Cmd {
	return p.toast.hide()
}

func (p *Provider) ShowAlert(cfg AlertConfig) tea.Cmd {
	return p.alert.show(cfg.normalized())
}

func (p *Provider) HideAlert() tea.Cmd {
	return p.alert.hide()
}

func (p *Provider) ShowActionSheet(cfg SheetConfig) tea.Cmd {
	return p.sheet.show(cfg)
}

func (p *Provider) HideActionSheet() tea.Cmd {
	return p.sheet.hide()
}

func (p *Provider) ToastPhase() Phase { return p.toast.phase }
func (p *Provider) AlertPhase() Phase { return p.alert.phase }
func (p *Provider) SheetPhase() Phase { return p.sheet.phase }

// Toast returns the toast on screen, if any.
func (p *Provider) Toast() (ToastConfig, bool) {
	return p.toast.current, p.toast.visible()
}

func (p *Provider) Alert() (AlertConfig, bool) {
	return p.alert.current, p.alert.visible()
}

func (p *Provider) ActionSheet() (SheetConfig, bool) {
	return p.sheet.current, p.sheet.visible()
}

// AlertSelection is the index of the highlighted alert button.
func (p *Provider) AlertSelection() int {
	return p.alertCursor
}

func (p *Provider) SheetSelection() int {
	return p.sheetCursor
}

// Capturing reports whether a modal surface owns keyboard and mouse input.
func (p *Provider) Capturing() bool {
	return p.alert.visible() || p.sheet.visible()
}

// PressAlertButton runs the callback of button i and dismisses the alert.
func (p *Provider) PressAlertButton(i int) tea.Cmd {
	if !p.alert.interactive() || i < 0 || i >= len(p.alert.current.Buttons) {
		return nil
	}
	b := p.alert.current.Buttons[i]
	p.log.Debug("alert button pressed", "provider", p.id, "button", b.Text)
	var cmd tea.Cmd
	if b.OnPress != nil {
		cmd = b.OnPress()
	}
	return tea.Batch(cmd, p.alert.hide())
}

func (p *Provider) PressSheetButton(i int) tea.Cmd {
	if !p.sheet.interactive() || i < 0 || i >= len(p.sheet.current.Buttons) {
		return nil
	}
	b := p.sheet.current.Buttons[i]
	p.log.Debug("action sheet button pressed", "provider", p.id, "button", b.Text)
	var cmd tea.Cmd
	if b.OnPress != nil {
		cmd = b.OnPress()
	}
	return tea.Batch(cmd, p.sheet.hide())
}

// Close is called when the provider is unmounted. Pending requests are
// dropped and timers already scheduled become no-ops.
func (p *Provider) Close() {
	p.toast.close()
	p.alert.close()
	p.sheet.close()
}

// Update handles provider messages, requests addressed to this provider and,
// while a surface is up, user input. handled is false when the message should
// go on to the screen below.
func (p *Provider) Update(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case applyMsg:
		if msg.owner != p.id {
			return false, nil
		}
		switch msg.kind {
		case surfaceToast:
			return true, p.toast.apply(msg.gen)
		case surfaceAlert:
			cmd := p.alert.apply(msg.gen)
			if cmd != nil {
				p.alertCursor = defaultAlertButton(p.alert.current.Buttons)
			}
			return true, cmd
		case surfaceSheet:
			cmd := p.sheet.apply(msg.gen)
			if cmd != nil {
				if order := sheetOrder(p.sheet.current.Buttons); len(order) > 0 {
					p.sheetCursor = order[0]
				}
			}
			return true, cmd
		}
	case frameMsg:
		if msg.owner != p.id {
			return false, nil
		}
		switch msg.kind {
		case surfaceToast:
			return true, p.toast.advance(msg.gen)
		case surfaceAlert:
			return true, p.alert.advance(msg.gen)
		case surfaceSheet:
			return true, p.sheet.advance(msg.gen)
		}
	case holdMsg:
		if msg.owner != p.id {
			return false, nil
		}
		if msg.kind == surfaceToast {
			return true, p.toast.expire(msg.gen)
		}
		return true, nil
	case ToastRequest:
		if msg.Target != p.id {
			return false, nil
		}
		return true, p.ShowToast(msg.Config)
	case AlertRequest:
		if msg.Target != p.id {
			return false, nil
		}
		return true, p.ShowAlert(msg.Config)
	case SheetRequest:
		if msg.Target != p.id {
			return false, nil
		}
		return true, p.ShowActionSheet(msg.Config)
	case tea.KeyMsg:
		return p.handleKey(msg)
	case tea.MouseMsg:
		return p.handleMouse(msg)
	}
	return false, nil
}

func (p *Provider) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case p.alert.visible():
		if !p.alert.interactive() {
			return true, nil
		}
		order := alertOrder(p.alert.current.Buttons)
		switch {
		case key.Matches(msg, p.Keys.Back):
			return true, p.HideAlert()
		case key.Matches(msg, p.Keys.Press):
			return true, p.PressAlertButton(p.alertCursor)
		case key.Matches(msg, p.Keys.Prev):
			p.alertCursor = moveCursor(order, p.alertCursor, -1)
		case key.Matches(msg, p.Keys.Next):
			p.alertCursor = moveCursor(order, p.alertCursor, 1)
		}
		return true, nil
	case p.sheet.visible():
		if !p.sheet.interactive() {
			return true, nil
		}
		order := sheetOrder(p.sheet.current.Buttons)
		switch {
		case key.Matches(msg, p.Keys.Back):
			return true, p.HideActionSheet()
		case key.Matches(msg, p.Keys.Press):
			return true, p.PressSheetButton(p.sheetCursor)
		case key.Matches(msg, p.Keys.Up):
			p.sheetCursor = moveCursor(order, p.sheetCursor, -1)
		case key.Matches(msg, p.Keys.Down):
			p.sheetCursor = moveCursor(order, p.sheetCursor, 1)
		}
		return true, nil
	case p.toast.visible() && key.Matches(msg, p.Keys.CloseToast):
		return true, p.HideToast()
	}
	return false, nil
}

func (p *Provider) handleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if press && p.toast.interactive() && p.toastClose.Contains(msg.X, msg.Y) {
		return true, p.HideToast()
	}
	switch {
	case p.alert.visible():
		if !press || !p.alert.interactive() {
			return true, nil
		}
		for i, r := range p.alertButtons {
			if r.Contains(msg.X, msg.Y) {
				return true, p.PressAlertButton(i)
			}
		}
		if !p.alertBox.Contains(msg.X, msg.Y) && p.alert.current.Dismissible {
			return true, p.HideAlert()
		}
		return true, nil
	case p.sheet.visible():
		if !press || !p.sheet.interactive() {
			return true, nil
		}
		for i, r := range p.sheetButtons {
			if r.Contains(msg.X, msg.Y) {
				return true, p.PressSheetButton(i)
			}
		}
		if !p.sheetBox.Contains(msg.X, msg.Y) {
			return true, p.HideActionSheet()
		}
		return true, nil
	}
	return false, nil
}

// View draws the visible surfaces over base, which is padded to the full
// width x height canvas.
func (p *Provider) View(base string, width, height int, pal theme.Palette) string {
	out := components.Canvas(base, width, height)
	p.alertButtons, p.sheetButtons = nil, nil
	p.alertBox, p.sheetBox, p.toastClose = components.Rect{}, components.Rect{}, components.Rect{}

	if p.sheet.visible() {
		cfg := p.sheet.current
		layer, rects := components.RenderActionSheet(pal, cfg.Title, cfg.Message,
			buttonViews(cfg.Buttons), p.sheetCursor, width)
		w, h := components.Width(layer), components.Height(layer)
		shown := int(math.Ceil(p.sheet.progress * float64(h)))
		x := max((width-w)/2, 0)
		y := height - shown
		out = components.Place(out, layer, x, y, width, height)
		p.sheetBox = components.Rect{X: x, Y: y, W: w, H: h}
		p.sheetButtons = offsetAll(rects, x, y)
	}

	if p.alert.visible() {
		cfg := p.alert.current
		layer, rects := components.RenderAlert(pal, cfg.Title, cfg.Message,
			buttonViews(cfg.Buttons), p.alertCursor, width, p.alert.phase == PhaseShown)
		var box components.Rect
		out, box = components.Center(out, layer, width, height)
		p.alertBox = box
		p.alertButtons = offsetAll(rects, box.X, box.Y)
	}

	if p.toast.visible() {
		cfg := p.toast.current
		layer, closeRect := components.RenderToast(cfg.Message, string(cfg.Type), min(width-2, 60))
		w, h := components.Width(layer), components.Height(layer)
		x := max((width-w)/2, 0)
		hidden := int(math.Round((1 - p.toast.progress) * float64(h+1)))
		y := 1 - hidden
		if cfg.Position == ToastBottom {
			y = height - h - 1 + hidden
		}
		out = components.Place(out, layer, x, y, width, height)
		p.toastClose = closeRect.Offset(x, y)
	}
	return out
}

func offsetAll(rects []components.Rect, dx, dy int) []components.Rect {
	out := make([]components.Rect, len(rects))
	for i, r := range rects {
		out[i] = r.Offset(dx, dy)
	}
	return out
}

// defaultAlertButton highlights the cancel button when there is one.
func defaultAlertButton(buttons []Button) int {
	for i, b := range buttons {
		if b.Style == StyleCancel {
			return i
		}
	}
	return 0
}

// moveCursor steps through buttons in display order, wrapping around.
func moveCursor(order []int, current, delta int) int {
	if len(order) == 0 {
		return 0
	}
	pos := 0
	for i, idx := range order {
		if idx == current {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(order)) % len(order)
	return order[pos]
}
