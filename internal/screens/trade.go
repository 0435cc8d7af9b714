package screens

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriShell/internal/config"
	"github.com/Rorical/RoriShell/internal/notify"
	"github.com/Rorical/RoriShell/internal/router"
	"github.com/Rorical/RoriShell/ui/components"
	"github.com/Rorical/RoriShell/ui/styles"
)

var symbolLabels = map[string]string{
	"BTC":   "Bitcoin (BTC)",
	"ETH":   "Ethereum (ETH)",
	"BNB":   "Binance Coin (BNB)",
	"ADA":   "Cardano (ADA)",
	"SOL":   "Solana (SOL)",
	"MATIC": "Polygon (MATIC)",
	"DOT":   "Polkadot (DOT)",
	"USDT":  "Tether (USDT)",
}

var tradeTypes = []string{"Buy", "Sell"}

const (
	tradeSymbol = iota
	tradeType
	tradePrice
	tradeSubmit
	tradeCancel
	tradeFields
)

type dropdown struct {
	options  []string
	selected int // -1 until something is picked
	cursor   int
	open     bool
}

func (d *dropdown) value() string {
	if d.selected < 0 || d.selected >= len(d.options) {
		return ""
	}
	return d.options[d.selected]
}

// handle moves the dropdown for one key. It reports whether the key was used.
func (d *dropdown) handle(msg tea.KeyMsg) bool {
	switch {
	case !d.open && key.Matches(msg, listKeys.Press):
		d.open = true
		d.cursor = max(d.selected, 0)
	case d.open && key.Matches(msg, listKeys.Up):
		d.cursor = max(d.cursor-1, 0)
	case d.open && key.Matches(msg, listKeys.Down):
		d.cursor = min(d.cursor+1, len(d.options)-1)
	case d.open && key.Matches(msg, listKeys.Press):
		d.selected = d.cursor
		d.open = false
	case d.open && msg.String() == "esc":
		d.open = false
	default:
		return false
	}
	return true
}

// Trade is the order form.
type Trade struct {
	d      Deps
	symbol dropdown
	kind   dropdown
	price  textinput.Model
	focus  int
	rows   [tradeFields]components.Rect
}

func NewTrade(d Deps) *Trade {
	price := textinput.New()
	price.Placeholder = "0.00"
	price.Prompt = "$ "
	price.CharLimit = 16

	return &Trade{
		d:     d,
		price: price,
		symbol: dropdown{
			options:  d.client().Trading.SupportedAssets,
			selected: -1,
		},
		kind: dropdown{options: tradeTypes, selected: -1},
	}
}

func (t *Trade) Title() string { return "Trade" }

func (t *Trade) Init() tea.Cmd { return nil }

func (t *Trade) enabled() bool {
	return t.d.Config.IsFeatureEnabled(config.FeatureTrading)
}

// Capturing is true while a dropdown is open so esc closes it instead of
// leaving the screen.
func (t *Trade) Capturing() bool {
	return t.symbol.open || t.kind.open
}

// SetOrder fills the form in one go.
func (t *Trade) SetOrder(symbol, side, price string) {
	t.symbol.selected = indexOf(t.symbol.options, symbol)
	t.kind.selected = indexOf(t.kind.options, side)
	t.price.SetValue(price)
}

func indexOf(options []string, v string) int {
	for i, o := range options {
		if strings.EqualFold(o, v) {
			return i
		}
	}
	return -1
}

func (t *Trade) Update(msg tea.Msg) tea.Cmd {
	if !t.enabled() {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch t.focus {
		case tradeSymbol:
			if t.symbol.handle(msg) {
				return nil
			}
		case tradeType:
			if t.kind.handle(msg) {
				return nil
			}
		}
		switch msg.String() {
		case "tab", "down":
			return t.setFocus((t.focus + 1) % tradeFields)
		case "shift+tab", "up":
			return t.setFocus((t.focus + tradeFields - 1) % tradeFields)
		case "enter":
			switch t.focus {
			case tradePrice, tradeSubmit:
				return t.submit()
			case tradeCancel:
				t.reset()
				return router.BackCmd()
			}
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		for i, r := range t.rows {
			if !r.Contains(msg.X, msg.Y) {
				continue
			}
			cmd := t.setFocus(i)
			switch i {
			case tradeSymbol:
				t.symbol.open = !t.symbol.open
			case tradeType:
				t.kind.open = !t.kind.open
			case tradeSubmit:
				return t.submit()
			case tradeCancel:
				t.reset()
				return router.BackCmd()
			}
			return cmd
		}
		return nil
	}
	if t.focus == tradePrice {
		var cmd tea.Cmd
		t.price, cmd = t.price.Update(msg)
		return cmd
	}
	return nil
}

func (t *Trade) setFocus(i int) tea.Cmd {
	t.focus = i
	t.symbol.open = false
	t.kind.open = false
	if i == tradePrice {
		return t.price.Focus()
	}
	t.price.Blur()
	return nil
}

func (t *Trade) reset() {
	t.symbol.selected, t.symbol.open = -1, false
	t.kind.selected, t.kind.open = -1, false
	t.price.SetValue("")
	t.setFocus(tradeSymbol)
}

// submit validates the order against the client's limits and confirms it.
func (t *Trade) submit() tea.Cmd {
	symbol, side, raw := t.symbol.value(), t.kind.value(), strings.TrimSpace(t.price.Value())
	if symbol == "" || side == "" || raw == "" {
		t.d.alert("Error", "Please fill in all fields")
		return nil
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price <= 0 {
		t.d.alert("Error", "Please enter a valid price")
		return nil
	}
	client := t.d.client()
	if !client.SupportsAsset(symbol) {
		t.d.alert("Error", symbol+" is not available on "+client.AppName)
		return nil
	}
	if !client.ValidAmount(price) {
		t.d.alert("Error", fmt.Sprintf("Amount must be between $%s and $%s",
			money(client.Trading.MinTradeAmount), money(client.Trading.MaxTradeAmount)))
		return nil
	}

	t.d.alert("Trade Submitted",
		fmt.Sprintf("%s order for %s at $%s has been submitted successfully!", side, symbol, raw),
		notify.Button{Text: "OK", OnPress: func() tea.Cmd {
			t.reset()
			t.d.toast(notify.ToastSuccess, side+" "+symbol+" order placed")
			return router.BackCmd()
		}},
	)
	return nil
}

// summary is the order card shown once every field is filled in.
func (t *Trade) summary(width int) string {
	symbol, side, price := t.symbol.value(), t.kind.value(), strings.TrimSpace(t.price.Value())
	if symbol == "" || side == "" || price == "" {
		return ""
	}
	p := t.d.palette()
	currency := "USD"
	if fiat := t.d.client().Trading.SupportedFiatCurrencies; len(fiat) > 0 {
		currency = fiat[0]
	}
	if l, ok := symbolLabels[symbol]; ok {
		symbol = l
	}
	sideStyle := lipgloss.NewStyle().Bold(true).Foreground(p.SuccessText)
	if side == "Sell" {
		sideStyle = sideStyle.Foreground(p.ErrorText)
	}

	inner := max(width-6, 10)
	line := func(label, value string) string {
		l := styles.SubtitleStyle(p).Render(label)
		gap := max(inner-components.Width(l)-components.Width(value), 1)
		return l + strings.Repeat(" ", gap) + value
	}
	value := lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	return styles.CardStyle(p, width-2).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle(p).Render("Order Summary"),
		line("Cryptocurrency:", value.Render(symbol)),
		line("Type:", sideStyle.Render(side)),
		line("Price:", value.Render("$"+price+" "+currency)),
	))
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (t *Trade) View(width, height int) string {
	p := t.d.palette()
	client := t.d.client()
	if !t.enabled() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			styles.SubtitleStyle(p).Render("Trading is not available for "+client.AppName))
	}
	formWidth := min(max(width-2, 24), 60)

	labels := make([]string, len(t.symbol.options))
	for i, s := range t.symbol.options {
		labels[i] = s
		if l, ok := symbolLabels[s]; ok {
			labels[i] = l
		}
	}
	symbolValue := ""
	if t.symbol.selected >= 0 {
		symbolValue = labels[t.symbol.selected]
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle(p).Render("↗ Trade Cryptocurrency"),
		styles.CardStyle(p, formWidth-2).Render(styles.SubtitleStyle(p).Render(
			"Select your cryptocurrency, choose buy or sell, and enter your desired price to place a trade order.")),
		styles.SubtitleStyle(p).Render(fmt.Sprintf("Limits: $%s to $%s",
			money(client.Trading.MinTradeAmount), money(client.Trading.MaxTradeAmount))),
		"",
	)

	fields := []string{
		components.RenderDropdown(p, components.DropdownView{
			Label:       "Select Cryptocurrency",
			Value:       symbolValue,
			Placeholder: "Choose a cryptocurrency",
			Options:     labels,
			Open:        t.symbol.open,
			Cursor:      t.symbol.cursor,
			Focused:     t.focus == tradeSymbol,
			Width:       formWidth,
		}),
		components.RenderDropdown(p, components.DropdownView{
			Label:       "Trade Type",
			Value:       t.kind.value(),
			Placeholder: "Buy or sell",
			Options:     t.kind.options,
			Open:        t.kind.open,
			Cursor:      t.kind.cursor,
			Focused:     t.focus == tradeType,
			Width:       formWidth,
		}),
		components.RenderInput(p, "Price (USD)", t.price.View(), formWidth, t.focus == tradePrice),
	}
	submit := styles.ButtonStyle(p, t.focus == tradeSubmit).Render("Submit Trade")
	cancel := styles.ButtonStyle(p, t.focus == tradeCancel).Render("Cancel")

	y := components.Height(header)
	for i, f := range fields {
		h := components.Height(f)
		t.rows[i] = components.Rect{X: 0, Y: y, W: formWidth, H: h}
		y += h
	}
	if summary := t.summary(formWidth); summary != "" {
		fields = append(fields, summary)
		y += components.Height(summary)
	}
	t.rows[tradeSubmit] = components.Rect{X: 0, Y: y, W: components.Width(submit), H: components.Height(submit)}
	t.rows[tradeCancel] = components.Rect{X: components.Width(submit) + 1, Y: y, W: components.Width(cancel), H: components.Height(cancel)}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top, submit, " ", cancel)
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, append(fields, buttons)...)...)
}
