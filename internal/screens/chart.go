package screens

import (
	"fmt"
	"math"
	"slices"
	"strings"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriShell/internal/notify"
	"github.com/Rorical/RoriShell/ui/styles"
)

type chartSymbol struct {
	Symbol string
	Name   string
}

var chartSymbols = []chartSymbol{
	{"AAPL", "Apple Inc."},
	{"GOOGL", "Alphabet Inc."},
	{"MSFT", "Microsoft Corp."},
	{"TSLA", "Tesla Inc."},
	{"AMZN", "Amazon.com Inc."},
	{"NVDA", "NVIDIA Corp."},
}

var timeframes = []string{"1m", "5m", "15m", "1H", "4H", "1D", "1W", "1M"}

type indicator struct {
	Key  string
	Name string
}

var indicators = []indicator{
	{"MA", "Moving Average"},
	{"EMA", "EMA"},
	{"RSI", "RSI"},
	{"MACD", "MACD"},
	{"BB", "Bollinger Bands"},
	{"Volume", "Volume"},
	{"Stoch", "Stochastic"},
	{"ATR", "ATR"},
}

const (
	chartPoints     = 90
	indicatorPeriod = 14
)

type ChartKeyMap struct {
	NextSymbol    key.Binding
	PrevSymbol    key.Binding
	NextTimeframe key.Binding
	PrevTimeframe key.Binding
	Indicators    key.Binding
	Fullscreen    key.Binding
}

var DefaultChartKeyMap = ChartKeyMap{
	NextSymbol:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next symbol")),
	PrevSymbol:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous symbol")),
	NextTimeframe: key.NewBinding(key.WithKeys("]", "up"), key.WithHelp("]", "longer timeframe")),
	PrevTimeframe: key.NewBinding(key.WithKeys("[", "down"), key.WithHelp("[", "shorter timeframe")),
	Indicators:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "indicators")),
	Fullscreen:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
}

// Chart draws a price chart for one symbol and timeframe.
type Chart struct {
	d          Deps
	symbol     int
	timeframe  int
	active     []string
	fullscreen bool

	Keys ChartKeyMap
}

func NewChart(d Deps) *Chart {
	return &Chart{
		d:         d,
		timeframe: slices.Index(timeframes, "1D"),
		active:    []string{"MA", "RSI"},
		Keys:      DefaultChartKeyMap,
	}
}

func (c *Chart) Title() string { return "Chart" }

func (c *Chart) Init() tea.Cmd { return nil }

func (c *Chart) Symbol() string { return chartSymbols[c.symbol].Symbol }

func (c *Chart) Timeframe() string { return timeframes[c.timeframe] }

func (c *Chart) Indicators() []string { return c.active }

// ToggleIndicator switches one indicator on or off.
func (c *Chart) ToggleIndicator(k string) {
	if i := slices.Index(c.active, k); i >= 0 {
		c.active = slices.Delete(c.active, i, i+1)
		return
	}
	c.active = append(c.active, k)
}

func (c *Chart) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, c.Keys.NextSymbol):
		c.symbol = (c.symbol + 1) % len(chartSymbols)
	case key.Matches(km, c.Keys.PrevSymbol):
		c.symbol = (c.symbol + len(chartSymbols) - 1) % len(chartSymbols)
	case key.Matches(km, c.Keys.NextTimeframe):
		c.timeframe = min(c.timeframe+1, len(timeframes)-1)
	case key.Matches(km, c.Keys.PrevTimeframe):
		c.timeframe = max(c.timeframe-1, 0)
	case key.Matches(km, c.Keys.Fullscreen):
		c.fullscreen = !c.fullscreen
	case key.Matches(km, c.Keys.Indicators):
		c.chooseIndicators()
	}
	return nil
}

func (c *Chart) chooseIndicators() {
	buttons := make([]notify.Button, 0, len(indicators)+1)
	for _, ind := range indicators {
		mark := "  "
		if slices.Contains(c.active, ind.Key) {
			mark = "✓ "
		}
		buttons = append(buttons, notify.Button{Text: mark + ind.Name, OnPress: func() tea.Cmd {
			c.ToggleIndicator(ind.Key)
			return nil
		}})
	}
	buttons = append(buttons, notify.Button{Text: "Done", Style: notify.StyleCancel})
	c.d.sheet(notify.SheetConfig{Title: "Indicators", Buttons: buttons})
}

func (c *Chart) View(width, height int) string {
	p := c.d.palette()
	sym := chartSymbols[c.symbol]
	points := Series(sym.Symbol, c.Timeframe(), chartPoints)
	values := closes(points)

	last, first := values[len(values)-1], values[0]
	change := (last - first) / first * 100
	changeStyle := lipgloss.NewStyle().Foreground(p.SuccessText)
	if change < 0 {
		changeStyle = changeStyle.Foreground(p.ErrorText)
	}

	var top []string
	if !c.fullscreen {
		tfs := make([]string, len(timeframes))
		for i, tf := range timeframes {
			tfs[i] = styles.SubtitleStyle(p).Render(tf)
			if i == c.timeframe {
				tfs[i] = styles.AccentStyle(p).Render("[" + tf + "]")
			}
		}
		top = []string{
			styles.TitleStyle(p).Render(sym.Symbol) + "  " + styles.SubtitleStyle(p).Render(sym.Name) +
				"  " + fmt.Sprintf("$%.2f ", last) + changeStyle.Render(fmt.Sprintf("%+.2f%%", change)),
			strings.Join(tfs, " "),
		}
	}
	legend := c.legend(values)
	help := styles.SubtitleStyle(p).Render("←/→ symbol · [/] timeframe · i indicators · f fullscreen")

	chartH := max(height-len(top)-2, 4)
	chart := tslc.New(max(width, 20), chartH)
	chart.SetStyle(lipgloss.NewStyle().Foreground(p.SelectedButton))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(p.Border)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(p.SecondaryText)

	lo, hi := slices.Min(values), slices.Max(values)
	pad := (hi - lo) * 0.1
	chart.SetTimeRange(points[0].Time, points[len(points)-1].Time)
	chart.SetViewTimeRange(points[0].Time, points[len(points)-1].Time)
	chart.SetYRange(lo-pad, hi+pad)
	chart.SetViewYRange(lo-pad, hi+pad)

	for _, pt := range points {
		chart.Push(tslc.TimePoint{Time: pt.Time, Value: pt.Value})
	}
	overlays := map[string][]float64{}
	if slices.Contains(c.active, "MA") {
		overlays["MA"] = SMA(values, indicatorPeriod)
		chart.SetDataSetStyle("MA", lipgloss.NewStyle().Foreground(p.WarningText))
	}
	if slices.Contains(c.active, "EMA") {
		overlays["EMA"] = EMA(values, indicatorPeriod)
		chart.SetDataSetStyle("EMA", lipgloss.NewStyle().Foreground(p.SuccessText))
	}
	for name, line := range overlays {
		for i, v := range line {
			if !math.IsNaN(v) {
				chart.PushDataSet(name, tslc.TimePoint{Time: points[i].Time, Value: v})
			}
		}
	}
	chart.DrawBrailleAll()

	parts := append(top, chart.View(), legend, help)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (c *Chart) legend(values []float64) string {
	p := c.d.palette()
	items := make([]string, 0, len(c.active))
	for _, ind := range indicators {
		if !slices.Contains(c.active, ind.Key) {
			continue
		}
		item := ind.Key
		switch ind.Key {
		case "MA":
			item += fmt.Sprintf(" %.2f", SMA(values, indicatorPeriod)[len(values)-1])
		case "EMA":
			item += fmt.Sprintf(" %.2f", EMA(values, indicatorPeriod)[len(values)-1])
		case "RSI":
			item += fmt.Sprintf(" %.1f", RSI(values, indicatorPeriod))
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return styles.SubtitleStyle(p).Render("No indicators")
	}
	return styles.SubtitleStyle(p).Render(strings.Join(items, " · "))
}
