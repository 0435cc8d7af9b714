package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriShell/internal/config"
	"github.com/Rorical/RoriShell/internal/utils"
)

// Help renders the help and legal page of the active client.
type Help struct {
	d        Deps
	vp       viewport.Model
	width    int
	rendered string
	dark     bool
}

func NewHelp(d Deps) *Help {
	return &Help{d: d, vp: viewport.New(80, 20)}
}

func (h *Help) Title() string { return "Help & Support" }

func (h *Help) Init() tea.Cmd { return nil }

func (h *Help) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.vp, cmd = h.vp.Update(msg)
	return cmd
}

// Markdown is the page source for the active client.
func (h *Help) Markdown() string {
	return helpMarkdown(h.d.client())
}

func helpMarkdown(c config.Client) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s help\n\n", c.AppName)
	b.WriteString("## Getting around\n\n")
	b.WriteString("- `tab` / `shift+tab` or `1`-`3` switch tabs\n")
	b.WriteString("- `esc` goes back, `ctrl+c` quits\n")
	b.WriteString("- Drag a profile row left, or press `←`, to reveal its action\n")
	b.WriteString("- `ctrl+x` closes a toast\n\n")

	b.WriteString("## Features\n\n")
	for _, f := range config.AllFeatures {
		state := "off"
		if c.IsFeatureEnabled(f) {
			state = "on"
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", f, state)
	}

	if len(c.Trading.SupportedAssets) > 0 {
		b.WriteString("\n## Trading\n\n")
		fmt.Fprintf(&b, "Orders between **$%s** and **$%s**.\n\n", money(c.Trading.MinTradeAmount), money(c.Trading.MaxTradeAmount))
		fmt.Fprintf(&b, "Assets: %s. Currencies: %s.\n",
			strings.Join(c.Trading.SupportedAssets, ", "),
			strings.Join(c.Trading.SupportedFiatCurrencies, ", "))
	}

	b.WriteString("\n## Support\n\n")
	fmt.Fprintf(&b, "Email [%s](mailto:%s).\n\n", c.Legal.SupportEmail, c.Legal.SupportEmail)
	b.WriteString("## Legal\n\n")
	fmt.Fprintf(&b, "- Terms: %s\n- Privacy: %s\n\n", c.Legal.TermsURL, c.Legal.PrivacyURL)
	fmt.Fprintf(&b, "%s, version %s (build %d)\n", c.Legal.CompanyName, c.AppStore.Version, c.AppStore.BuildNumber)
	return b.String()
}

func (h *Help) View(width, height int) string {
	dark := h.d.palette().Dark
	if width != h.width || dark != h.dark || h.rendered == "" {
		h.width, h.dark = width, dark
		h.rendered = utils.RenderMarkdown(h.Markdown(), max(width-2, 20), dark)
		h.vp.SetContent(h.rendered)
	}
	h.vp.Width = width
	h.vp.Height = max(height, 1)
	return h.vp.View()
}
