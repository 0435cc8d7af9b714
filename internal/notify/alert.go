package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriShell/ui/components"
)

type ButtonStyle string

const (
	StyleDefault     ButtonStyle = components.ButtonDefault
	StyleCancel      ButtonStyle = components.ButtonCancel
	StyleDestructive ButtonStyle = components.ButtonDestructive
)

type Button struct {
	Text    string
	Style   ButtonStyle
	OnPress func() tea.Cmd
}

type AlertConfig struct {
	Title   string
	Message string
	Buttons []Button
	// Dismissible lets a click outside the card close the alert.
	Dismissible bool
	OnHide      func() tea.Cmd
}

func (c AlertConfig) hideHook() func() tea.Cmd { return c.OnHide }
func (c AlertConfig) holdFor() time.Duration   { return 0 }

func (c AlertConfig) normalized() AlertConfig {
	if len(c.Buttons) == 0 {
		c.Buttons = []Button{{Text: "OK", Style: StyleDefault}}
	}
	return c
}

// alertOrder is the on-screen order of alert buttons: cancel buttons first.
func alertOrder(buttons []Button) []int {
	order := make([]int, 0, len(buttons))
	for i, b := range buttons {
		if b.Style == StyleCancel {
			order = append(order, i)
		}
	}
	for i, b := range buttons {
		if b.Style != StyleCancel {
			order = append(order, i)
		}
	}
	return order
}

func buttonViews(buttons []Button) []components.ButtonView {
	views := make([]components.ButtonView, len(buttons))
	for i, b := range buttons {
		views[i] = components.ButtonView{Text: b.Text, Style: string(b.Style)}
	}
	return views
}
