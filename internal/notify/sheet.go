package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type SheetConfig struct {
	Title   string
	Message string
	Buttons []Button
	OnHide  func() tea.Cmd
}

func (c SheetConfig) hideHook() func() tea.Cmd { return c.OnHide }
func (c SheetConfig) holdFor() time.Duration   { return 0 }

// sheetOrder is the on-screen order of sheet buttons: the detached cancel
// section comes last.
func sheetOrder(buttons []Button) []int {
	order := make([]int, 0, len(buttons))
	for i, b := range buttons {
		if b.Style != StyleCancel {
			order = append(order, i)
		}
	}
	for i, b := range buttons {
		if b.Style == StyleCancel {
			order = append(order, i)
		}
	}
	return order
}
