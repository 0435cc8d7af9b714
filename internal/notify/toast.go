package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type ToastType string

const (
	ToastInfo    ToastType = "info"
	ToastSuccess ToastType = "success"
	ToastWarning ToastType = "warning"
	ToastError   ToastType = "error"
)

type ToastPosition string

const (
	ToastTop    ToastPosition = "top"
	ToastBottom ToastPosition = "bottom"
)

// DefaultToastDuration is how long a toast stays up when Duration is unset.
const DefaultToastDuration = 3 * time.Second

type ToastConfig struct {
	Message  string
	Type     ToastType
	Duration time.Duration
	Position ToastPosition
	OnHide   func() tea.Cmd
}

func (c ToastConfig) hideHook() func() tea.Cmd { return c.OnHide }

func (c ToastConfig) holdFor() time.Duration {
	if c.Duration <= 0 {
		return DefaultToastDuration
	}
	return c.Duration
}

func (c ToastConfig) normalized() ToastConfig {
	switch c.Type {
	case ToastInfo, ToastSuccess, ToastWarning, ToastError:
	default:
		c.Type = ToastInfo
	}
	if c.Position != ToastBottom {
		c.Position = ToastTop
	}
	return c
}
