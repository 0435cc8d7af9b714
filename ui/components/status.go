package components

import (
	"strings"

	"github.com/Rorical/RoriShell/internal/theme"
	"github.com/Rorical/RoriShell/ui/styles"
)

func RenderStatus(p theme.Palette, status string, isErr, loading bool, loadingDots int, width int) string {
	statusStyle := styles.StatusStyle(p, width)
	if isErr {
		statusStyle = statusStyle.Foreground(p.ErrorText)
	}

	statusContent := status
	if loading {
		statusContent += strings.Repeat(".", loadingDots)
	}

	return statusStyle.Render(statusContent)
}
