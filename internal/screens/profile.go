package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriShell/internal/config"
	"github.com/Rorical/RoriShell/internal/notify"
	"github.com/Rorical/RoriShell/internal/router"
	"github.com/Rorical/RoriShell/internal/swipe"
	"github.com/Rorical/RoriShell/internal/theme"
	"github.com/Rorical/RoriShell/ui/components"
	"github.com/Rorical/RoriShell/ui/styles"
)

// Menu row ids.
const (
	RowSettings      = "settings"
	RowTheme         = "theme"
	RowNotifications = "notifications"
	RowHelp          = "help"
	RowAbout         = "about"
	RowLogout        = "logout"
)

type stat struct {
	label string
	value string
}

var profileStats = []stat{{"Photos", "156"}, {"Followers", "2.4K"}, {"Following", "180"}}

// Profile shows the signed-in user and the swipeable settings menu.
type Profile struct {
	d    Deps
	list *swipe.List
}

func NewProfile(d Deps) *Profile {
	p := &Profile{d: d}
	p.list = swipe.NewList(p.menuRows())
	p.list.OnPress = p.press
	p.list.OnAction = p.action
	return p
}

func (p *Profile) menuRows() []swipe.Row {
	rows := []swipe.Row{
		{ID: RowSettings, Icon: "⚙", Title: "Settings", Subtitle: p.d.client().AppName},
		{ID: RowTheme, Icon: "◐", Title: "Theme", Subtitle: string(p.d.Theme.Current())},
	}
	if p.d.Config.IsFeatureEnabled(config.FeatureNotifications) {
		rows = append(rows, swipe.Row{ID: RowNotifications, Icon: "🔔", Title: "Notifications"})
	}
	return append(rows,
		swipe.Row{ID: RowHelp, Icon: "?", Title: "Help & Support"},
		swipe.Row{ID: RowAbout, Icon: "ℹ", Title: "About"},
		swipe.Row{ID: RowLogout, Icon: "⏻", Title: "Logout", Kind: swipe.KindLogout},
	)
}

func (p *Profile) Title() string { return "Profile" }

func (p *Profile) Init() tea.Cmd { return nil }

// List exposes the menu for tests and the tab navigator.
func (p *Profile) List() *swipe.List {
	return p.list
}

// Reset closes any open row.
func (p *Profile) Reset() tea.Cmd {
	return p.list.ResetAll()
}

func (p *Profile) Update(msg tea.Msg) tea.Cmd {
	return p.list.Update(msg)
}

func (p *Profile) press(id string) tea.Cmd {
	switch id {
	case RowTheme:
		p.chooseTheme()
	case RowNotifications:
		p.d.alert("Notifications", p.history())
	case RowHelp, RowAbout:
		return router.PushCmd(router.Help)
	case RowLogout:
		p.confirmLogout()
	default:
		title := id
		for _, r := range p.list.Rows() {
			if r.ID == id {
				title = r.Title
			}
		}
		p.d.alert(title, title+" pressed")
	}
	return nil
}

// action runs the revealed button of row id.
func (p *Profile) action(id string) tea.Cmd {
	if id == RowLogout {
		p.confirmLogout()
		return nil
	}
	p.d.alert("Delete Item", "Are you sure you want to delete this item?",
		notify.Button{Text: "Cancel", Style: notify.StyleCancel},
		notify.Button{Text: "Delete", Style: notify.StyleDestructive, OnPress: func() tea.Cmd {
			p.list.Remove(id)
			return p.list.ResetAll()
		}},
	)
	return nil
}

func (p *Profile) confirmLogout() {
	p.d.alert("Logout", "Are you sure you want to logout?",
		notify.Button{Text: "Cancel", Style: notify.StyleCancel},
		notify.Button{Text: "Logout", Style: notify.StyleDestructive, OnPress: func() tea.Cmd {
			if err := p.d.Auth.Logout(); err != nil {
				p.d.App.SetError(err)
			}
			p.d.App.Session = nil
			return router.ReplaceCmd(router.Login)
		}},
	)
}

func (p *Profile) chooseTheme() {
	buttons := make([]notify.Button, 0, len(theme.Order)+1)
	for _, name := range theme.Order {
		buttons = append(buttons, notify.Button{Text: themeLabel(name), OnPress: func() tea.Cmd {
			if err := p.d.Theme.Set(name); err != nil {
				p.d.toast(notify.ToastWarning, "Theme changed for this session only")
			} else {
				p.d.toast(notify.ToastSuccess, "Theme set to "+themeLabel(name))
			}
			p.list.SetRows(p.menuRowsKeeping())
			return nil
		}})
	}
	buttons = append(buttons, notify.Button{Text: "Cancel", Style: notify.StyleCancel})
	p.d.sheet(notify.SheetConfig{
		Title:   "Choose Theme",
		Message: "Current: " + themeLabel(p.d.Theme.Current()),
		Buttons: buttons,
	})
}

// menuRowsKeeping rebuilds the rows without bringing back deleted ones.
func (p *Profile) menuRowsKeeping() []swipe.Row {
	present := make(map[string]bool, len(p.list.Rows()))
	for _, r := range p.list.Rows() {
		present[r.ID] = true
	}
	var rows []swipe.Row
	for _, r := range p.menuRows() {
		if present[r.ID] {
			rows = append(rows, r)
		}
	}
	return rows
}

func (p *Profile) history() string {
	recent := p.d.App.Recent(5)
	if len(recent) == 0 {
		return "No notifications yet"
	}
	lines := make([]string, len(recent))
	for i, m := range recent {
		lines[i] = fmt.Sprintf("%s  %s", m.At.Format("15:04"), m.Content)
	}
	return strings.Join(lines, "\n")
}

func themeLabel(name theme.Name) string {
	if pal, ok := theme.Lookup(name); ok {
		return pal.Name
	}
	return string(name)
}

func (p *Profile) View(width, height int) string {
	pal := p.d.palette()

	name, email, since := "John Doe", "john.doe@example.com", "Joined March 2024"
	if sess := p.d.App.Session; sess != nil {
		name, email = sess.User.Name, sess.User.Email
		since = "Signed in " + sess.LastLogin.Format("Jan 2, 2006")
	}
	cells := make([]string, len(profileStats))
	cellW := max(width/len(profileStats), 8)
	for i, s := range profileStats {
		cells[i] = lipgloss.NewStyle().Width(cellW).Align(lipgloss.Center).Render(
			styles.TitleStyle(pal).Render(s.value) + "\n" + styles.SubtitleStyle(pal).Render(s.label))
	}
	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle(pal).Render("☺ "+name),
		styles.SubtitleStyle(pal).Render(email),
		styles.SubtitleStyle(pal).Render(since),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
		"",
	)

	p.list.SetWidth(width)
	p.list.SetOrigin(0, components.Height(header))
	return header + "\n" + p.list.View(pal)
}
