package screens

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriShell/internal/auth"
	"github.com/Rorical/RoriShell/internal/notify"
	"github.com/Rorical/RoriShell/internal/router"
	"github.com/Rorical/RoriShell/ui/components"
	"github.com/Rorical/RoriShell/ui/styles"
)

const (
	focusEmail = iota
	focusPassword
	focusSubmit
	loginFields
)

type LoginKeyMap struct {
	Next         key.Binding
	Prev         key.Binding
	Submit       key.Binding
	Theme        key.Binding
	ShowPassword key.Binding
	SignUp       key.Binding
	Forgot       key.Binding
}

var DefaultLoginKeyMap = LoginKeyMap{
	Next:         key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
	Prev:         key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
	Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in")),
	Theme:        key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
	ShowPassword: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "show password")),
	SignUp:       key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "sign up")),
	Forgot:       key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "forgot password")),
}

// Login is the sign-in form.
type Login struct {
	d        Deps
	email    textinput.Model
	password textinput.Model
	focus    int
	reveal   bool
	busy     bool
	spinner  spinner.Model

	// rows of the focusable fields, relative to the body
	fieldRows [loginFields]components.Rect

	Keys LoginKeyMap
}

func NewLogin(d Deps) *Login {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = ""
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = ""
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Login{
		d:        d,
		email:    email,
		password: password,
		spinner:  sp,
		Keys:     DefaultLoginKeyMap,
	}
}

func (l *Login) Title() string {
	return "Sign In"
}

func (l *Login) Init() tea.Cmd {
	return tea.Batch(l.setFocus(focusEmail), textinput.Blink)
}

// Busy reports whether a sign-in is running.
func (l *Login) Busy() bool {
	return l.busy
}

func (l *Login) Focused() int {
	return l.focus
}

func (l *Login) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case auth.ResultMsg:
		return l.finish(msg)
	case spinner.TickMsg:
		if !l.busy {
			return nil
		}
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return cmd
	case tea.MouseMsg:
		return l.handleMouse(msg)
	case tea.KeyMsg:
		if l.busy {
			return nil
		}
		switch {
		case key.Matches(msg, l.Keys.Theme):
			name := l.d.Theme.Toggle()
			l.d.App.SetStatus("Theme: " + string(name))
			return nil
		case key.Matches(msg, l.Keys.ShowPassword):
			l.reveal = !l.reveal
			if l.reveal {
				l.password.EchoMode = textinput.EchoNormal
			} else {
				l.password.EchoMode = textinput.EchoPassword
			}
			return nil
		case key.Matches(msg, l.Keys.SignUp):
			l.signUp()
			return nil
		case key.Matches(msg, l.Keys.Forgot):
			l.d.alert("Forgot Password", "Password reset functionality would be implemented here")
			return nil
		case key.Matches(msg, l.Keys.Next):
			return l.setFocus((l.focus + 1) % loginFields)
		case key.Matches(msg, l.Keys.Prev):
			return l.setFocus((l.focus + loginFields - 1) % loginFields)
		case key.Matches(msg, l.Keys.Submit):
			if l.focus == focusEmail {
				return l.setFocus(focusPassword)
			}
			return l.submit(false)
		}
	}
	return l.updateInputs(msg)
}

func (l *Login) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch l.focus {
	case focusEmail:
		l.email, cmd = l.email.Update(msg)
	case focusPassword:
		l.password, cmd = l.password.Update(msg)
	}
	return cmd
}

func (l *Login) setFocus(i int) tea.Cmd {
	l.focus = i
	l.email.Blur()
	l.password.Blur()
	switch i {
	case focusEmail:
		return l.email.Focus()
	case focusPassword:
		return l.password.Focus()
	}
	return nil
}

func (l *Login) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if l.busy || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	for i, r := range l.fieldRows {
		if r.Contains(msg.X, msg.Y) {
			if i == focusSubmit {
				return l.submit(false)
			}
			return l.setFocus(i)
		}
	}
	return nil
}

// submit validates the form and starts the sign-in or registration.
func (l *Login) submit(register bool) tea.Cmd {
	email, password := strings.TrimSpace(l.email.Value()), l.password.Value()
	if err := auth.Validate(email, password); err != nil {
		l.d.alert("Error", userMessage(err))
		return nil
	}
	l.busy = true
	l.d.App.Loading = true
	var run tea.Cmd
	if register {
		l.d.App.SetStatus("Creating account")
		run = l.d.Auth.RegisterCmd(email, password, strings.SplitN(email, "@", 2)[0])
	} else {
		l.d.App.SetStatus("Signing in")
		run = l.d.Auth.LoginCmd(email, password)
	}
	return tea.Batch(l.spinner.Tick, run)
}

func (l *Login) signUp() {
	l.d.alert("Sign Up", "Create an account with the email and password entered above?",
		notify.Button{Text: "Cancel", Style: notify.StyleCancel},
		notify.Button{Text: "Create Account", OnPress: func() tea.Cmd {
			return l.submit(true)
		}},
	)
}

func (l *Login) finish(msg auth.ResultMsg) tea.Cmd {
	l.busy = false
	l.d.App.Loading = false
	if msg.Err != nil {
		l.d.App.SetError(msg.Err)
		l.d.alert("Login Failed", userMessage(msg.Err))
		return nil
	}
	sess := msg.Session
	l.d.App.Session = &sess
	l.d.App.SetStatus("Signed in as " + sess.User.Email)
	l.d.toast(notify.ToastSuccess, "Welcome, "+sess.User.Name+"!")
	return router.ReplaceCmd(router.Tabs)
}

// userMessage turns an auth error into a sentence for an alert.
func userMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		return "Please fill in all fields"
	case errors.Is(err, auth.ErrInvalidEmail):
		return "Please enter a valid email address"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, auth.ErrUserExists):
		return "An account with this email already exists"
	}
	return "Something went wrong, please try again"
}

func (l *Login) View(width, height int) string {
	p := l.d.palette()
	formWidth := min(max(width-4, 20), 48)

	passwordLabel := "Password"
	if l.reveal {
		passwordLabel += " (visible)"
	}
	button := styles.ButtonStyle(p, l.focus == focusSubmit).Render("Sign In")
	if l.busy {
		button = styles.ButtonStyle(p, true).Render(l.spinner.View() + " Signing in")
	}

	title := []string{
		styles.TitleStyle(p).Render(l.d.client().AppName),
		styles.SubtitleStyle(p).Render("Welcome back!"),
		"",
	}
	fields := []string{
		components.RenderInput(p, "Email", l.email.View(), formWidth, l.focus == focusEmail),
		components.RenderInput(p, passwordLabel, l.password.View(), formWidth, l.focus == focusPassword),
		button,
	}
	help := styles.SubtitleStyle(p).Render(strings.Join([]string{
		"ctrl+t theme (" + string(l.d.Theme.Current()) + ")",
		"ctrl+p show password",
		"ctrl+n sign up",
		"ctrl+f forgot password",
	}, " · "))

	blocks := append(append(title, fields...), "", help)
	form := lipgloss.JoinVertical(lipgloss.Center, blocks...)

	// Record where each field landed once the form is centred.
	top := max((height-components.Height(form))/2, 0)
	formW := components.Width(form)
	left := max((width-formW)/2, 0)
	y := top + len(title)
	for i, f := range fields {
		h := components.Height(f)
		l.fieldRows[i] = components.Rect{X: left, Y: y, W: formW, H: h}
		y += h
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}
