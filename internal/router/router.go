package router

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Known paths.
const (
	Login = "/login"
	Tabs  = "/tabs"
	Trade = "/trade"
	Chart = "/chart"
	Help  = "/help"
)

var known = map[string]bool{Login: true, Tabs: true, Trade: true, Chart: true, Help: true}

// ChangedMsg is sent after every navigation so the app can mount the screen
// for the new path.
type ChangedMsg struct {
	Path string
	From string
}

// Op is a navigation operation requested by a screen.
type Op int

const (
	OpPush Op = iota
	OpReplace
	OpBack
)

func (o Op) String() string {
	switch o {
	case OpPush:
		return "push"
	case OpReplace:
		return "replace"
	case OpBack:
		return "back"
	}
	return "unknown"
}

// NavigateMsg asks the app to move to another screen. Screens and
// notification callbacks return it instead of touching the router.
type NavigateMsg struct {
	Op   Op
	Path string
}

func PushCmd(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Op: OpPush, Path: path} }
}

func ReplaceCmd(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Op: OpReplace, Path: path} }
}

func BackCmd() tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Op: OpBack} }
}

// Router is a stack of screen paths.
type Router struct {
	stack []string
}

func New(initial string) *Router {
	return &Router{stack: []string{initial}}
}

// Valid reports whether path names a screen.
func Valid(path string) bool {
	return known[path]
}

func (r *Router) Current() string {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

func (r *Router) Push(path string) (ChangedMsg, error) {
	if !Valid(path) {
		return ChangedMsg{}, fmt.Errorf("push %q: unknown route", path)
	}
	from := r.Current()
	r.stack = append(r.stack, path)
	slog.Debug("navigate", "op", "push", "from", from, "to", path)
	return ChangedMsg{Path: path, From: from}, nil
}

// Replace swaps the whole stack for path, like leaving a flow for good.
func (r *Router) Replace(path string) (ChangedMsg, error) {
	if !Valid(path) {
		return ChangedMsg{}, fmt.Errorf("replace %q: unknown route", path)
	}
	from := r.Current()
	r.stack = []string{path}
	slog.Debug("navigate", "op", "replace", "from", from, "to", path)
	return ChangedMsg{Path: path, From: from}, nil
}

// Back pops the current path. It reports false at the root.
func (r *Router) Back() (ChangedMsg, bool) {
	if len(r.stack) < 2 {
		return ChangedMsg{}, false
	}
	from := r.Current()
	r.stack = r.stack[:len(r.stack)-1]
	slog.Debug("navigate", "op", "back", "from", from, "to", r.Current())
	return ChangedMsg{Path: r.Current(), From: from}, true
}

// Navigate applies msg. changed is false when nothing moved, which is the
// case for Back at the root.
func (r *Router) Navigate(msg NavigateMsg) (ChangedMsg, bool, error) {
	switch msg.Op {
	case OpPush:
		c, err := r.Push(msg.Path)
		return c, err == nil, err
	case OpReplace:
		c, err := r.Replace(msg.Path)
		return c, err == nil, err
	case OpBack:
		c, ok := r.Back()
		return c, ok, nil
	}
	return ChangedMsg{}, false, fmt.Errorf("navigate: unknown op %d", msg.Op)
}
