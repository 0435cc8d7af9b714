package theme

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Name string

const (
	Light     Name = "light"
	Dark      Name = "dark"
	Moonlight Name = "moonlight"
)

// StorageKey is where the selected theme is persisted.
const StorageKey = "app_theme"

// Order is the toggle cycle.
var Order = []Name{Light, Dark, Moonlight}

// Palette is the read-only set of color tokens screens and components render with.
type Palette struct {
	Name               string
	Background         lipgloss.Color
	HeaderBackground   lipgloss.Color
	HeaderBorder       lipgloss.Color
	Text               lipgloss.Color
	SecondaryText      lipgloss.Color
	Border             lipgloss.Color
	ButtonBackground   lipgloss.Color
	ButtonBorder       lipgloss.Color
	SelectedButton     lipgloss.Color
	SelectedButtonText lipgloss.Color
	PanelBackground    lipgloss.Color
	IndicatorBox       lipgloss.Color
	CardBackground     lipgloss.Color
	InputBackground    lipgloss.Color
	InputBorder        lipgloss.Color
	ErrorText          lipgloss.Color
	SuccessText        lipgloss.Color
	WarningText        lipgloss.Color
	TabBarBackground   lipgloss.Color
	TabBarActive       lipgloss.Color
	TabBarInactive     lipgloss.Color
	// Dark selects dark renderings of markdown and charts.
	Dark               bool
}

var palettes = map[Name]Palette{
	Light: {
		Name:               "Light",
		Background:         "#ffffff",
		HeaderBackground:   "#f8f9fa",
		HeaderBorder:       "#e9ecef",
		Text:               "#333333",
		SecondaryText:      "#666666",
		Border:             "#e9ecef",
		ButtonBackground:   "#ffffff",
		ButtonBorder:       "#dddddd",
		SelectedButton:     "#007AFF",
		SelectedButtonText: "#ffffff",
		PanelBackground:    "#ffffff",
		IndicatorBox:       "#f8f9fa",
		CardBackground:     "#ffffff",
		InputBackground:    "#ffffff",
		InputBorder:        "#dddddd",
		ErrorText:          "#dc3545",
		SuccessText:        "#28a745",
		WarningText:        "#ffc107",
		TabBarBackground:   "#ffffff",
		TabBarActive:       "#007AFF",
		TabBarInactive:     "#8e8e93",
	},
	Dark: {
		Name:               "Dark",
		Background:         "#1a1a1a",
		HeaderBackground:   "#2d2d2d",
		HeaderBorder:       "#404040",
		Text:               "#ffffff",
		SecondaryText:      "#cccccc",
		Border:             "#404040",
		ButtonBackground:   "#2d2d2d",
		ButtonBorder:       "#505050",
		SelectedButton:     "#0066cc",
		SelectedButtonText: "#ffffff",
		PanelBackground:    "#2d2d2d",
		IndicatorBox:       "#333333",
		CardBackground:     "#2d2d2d",
		InputBackground:    "#333333",
		InputBorder:        "#505050",
		ErrorText:          "#ff6b6b",
		SuccessText:        "#51cf66",
		WarningText:        "#ffd43b",
		TabBarBackground:   "#2d2d2d",
		TabBarActive:       "#0066cc",
		TabBarInactive:     "#8e8e93",
		Dark:               true,
	},
	Moonlight: {
		Name:               "Moonlight",
		Background:         "#0f1419",
		HeaderBackground:   "#1e2328",
		HeaderBorder:       "#2e3338",
		Text:               "#e6e8ea",
		SecondaryText:      "#9ca3af",
		Border:             "#2e3338",
		ButtonBackground:   "#1e2328",
		ButtonBorder:       "#3e4348",
		SelectedButton:     "#6366f1",
		SelectedButtonText: "#ffffff",
		PanelBackground:    "#1e2328",
		IndicatorBox:       "#252930",
		CardBackground:     "#1e2328",
		InputBackground:    "#252930",
		InputBorder:        "#3e4348",
		ErrorText:          "#f87171",
		SuccessText:        "#34d399",
		WarningText:        "#fbbf24",
		TabBarBackground:   "#1e2328",
		TabBarActive:       "#6366f1",
		TabBarInactive:     "#6b7280",
		Dark:               true,
	},
}

func Lookup(name Name) (Palette, bool) {
	p, ok := palettes[name]
	return p, ok
}

func Parse(s string) (Name, error) {
	name := Name(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := palettes[name]; !ok {
		return "", fmt.Errorf("unknown theme %q", s)
	}
	return name, nil
}

// Next returns the theme after name in the toggle cycle.
func Next(name Name) Name {
	for i, n := range Order {
		if n == name {
			return Order[(i+1)%len(Order)]
		}
	}
	return Light
}

// Store is the persisted key-value collaborator.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Resolver owns the current theme selection and its persistence.
type Resolver struct {
	store   Store
	current Name
	brand   lipgloss.Color
}

// NewResolver loads the persisted theme, falling back to fallback when the
// store has nothing usable.
func NewResolver(store Store, fallback Name) *Resolver {
	if _, ok := palettes[fallback]; !ok {
		fallback = Light
	}
	r := &Resolver{store: store, current: fallback}
	if store == nil {
		return r
	}
	saved, ok, err := store.Get(StorageKey)
	if err != nil {
		slog.Error("loading theme", "error", err)
		return r
	}
	if !ok {
		return r
	}
	name, err := Parse(saved)
	if err != nil {
		slog.Warn("ignoring stored theme", "value", saved)
		return r
	}
	r.current = name
	return r
}

func (r *Resolver) Current() Name {
	return r.current
}

// SetBrand overrides the accent tokens with a client's primary color.
func (r *Resolver) SetBrand(color string) {
	r.brand = lipgloss.Color(color)
}

func (r *Resolver) Palette() Palette {
	p := palettes[r.current]
	if r.brand != "" {
		p.SelectedButton = r.brand
		p.TabBarActive = r.brand
	}
	return p
}

// Set switches theme and persists it. A failed write keeps the new theme
// for this session.
func (r *Resolver) Set(name Name) error {
	if _, ok := palettes[name]; !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	r.current = name
	if r.store == nil {
		return nil
	}
	if err := r.store.Set(StorageKey, string(name)); err != nil {
		slog.Error("saving theme", "theme", name, "error", err)
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

func (r *Resolver) Toggle() Name {
	next := Next(r.current)
	_ = r.Set(next)
	return next
}
