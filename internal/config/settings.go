package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings are per-run options. Each one can come from a flag or from a
// RORISHELL_ environment variable; flags win.
type Settings struct {
	Client       string
	Theme        string
	Debug        bool
	NoMouse      bool
	LoginLatency time.Duration
}

// LoadDotEnv loads .env from the working directory and then from the config
// directory. Variables already set are kept. Missing files are fine.
func LoadDotEnv() error {
	paths := []string{".env"}
	if dir, err := Dir(); err == nil {
		paths = append(paths, filepath.Join(dir, ".env"))
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// LoadSettings resolves settings from flags (may be nil) and the environment.
func LoadSettings(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetDefault("client", "")
	v.SetDefault("theme", "")
	v.SetDefault("debug", false)
	v.SetDefault("no_mouse", false)
	v.SetDefault("login_latency", "600ms")

	v.SetEnvPrefix("RORISHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{
			"client":   "client",
			"theme":    "theme",
			"debug":    "debug",
			"no_mouse": "no-mouse",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	latency, err := time.ParseDuration(v.GetString("login_latency"))
	if err != nil {
		return Settings{}, fmt.Errorf("login latency: %w", err)
	}
	return Settings{
		Client:       v.GetString("client"),
		Theme:        v.GetString("theme"),
		Debug:        v.GetBool("debug"),
		NoMouse:      v.GetBool("no_mouse"),
		LoginLatency: latency,
	}, nil
}

// Apply picks the client named in s, if any, without saving.
func (c *Config) Apply(s Settings) error {
	if s.Client == "" {
		return nil
	}
	return c.Use(s.Client)
}
