package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriShell/internal/config"
	"github.com/Rorical/RoriShell/internal/store"
	"github.com/Rorical/RoriShell/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the saved theme",
}

// withResolver opens the state database and hands over a resolver seeded
// the way the shell seeds it for the active client.
func withResolver(fn func(r *theme.Resolver)) {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	dir, err := config.Dir()
	if err != nil {
		log.Fatalf("Failed to resolve config directory: %v", err)
	}
	st, err := store.OpenInDir(dir)
	if err != nil {
		log.Fatalf("Failed to open state: %v", err)
	}
	defer st.Close()

	fallback := theme.Light
	if cfg.Current().Theme.DarkMode {
		fallback = theme.Dark
	}
	fn(theme.NewResolver(st, fallback))
}

var getThemeCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current theme",
	Run: func(cmd *cobra.Command, args []string) {
		withResolver(func(r *theme.Resolver) {
			fmt.Println(r.Current())
		})
	},
}

var setThemeCmd = &cobra.Command{
	Use:   "set [light|dark|moonlight]",
	Short: "Save a theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var value string
		if len(args) > 0 {
			value = args[0]
		} else {
			prompt := promptui.Select{
				Label: "Select theme",
				Items: theme.Order,
			}
			var err error
			_, value, err = prompt.Run()
			if err != nil {
				log.Fatalf("Selection failed: %v", err)
			}
		}

		name, err := theme.Parse(value)
		if err != nil {
			log.Fatalf("Invalid theme: %v", err)
		}
		withResolver(func(r *theme.Resolver) {
			if err := r.Set(name); err != nil {
				log.Fatalf("Failed to save theme: %v", err)
			}
			fmt.Printf("Theme set to %s\n", name)
		})
	},
}

var toggleThemeCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch to the next theme",
	Run: func(cmd *cobra.Command, args []string) {
		withResolver(func(r *theme.Resolver) {
			fmt.Printf("Theme set to %s\n", r.Toggle())
		})
	},
}

func init() {
	themeCmd.AddCommand(getThemeCmd)
	themeCmd.AddCommand(setThemeCmd)
	themeCmd.AddCommand(toggleThemeCmd)
}
