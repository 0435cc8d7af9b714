package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriShell/internal/app"
	"github.com/Rorical/RoriShell/internal/config"
	"github.com/Rorical/RoriShell/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "rorishell",
	Short: "A white-label mobile shell for the terminal",
	Long: `RoriShell is a white-label app shell in the terminal: login, tabs,
swipeable menu rows, toasts, alerts and action sheets.`,
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd)
	},
}

// run loads configuration and runs the shell until the user quits.
func run(cmd *cobra.Command) {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	settings, err := config.LoadSettings(cmd.Flags())
	if err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	dir, err := config.Dir()
	if err != nil {
		log.Fatalf("Failed to resolve config directory: %v", err)
	}
	logFile, err := logging.Setup(dir, settings.Debug)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.NewApplication(cfg, settings)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := runShell(application); err != nil {
		log.Printf("Application error: %v", err)
		logFile.Close()
		os.Exit(1)
	}
}

type shell interface {
	Start() error
	Stop()
}

// runShell runs s until it exits and always stops it, so the state database
// is closed even when the program fails.
func runShell(s shell) error {
	err := s.Start()
	s.Stop()
	return err
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("client", "", "client to run, for this session only")
	rootCmd.PersistentFlags().String("theme", "", "theme to start with (light, dark, moonlight)")
	rootCmd.PersistentFlags().Bool("debug", false, "write debug logs")
	rootCmd.PersistentFlags().Bool("no-mouse", false, "disable mouse input")

	// Add subcommands
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(themeCmd)
}
