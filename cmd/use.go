package cmd

import (
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriShell/internal/config"
)

var useCmd = &cobra.Command{
	Use:   "use [client-name]",
	Short: "Switch to a client and start the shell",
	Long:  `Make the given client the active one and immediately start the shell with it.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var name string
		if len(args) > 0 {
			name = args[0]
		} else {
			name = selectClient(cfg, "Select client")
		}

		if err := cfg.Use(name); err != nil {
			log.Fatalf("Failed to switch client: %v", err)
		}

		// Save config with new active client
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		run(cmd)
	},
}

// selectClient lets the user pick a configured client.
func selectClient(cfg *config.Config, label string) string {
	names := cfg.Names()
	if len(names) == 0 {
		log.Fatalf("No clients configured")
	}
	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	return name
}

func init() {
	clientCmd.AddCommand(useCmd)
}
