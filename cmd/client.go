package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriShell/internal/config"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage white-label clients",
	Long:  `Manage the client configurations the shell can run as.`,
}

var listClientsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Active Client: %s\n\n", cfg.ActiveClient)
		fmt.Println("Available Clients:")
		for _, name := range cfg.Names() {
			client := cfg.Clients[name]
			marker := ""
			if name == cfg.ActiveClient {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			fmt.Printf("    App: %s\n", client.AppName)
			fmt.Printf("    Color: %s\n", client.PrimaryColor)
			fmt.Printf("    Features: %s\n", enabledFeatures(client))
			fmt.Println()
		}
	},
}

func enabledFeatures(c config.Client) string {
	var on []string
	for _, f := range config.AllFeatures {
		if c.IsFeatureEnabled(f) {
			on = append(on, string(f))
		}
	}
	if len(on) == 0 {
		return "none"
	}
	return strings.Join(on, ", ")
}

var showClientCmd = &cobra.Command{
	Use:   "show [client-name]",
	Short: "Show client details",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		name := cfg.ActiveClient
		if len(args) > 0 {
			name = args[0]
		}
		client, exists := cfg.Clients[name]
		if !exists {
			log.Fatalf("Client '%s' does not exist", name)
		}

		fmt.Printf("Client: %s\n", name)
		fmt.Printf("App: %s (%s %s, build %d)\n", client.AppName, client.AppStore.BundleID, client.AppStore.Version, client.AppStore.BuildNumber)
		fmt.Printf("Colors: %s / %s / %s\n", client.PrimaryColor, client.SecondaryColor, client.AccentColor)
		fmt.Printf("Dark mode: %t\n", client.Theme.DarkMode)
		fmt.Printf("Features: %s\n", enabledFeatures(client))
		fmt.Printf("API: %s\n", client.APIEndpoints.BaseURL)
		fmt.Printf("Assets: %s\n", strings.Join(client.Trading.SupportedAssets, ", "))
		fmt.Printf("Trade limits: %v - %v\n", client.Trading.MinTradeAmount, client.Trading.MaxTradeAmount)
		fmt.Printf("Support: %s\n", client.Legal.SupportEmail)
	},
}

var addClientCmd = &cobra.Command{
	Use:   "add [client-name]",
	Short: "Add a new client based on an existing one",
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
			prompt := promptui.Prompt{
				Label:    "Client name",
				Validate: notEmpty,
			}
			name, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if _, exists := cfg.Clients[name]; exists {
			log.Fatalf("Client '%s' already exists", name)
		}

		base := selectClient(cfg, "Start from")
		client := cfg.Clients[base]

		appNamePrompt := promptui.Prompt{
			Label:    "App name",
			Default:  client.AppName,
			Validate: notEmpty,
		}
		client.AppName, err = appNamePrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		colorPrompt := promptui.Prompt{
			Label:    "Primary color",
			Default:  client.PrimaryColor,
			Validate: hexColor,
		}
		client.PrimaryColor, err = colorPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		emailPrompt := promptui.Prompt{
			Label:   "Support email",
			Default: client.Legal.SupportEmail,
		}
		client.Legal.SupportEmail, err = emailPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		// A refused confirm comes back as an error.
		tradingPrompt := promptui.Prompt{
			Label:     "Enable trading",
			IsConfirm: true,
		}
		_, err = tradingPrompt.Run()
		client.Features.Trading = err == nil

		cfg.SetClient(name, client)

		// Save config
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Client '%s' added successfully!\n", name)
	},
}

var deleteClientCmd = &cobra.Command{
	Use:   "delete [client-name]",
	Short: "Delete a client",
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
			name = selectClient(cfg, "Select client to delete")
		}

		// Confirm deletion
		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete client '%s'", name),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		if err := cfg.Remove(name); err != nil {
			log.Fatalf("Failed to delete client: %v", err)
		}
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Client '%s' deleted successfully!\n", name)
	},
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("must not be empty")
	}
	return nil
}

func hexColor(s string) error {
	if len(s) != 7 || s[0] != '#' {
		return fmt.Errorf("use the #RRGGBB form")
	}
	for _, c := range strings.ToLower(s[1:]) {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return fmt.Errorf("use the #RRGGBB form")
		}
	}
	return nil
}

func init() {
	// Add subcommands to client
	clientCmd.AddCommand(listClientsCmd)
	clientCmd.AddCommand(showClientCmd)
	clientCmd.AddCommand(addClientCmd)
	clientCmd.AddCommand(deleteClientCmd)
}
