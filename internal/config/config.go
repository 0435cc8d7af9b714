package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

type Config struct {
	Clients       map[string]Client `json:"clients"`
	ActiveClient  string            `json:"active_client"`
	currentClient *Client
	path          string
}

// LoadConfig reads the config file under the RoriShell home, creating it with
// the built-in clients on first run.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return Load(configPath)
}

// Load is LoadConfig for an explicit file.
func Load(configPath string) (*Config, error) {
	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.path = configPath

	if err := config.setCurrentClient(); err != nil {
		return nil, fmt.Errorf("failed to set current client: %w", err)
	}

	return config, nil
}

// Dir is the directory holding the config file, the state database and the
// log. RORISHELL_HOME replaces the user's home directory.
func Dir() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

func getConfigPath() (string, error) {
	var configDir string

	if home := os.Getenv("RORISHELL_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".rorishell", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Clients:      BuiltinClients(),
		ActiveClient: DefaultClient,
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	if c.path == "" {
		configPath, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		c.path = configPath
	}
	return saveConfig(c, c.path)
}

// Path is where Save writes to.
func (c *Config) Path() string {
	return c.path
}

// Names lists the configured clients in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Clients))
	for name := range c.Clients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Use switches the active client. It does not save.
func (c *Config) Use(name string) error {
	if _, ok := c.Clients[name]; !ok {
		return fmt.Errorf("client %q: %w", name, ErrUnknownClient)
	}
	c.ActiveClient = name
	return c.setCurrentClient()
}

// SetClient adds or replaces a client definition.
func (c *Config) SetClient(name string, client Client) {
	if c.Clients == nil {
		c.Clients = make(map[string]Client)
	}
	c.Clients[name] = client
	if name == c.ActiveClient {
		_ = c.setCurrentClient()
	}
}

// Remove deletes a client. Removing the active client makes the first
// remaining one active; the last client cannot be removed.
func (c *Config) Remove(name string) error {
	if _, ok := c.Clients[name]; !ok {
		return fmt.Errorf("client %q: %w", name, ErrUnknownClient)
	}
	if len(c.Clients) == 1 {
		return fmt.Errorf("client %q is the only one left", name)
	}
	delete(c.Clients, name)
	return c.setCurrentClient()
}

// Current is the active client's configuration.
func (c *Config) Current() Client {
	if c.currentClient == nil {
		return BuiltinClients()[DefaultClient]
	}
	return *c.currentClient
}

func (c *Config) IsFeatureEnabled(f Feature) bool {
	return c.Current().IsFeatureEnabled(f)
}

func (c *Config) setCurrentClient() error {
	if len(c.Clients) == 0 {
		return fmt.Errorf("no clients defined")
	}

	client, exists := c.Clients[c.ActiveClient]
	if !exists {
		// Unknown active client: fall back to the first one by name.
		c.ActiveClient = c.Names()[0]
		client = c.Clients[c.ActiveClient]
	}

	c.currentClient = &client
	return nil
}
