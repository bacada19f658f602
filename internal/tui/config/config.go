package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Configuration faults that abort a production startup.
var (
	ErrNoBaseURL       = errors.New("base URL is not set")
	ErrLoopbackBaseURL = errors.New("base URL points at a loopback address")
)

// Environments the client can run in. Development tolerates missing or
// loopback base URLs (a local proxy fills them in); production does not.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all TUI configuration
type Config struct {
	Environment string    `yaml:"environment"`
	API         APIConfig `yaml:"api"`
	UI          UIConfig  `yaml:"ui"`
}

// APIConfig contains the backend connection settings
type APIConfig struct {
	TrendBaseURL  string `yaml:"trend_base_url"`
	SearchBaseURL string `yaml:"search_base_url"`
	ReportBaseURL string `yaml:"report_base_url"`
	// Key is sent as X-API-Key on trend calls only.
	Key string `yaml:"key"`
}

// UIConfig for UI preferences
type UIConfig struct {
	PageSize         int  `yaml:"page_size"`
	DebounceMs       int  `yaml:"debounce_ms"`
	EnableAnimations bool `yaml:"enable_animations"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Environment: EnvDevelopment,
		API: APIConfig{
			TrendBaseURL:  "http://localhost:8080/api",
			SearchBaseURL: "http://localhost:8081/api",
			ReportBaseURL: "http://localhost:8082/api",
		},
		UI: UIConfig{
			PageSize:         10,
			DebounceMs:       300,
			EnableAnimations: true,
		},
	}
}

// Load loads configuration from file, falling back to defaults. Environment
// variables override whatever the file provides.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = findConfigFile()
	}

	cfg := Default()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnv()
	if cfg.Environment == "" {
		cfg.Environment = EnvDevelopment
	}
	if cfg.UI.PageSize < 1 {
		cfg.UI.PageSize = Default().UI.PageSize
	}
	if cfg.UI.DebounceMs < 1 {
		cfg.UI.DebounceMs = Default().UI.DebounceMs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv lets deployment environments inject settings without a file.
func (c *Config) applyEnv() {
	overrides := []struct {
		env    string
		target *string
	}{
		{"TRENDHUB_ENV", &c.Environment},
		{"TRENDHUB_TREND_API_URL", &c.API.TrendBaseURL},
		{"TRENDHUB_SEARCH_API_URL", &c.API.SearchBaseURL},
		{"TRENDHUB_REPORT_API_URL", &c.API.ReportBaseURL},
		{"TRENDHUB_API_KEY", &c.API.Key},
	}
	for _, o := range overrides {
		if value := strings.TrimSpace(os.Getenv(o.env)); value != "" {
			*o.target = value
		}
	}
}

// Validate fails fast when a production deployment would silently talk to
// nothing, or to a loopback address, instead of a reachable backend.
func (c *Config) Validate() error {
	if c.Environment != EnvProduction {
		return nil
	}

	backends := []struct {
		name    string
		baseURL string
	}{
		{"trend", c.API.TrendBaseURL},
		{"search", c.API.SearchBaseURL},
		{"report", c.API.ReportBaseURL},
	}
	for _, b := range backends {
		if strings.TrimSpace(b.baseURL) == "" {
			return fmt.Errorf("production config: %s API %w (set TRENDHUB_%s_API_URL)", b.name, ErrNoBaseURL, strings.ToUpper(b.name))
		}
		parsed, err := url.Parse(b.baseURL)
		if err != nil || parsed.Host == "" {
			return fmt.Errorf("production config: %s API base URL %q is not a valid URL", b.name, b.baseURL)
		}
		if isLoopback(parsed.Hostname()) {
			return fmt.Errorf("production config: %s API %w (%q)", b.name, ErrLoopbackBaseURL, b.baseURL)
		}
	}

	return nil
}

func isLoopback(host string) bool {
	host = strings.ToLower(host)
	return host == "localhost" || host == "::1" || strings.HasPrefix(host, "127.")
}

// Save saves configuration to file
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// findConfigFile searches for config in standard locations
func findConfigFile() string {
	locations := []string{
		"./trendhub-tui.yaml",
		"./config/tui.yaml",
		filepath.Join(os.Getenv("HOME"), ".config", "trendhub", "tui.yaml"),
		filepath.Join(os.Getenv("HOME"), ".trendhub-tui.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}
