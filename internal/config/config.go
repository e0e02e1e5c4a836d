// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/app.yaml"

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

// BuilderConfig tunes the state synchronization layer.
type BuilderConfig struct {
	// AutosaveDebounce is the client-side delay between the last edit and
	// the autosave request.
	AutosaveDebounce time.Duration `yaml:"autosave_debounce"`
	// StrictPublish rejects publishes that fail full-field validation.
	StrictPublish   bool          `yaml:"strict_publish"`
	PublishCooldown time.Duration `yaml:"publish_cooldown"`
	// RevisionRetention is how many publish revisions the prune job keeps.
	RevisionRetention int           `yaml:"revision_retention"`
	PruneCron         string        `yaml:"prune_cron"`
	SessionTTL        time.Duration `yaml:"session_ttl"`
}

type Config struct {
	App struct {
		Name            string        `yaml:"name"`
		Environment     string        `yaml:"environment"`
		Port            int           `yaml:"port"`
		BaseURL         string        `yaml:"base_url"`
		StaticDir       string        `yaml:"static_dir"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		// TrustProxy reads client addresses from X-Forwarded-For.
		TrustProxy bool `yaml:"trust_proxy"`
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`

	Builder BuilderConfig `yaml:"builder"`

	Features struct {
		EnableMetrics bool `yaml:"enable_metrics"`
		EnableDebug   bool `yaml:"enable_debug"`
	} `yaml:"features"`
}

// Defaults returns the configuration used for any value the YAML file leaves
// unset.
func Defaults() Config {
	var cfg Config
	cfg.App.Name = "careerbuilder"
	cfg.App.Environment = "development"
	cfg.App.Port = 8080
	cfg.App.StaticDir = "build/bin/static"
	cfg.App.ShutdownTimeout = 30 * time.Second
	cfg.Database.Driver = "sqlite"
	cfg.Database.Filename = "build/db/careerbuilder.db"
	cfg.Builder = BuilderConfig{
		AutosaveDebounce:  500 * time.Millisecond,
		PublishCooldown:   5 * time.Second,
		RevisionRetention: 20,
		PruneCron:         "0 3 * * *",
		SessionTTL:        24 * time.Hour,
	}
	cfg.Features.EnableMetrics = true
	return cfg
}

// Path returns CONFIG_PATH if set, otherwise DefaultPath.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if env := os.Getenv("APP_ENVIRONMENT"); env != "" {
		cfg.App.Environment = env
	}
	if dbFile := os.Getenv("DATABASE_FILENAME"); dbFile != "" {
		cfg.Database.Filename = dbFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// SecureCookies reports whether the app is served over https.
func (c *Config) SecureCookies() bool {
	return strings.HasPrefix(c.App.BaseURL, "https://")
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Filename == "" {
			return fmt.Errorf("database filename is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	return c.Builder.Validate()
}

func (b BuilderConfig) Validate() error {
	if b.AutosaveDebounce < 0 {
		return fmt.Errorf("builder autosave_debounce must not be negative")
	}
	if b.PublishCooldown < 0 {
		return fmt.Errorf("builder publish_cooldown must not be negative")
	}
	if b.RevisionRetention < 1 {
		return fmt.Errorf("builder revision_retention must be at least 1")
	}
	if b.SessionTTL <= 0 {
		return fmt.Errorf("builder session_ttl must be positive")
	}
	if _, err := cron.ParseStandard(b.PruneCron); err != nil {
		return fmt.Errorf("builder prune_cron %q: %w", b.PruneCron, err)
	}
	return nil
}
