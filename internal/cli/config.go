package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/roland/portfolio/internal/comment"
)

const (
	defaultBackendURL = "http://localhost:8080"
	defaultOwner      = "Roland"
	defaultPort       = 8000
)

// Config holds the tool's configuration. Values come from defaults, then
// the YAML file, then PORTFOLIO_* environment variables, then flags.
type Config struct {
	BackendURL  string        `yaml:"backend_url,omitempty" env:"PORTFOLIO_BACKEND_URL" validate:"required,url"`
	Owner       string        `yaml:"owner,omitempty" env:"PORTFOLIO_OWNER"`
	MaxComments *int          `yaml:"max_comments,omitempty" env:"PORTFOLIO_MAX_COMMENTS" validate:"omitempty,gte=0,lte=100"`
	DBPath      string        `yaml:"db,omitempty" env:"PORTFOLIO_DB"`
	Port        int           `yaml:"port,omitempty" env:"PORTFOLIO_PORT" validate:"gte=1,lte=65535"`
	Dev         bool          `yaml:"dev,omitempty" env:"PORTFOLIO_DEV"`
	Timeout     time.Duration `yaml:"timeout,omitempty" env:"PORTFOLIO_TIMEOUT" validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// CommentLimit returns the configured comment limit. Zero is a valid limit.
func (c Config) CommentLimit() int {
	if c.MaxComments == nil {
		return comment.DefaultMaxComments
	}
	return *c.MaxComments
}

func defaultConfig() Config {
	limit := comment.DefaultMaxComments
	return Config{
		BackendURL:  defaultBackendURL,
		Owner:       defaultOwner,
		MaxComments: &limit,
		Port:        defaultPort,
	}
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "portfolio", "config.yaml"), nil
}

// loadConfig reads the config file from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// saveConfig writes the config file to disk.
func saveConfig(cfg Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// loadEffectiveConfig layers defaults, the config file, and the environment.
func loadEffectiveConfig() (Config, error) {
	cfg := defaultConfig()

	file, err := loadConfig()
	if err != nil {
		return Config{}, err
	}
	mergeConfig(&cfg, file)

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// mergeConfig copies the set fields of src over dst.
func mergeConfig(dst *Config, src Config) {
	if src.BackendURL != "" {
		dst.BackendURL = src.BackendURL
	}
	if src.Owner != "" {
		dst.Owner = src.Owner
	}
	if src.MaxComments != nil {
		n := *src.MaxComments
		dst.MaxComments = &n
	}
	if src.DBPath != "" {
		dst.DBPath = src.DBPath
	}
	if src.Port != 0 {
		dst.Port = src.Port
	}
	if src.Dev {
		dst.Dev = true
	}
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
	}
}
