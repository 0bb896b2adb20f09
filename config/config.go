// Package config loads the bridge configuration: built-in defaults, an
// optional yaml file, then environment overrides, in that order.
package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Adapter selection modes.
const (
	ModeSimulated = "simulated"
	ModeLive      = "live"
)

type (
	// Config -.
	Config struct {
		App        `yaml:"app"`
		HTTP       `yaml:"http"`
		Log        `yaml:"logger"`
		PeopleSoft `yaml:"peoplesoft"`
	}

	// App -.
	App struct {
		Name    string `yaml:"name" env:"APP_NAME"`
		Version string `yaml:"-"`
	}

	// HTTP -.
	HTTP struct {
		Host           string   `yaml:"host" env:"HTTP_HOST"`
		Port           string   `yaml:"port" env:"HTTP_PORT"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`
		AllowedHeaders []string `yaml:"allowed_headers" env:"HTTP_ALLOWED_HEADERS"`
	}

	// Log -.
	Log struct {
		Level string `yaml:"log_level" env:"LOG_LEVEL"`
	}

	// PeopleSoft holds the legacy-system endpoint and the single service
	// credential the bridge trusts. Immutable after process start.
	PeopleSoft struct {
		BaseURL        string        `yaml:"base_url" env:"PEOPLESOFT_BASE_URL"`
		Username       string        `yaml:"username" env:"PEOPLESOFT_USERNAME"`
		Password       string        `yaml:"password" env:"PEOPLESOFT_PASSWORD"`
		Mode           string        `yaml:"mode" env:"PEOPLESOFT_MODE"`
		RequestTimeout time.Duration `yaml:"request_timeout" env:"PEOPLESOFT_REQUEST_TIMEOUT"`
	}
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "LegacyBridge API",
			Version: "DEVELOPMENT",
		},
		HTTP: HTTP{
			Host: "localhost",
			Port: "3000",
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
			},
			AllowedHeaders: []string{
				"Content-Type",
				"Authorization",
			},
		},
		Log: Log{
			Level: "info",
		},
		PeopleSoft: PeopleSoft{
			BaseURL:        "http://localhost:4000",
			Username:       "psadmin",
			Password:       "changeme",
			Mode:           ModeSimulated,
			RequestTimeout: 10 * time.Second,
		},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	exPath := filepath.Dir(ex)

	return filepath.Join(exPath, "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		// Write config file out to disk
		configDir := filepath.Dir(configPath)
		if mkErr := os.MkdirAll(configDir, os.ModePerm); mkErr != nil {
			return mkErr
		}

		file, cErr := os.Create(configPath)
		if cErr != nil {
			return cErr
		}
		defer file.Close()

		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		if encErr := encoder.Encode(cfg); encErr != nil {
			return encErr
		}

		return nil
	}

	return err
}

// NewConfig returns app config. The value is built once at startup and
// passed by handle into every component that needs it.
func NewConfig() (*Config, error) {
	cfg := defaultConfig()

	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	// Define a command line flag for the config path
	var configPathFlag string
	if flag.Lookup("config") == nil {
		flag.StringVar(&configPathFlag, "config", "", "path to config file")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	configPath, err := resolveConfigPath(configPathFlag)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(configPath, cfg); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
