package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds connex settings loaded from .connex.yaml and the environment.
type Config struct {
	StartDir     string `yaml:"start_dir"`
	ShowHidden   bool   `yaml:"show_hidden"`
	Format       string `yaml:"format"`
	TopCompanies int    `yaml:"top_companies"`
}

// OutputFormat returns the report format, defaulting to text.
func (c Config) OutputFormat() string {
	if c.Format == "" {
		return "text"
	}
	return strings.ToLower(c.Format)
}

// Validate rejects settings the reporters cannot honour.
func (c Config) Validate() error {
	switch c.OutputFormat() {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported format %q (use text or json)", c.Format)
	}
	if c.TopCompanies < 0 {
		return fmt.Errorf("top_companies must not be negative, got %d", c.TopCompanies)
	}
	return nil
}

// Load searches dir for .connex.yaml or .connex.yml, then applies overrides
// from dir/.env and the process environment. Missing files are not an error.
func Load(dir string) (Config, error) {
	var cfg Config

	candidates := []string{
		filepath.Join(dir, ".connex.yaml"),
		filepath.Join(dir, ".connex.yml"),
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		break
	}

	envFile := filepath.Join(dir, ".env")
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read env file %s: %w", envFile, err)
	}

	cfg.StartDir = getEnv("CONNEX_START_DIR", cfg.StartDir)
	cfg.ShowHidden = getEnvBool("CONNEX_SHOW_HIDDEN", cfg.ShowHidden)
	cfg.Format = getEnv("CONNEX_FORMAT", cfg.Format)
	cfg.TopCompanies = getEnvInt("CONNEX_TOP_COMPANIES", cfg.TopCompanies)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
