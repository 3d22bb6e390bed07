package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	TagMatchSubstring = "substring"
	TagMatchFuzzy     = "fuzzy"
)

// Config holds the resolved application configuration
type Config struct {
	Color      string
	TagMatch   string
	Extensions []string
	LogDir     string
}

// Settings represents the config file structure
type Settings struct {
	Color      string   `yaml:"color,omitempty"`
	TagMatch   string   `yaml:"tag_match,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`
	LogDir     string   `yaml:"log_dir,omitempty"`
}

// CLIFlags holds parsed CLI flags. Empty fields leave lower layers in effect.
type CLIFlags struct {
	Color      string
	TagMatch   string
	Extensions []string
	LogDir     string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		Color:      ColorAuto,
		TagMatch:   TagMatchSubstring,
		Extensions: []string{".dvlg"},
	}

	configPath, err := getConfigPath()
	if err == nil {
		fileConfig, err := loadConfigFile(configPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if fileConfig != nil {
			cfg.apply(*fileConfig)
		}
	}

	// Environment variables override config file
	cfg.apply(Settings{
		Color:      os.Getenv("DVLG_COLOR"),
		TagMatch:   os.Getenv("DVLG_TAG_MATCH"),
		Extensions: parseColonSeparated(os.Getenv("DVLG_EXTENSIONS")),
		LogDir:     os.Getenv("DVLG_LOG_DIR"),
	})

	// CLI flags override everything
	cfg.apply(Settings{
		Color:      flags.Color,
		TagMatch:   flags.TagMatch,
		Extensions: flags.Extensions,
		LogDir:     flags.LogDir,
	})

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(s Settings) {
	if s.Color != "" {
		c.Color = s.Color
	}
	if s.TagMatch != "" {
		c.TagMatch = s.TagMatch
	}
	if len(s.Extensions) > 0 {
		c.Extensions = normalizeExtensions(s.Extensions)
	}
	if s.LogDir != "" {
		c.LogDir = expandPath(s.LogDir)
	}
}

func (c *Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	switch c.TagMatch {
	case TagMatchSubstring, TagMatchFuzzy:
	default:
		return fmt.Errorf("invalid tag match %q (want substring or fuzzy)", c.TagMatch)
	}
	return nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "dvlg", "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &settings, nil
}

// ParseCommaSeparated splits a comma-separated string into a slice
func ParseCommaSeparated(s string) []string {
	return splitTrimmed(s, ",")
}

func parseColonSeparated(s string) []string {
	return splitTrimmed(s, ":")
}

func splitTrimmed(s, sep string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, p := range strings.Split(s, sep) {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// normalizeExtensions makes sure every extension carries its leading dot
func normalizeExtensions(exts []string) []string {
	result := make([]string, 0, len(exts))
	for _, e := range exts {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		result = append(result, strings.ToLower(e))
	}
	return result
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
