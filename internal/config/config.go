package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const (
	configFileBase = "shift_scheduler"
	defaultLogDir  = "logs"
)

// ErrConfigNotFound is returned when no config file exists in the searched locations
var ErrConfigNotFound = errors.New("config file not found in current directory or home directory")

// StaffingOverride changes the minimum staffing of the slots it selects
type StaffingOverride struct {
	// Days is an RRULE whose BYDAY part selects the days (no BYDAY = every day)
	Days string `yaml:"days" validate:"required"`
	// Shift limits the override to one shift (empty = every shift)
	Shift       string `yaml:"shift,omitempty" validate:"omitempty,oneof=morning afternoon evening"`
	MinStaffing int    `yaml:"minStaffing" validate:"required,min=1"`
}

// Config represents the application configuration
type Config struct {
	MinStaffing       int                `yaml:"minStaffing" validate:"min=1"`
	WeeklyCap         int                `yaml:"weeklyCap" validate:"min=1,max=7"`
	Output            string             `yaml:"output,omitempty" validate:"omitempty,oneof=plain table"`
	Seed              *uint64            `yaml:"seed,omitempty"`
	DatabaseURL       string             `yaml:"databaseURL,omitempty"`
	LogDir            string             `yaml:"logDir,omitempty"`
	StaffingOverrides []StaffingOverride `yaml:"staffingOverrides,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		MinStaffing: 2,
		WeeklyCap:   5,
		Output:      "plain",
		LogDir:      defaultLogDir,
	}
}

// LoadWithEnv loads shift_scheduler.<env>.yaml, falling back to shift_scheduler.yaml.
// Each name is looked for in the current directory first, then in the user's home directory.
// If no file exists the defaults are returned.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
// Fields missing from the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate rrule syntax for each override
	for i, override := range cfg.StaffingOverrides {
		if _, err := rrule.StrToROption(override.Days); err != nil {
			return fmt.Errorf("invalid rrule in staffingOverrides[%d]: %w", i, err)
		}
	}

	return nil
}

// ConfiguredLogDir returns the log directory, defaulting to "logs"
func (c *Config) ConfiguredLogDir() string {
	if c.LogDir == "" {
		return defaultLogDir
	}
	return c.LogDir
}

// findConfigFile searches for the env specific file, then the shared file,
// in the current directory and the home directory
func findConfigFile(env string) (string, error) {
	var candidates []string
	if env != "" {
		candidates = append(candidates, fmt.Sprintf("%s.%s.yaml", configFileBase, env))
	}
	candidates = append(candidates, configFileBase+".yaml")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	for _, name := range candidates {
		// Check current directory
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}

		// Check home directory
		homeConfigPath := filepath.Join(homeDir, name)
		if _, err := os.Stat(homeConfigPath); err == nil {
			return homeConfigPath, nil
		}
	}

	return "", ErrConfigNotFound
}
