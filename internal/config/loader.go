package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".revcheck"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .revcheck configuration file.
// Every field is optional; unset fields keep their current values, so a
// file can override any subset of the defaults.
type File struct {
	// URL overrides the target page.
	URL string `yaml:"url,omitempty"`

	// SliderMin and SliderMax override the slider's logical bounds.
	// Pointers distinguish "not set" from an explicit zero.
	SliderMin *int `yaml:"sliderMin,omitempty"`
	SliderMax *int `yaml:"sliderMax,omitempty"`

	// SliderTarget overrides the logical value to drive the slider to.
	SliderTarget *int `yaml:"sliderTarget,omitempty"`

	// TextboxTarget overrides the string typed into the numeric input.
	TextboxTarget string `yaml:"textboxTarget,omitempty"`

	// Codes overrides the ordered CPT code list.
	Codes []string `yaml:"codeIdentifiers,omitempty"`

	// WaitTimeout overrides the explicit-wait timeout.
	WaitTimeout time.Duration `yaml:"waitTimeout,omitempty"`

	// Headless overrides whether Chrome runs without a visible window.
	Headless *bool `yaml:"headless,omitempty"`

	// ChromeDriverPath and ChromeDriverPort override the chromedriver
	// launch settings.
	ChromeDriverPath string `yaml:"chromedriverPath,omitempty"`
	ChromeDriverPort *int   `yaml:"chromedriverPort,omitempty"`
}

// LoadConfigFile loads scenario overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the path was explicitly specified.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply copies the file's set fields onto the config, leaving everything
// else untouched. Flags are applied after this, so the precedence is
// defaults < file < flags.
func (cf *File) Apply(cfg *Config) {
	if cf.URL != "" {
		cfg.URL = cf.URL
	}
	if cf.SliderMin != nil {
		cfg.SliderMin = *cf.SliderMin
	}
	if cf.SliderMax != nil {
		cfg.SliderMax = *cf.SliderMax
	}
	if cf.SliderTarget != nil {
		cfg.SliderTarget = *cf.SliderTarget
	}
	if cf.TextboxTarget != "" {
		cfg.TextboxTarget = cf.TextboxTarget
	}
	if len(cf.Codes) > 0 {
		cfg.Codes = cf.Codes
	}
	if cf.WaitTimeout > 0 {
		cfg.WaitTimeout = cf.WaitTimeout
	}
	if cf.Headless != nil {
		cfg.Headless = *cf.Headless
	}
	if cf.ChromeDriverPath != "" {
		cfg.ChromeDriverPath = cf.ChromeDriverPath
	}
	if cf.ChromeDriverPort != nil {
		cfg.ChromeDriverPort = *cf.ChromeDriverPort
	}
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .revcheck in the current directory
//  3. Look for .revcheck in the user's home directory
//  4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	// Check XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
