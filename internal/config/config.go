package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

const (
	configDir      = ".modalslot"
	configFileJSON = "config.json"
	configFileYAML = "config.yaml"
)

// Style describes a lipgloss style in config files. Empty fields leave
// the base style unchanged.
type Style struct {
	Foreground  string `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Background  string `json:"background,omitempty" yaml:"background,omitempty"`
	Border      string `json:"border,omitempty" yaml:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty" yaml:"border_color,omitempty"`
	Padding     []int  `json:"padding,omitempty" yaml:"padding,omitempty"`
}

// Config holds the modal host settings.
type Config struct {
	// DefaultCancelable applies to modals opened without an explicit
	// cancel policy. Nil means the controller default (true).
	DefaultCancelable *bool `json:"default_cancelable,omitempty" yaml:"default_cancelable,omitempty"`
	// Dim keeps the app visible behind the dialog. Nil means true.
	Dim      *bool `json:"dim,omitempty" yaml:"dim,omitempty"`
	Backdrop Style `json:"backdrop,omitempty" yaml:"backdrop,omitempty"`
	Root     Style `json:"root,omitempty" yaml:"root,omitempty"`
}

// Path returns the JSON config path under baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, configDir, configFileJSON)
}

// Load reads the config from disk. config.json wins over config.yaml; a
// missing file yields an empty config.
func Load(baseDir string) (*Config, error) {
	dir := filepath.Join(baseDir, configDir)

	data, err := os.ReadFile(filepath.Join(dir, configFileJSON))
	if err == nil {
		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configFileJSON, err)
		}
		return &cfg, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	data, err = os.ReadFile(filepath.Join(dir, configFileYAML))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFileYAML, err)
	}
	return &cfg, nil
}

// Save writes the config to disk as JSON.
func Save(baseDir string, cfg *Config) error {
	configPath := Path(baseDir)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// SetDefaultCancelable persists the default cancel flag.
func SetDefaultCancelable(baseDir string, v bool) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.DefaultCancelable = &v
	return Save(baseDir, cfg)
}

// Apply layers s over base.
func (s Style) Apply(base lipgloss.Style) (lipgloss.Style, error) {
	if s.Foreground != "" {
		base = base.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		base = base.Background(lipgloss.Color(s.Background))
	}
	if s.Border != "" {
		border, ok := borders[strings.ToLower(s.Border)]
		if !ok {
			return base, fmt.Errorf("unknown border %q", s.Border)
		}
		if strings.EqualFold(s.Border, "none") {
			base = base.Border(border, false)
		} else {
			base = base.Border(border)
		}
	}
	if s.BorderColor != "" {
		base = base.BorderForeground(lipgloss.Color(s.BorderColor))
	}
	if len(s.Padding) > 0 {
		if len(s.Padding) > 4 {
			return base, fmt.Errorf("padding takes 1 to 4 values, got %d", len(s.Padding))
		}
		base = base.Padding(s.Padding...)
	}
	return base, nil
}

var borders = map[string]lipgloss.Border{
	"none":    {},
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"thick":   lipgloss.ThickBorder(),
	"double":  lipgloss.DoubleBorder(),
	"hidden":  lipgloss.HiddenBorder(),
}
