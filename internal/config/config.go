package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LoggingConfig defines runtime logging behavior.
type LoggingConfig struct {
	Level     string `json:"level"`
	LogToFile bool   `json:"log_to_file"`
}

// TooltipConfig stores the demo's default tooltip appearance. Colors
// are hex strings ("#rrggbb" or "#rrggbbaa"); empty means the built-in
// default.
type TooltipConfig struct {
	PreferredDirection string  `json:"preferred_direction"`
	ShowOnTap          bool    `json:"show_on_tap"`
	ShowOnHover        bool    `json:"show_on_hover"`
	HideOnScroll       bool    `json:"hide_on_scroll"`
	AutoHideMs         int     `json:"auto_hide_ms"`
	Margin             float32 `json:"margin"`
	CornerRadius       float32 `json:"corner_radius"`
	ArrowWidth         float32 `json:"arrow_width"`
	ArrowHeight        float32 `json:"arrow_height"`
	BackgroundColor    string  `json:"background_color"`
	BorderColor        string  `json:"border_color"`
	BorderWidth        float32 `json:"border_width"`
}

// AppConfig is the root persisted demo configuration.
type AppConfig struct {
	Logging LoggingConfig `json:"logging"`
	Tooltip TooltipConfig `json:"tooltip"`
}

func Default() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{
			Level:     "info",
			LogToFile: false,
		},
		Tooltip: TooltipConfig{
			PreferredDirection: "up",
			ShowOnTap:          true,
			ShowOnHover:        false,
			HideOnScroll:       true,
			CornerRadius:       8,
			ArrowWidth:         16,
			ArrowHeight:        8,
		},
	}
}

func Load(path string) (AppConfig, error) {
	cfg := Default()
	cleanPath := filepath.Clean(path)
	// #nosec G304 -- path is resolved by app runtime and points to user config dir.
	raw, err := os.ReadFile(cleanPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return AppConfig{}, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(raw, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("decode config json: %w", err)
	}

	cfg.FillMissingDefaults()

	return cfg, nil
}

func Save(path string, cfg AppConfig) error {
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config json: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(path), raw, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func (c *AppConfig) FillMissingDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Tooltip.PreferredDirection == "" {
		c.Tooltip.PreferredDirection = "up"
	}
	if c.Tooltip.CornerRadius < 0 {
		c.Tooltip.CornerRadius = 0
	}
	if c.Tooltip.ArrowWidth <= 0 {
		c.Tooltip.ArrowWidth = 16
	}
	if c.Tooltip.ArrowHeight <= 0 {
		c.Tooltip.ArrowHeight = 8
	}
	if c.Tooltip.AutoHideMs < 0 {
		c.Tooltip.AutoHideMs = 0
	}
}

func (c AppConfig) Validate() error {
	switch c.Tooltip.PreferredDirection {
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("unknown preferred direction: %q", c.Tooltip.PreferredDirection)
	}
	if c.Tooltip.BorderWidth < 0 {
		return errors.New("border width must not be negative")
	}

	return nil
}
