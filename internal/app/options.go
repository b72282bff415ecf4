package app

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"anchortip/internal/config"
	"anchortip/internal/geometry"
	"anchortip/internal/ui"
)

// TooltipOptions converts persisted tooltip settings into runtime
// options. Empty color strings keep the built-in defaults.
func TooltipOptions(cfg config.TooltipConfig) (ui.Options, error) {
	dir, err := geometry.ParseDirection(cfg.PreferredDirection)
	if err != nil {
		return ui.Options{}, err
	}

	opts := ui.DefaultOptions()
	opts.PreferredDirection = dir
	opts.ShowOnTap = cfg.ShowOnTap
	opts.ShowOnHover = cfg.ShowOnHover
	opts.HideOnScroll = cfg.HideOnScroll
	opts.AutoHide = time.Duration(cfg.AutoHideMs) * time.Millisecond
	opts.Margin = cfg.Margin
	opts.CornerRadius = cfg.CornerRadius
	opts.BorderWidth = cfg.BorderWidth
	if cfg.ArrowWidth > 0 {
		opts.ArrowWidth = cfg.ArrowWidth
	}
	if cfg.ArrowHeight > 0 {
		opts.ArrowHeight = cfg.ArrowHeight
	}

	if cfg.BackgroundColor != "" {
		c, err := parseHexColor(cfg.BackgroundColor)
		if err != nil {
			return ui.Options{}, fmt.Errorf("background color: %w", err)
		}
		opts.BackgroundColor = c
	}
	if cfg.BorderColor != "" {
		c, err := parseHexColor(cfg.BorderColor)
		if err != nil {
			return ui.Options{}, fmt.Errorf("border color: %w", err)
		}
		opts.BorderColor = c
	}

	return opts, nil
}

// parseHexColor accepts "#rrggbb" and "#rrggbbaa".
func parseHexColor(raw string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", raw)
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", raw)
	}

	if len(hex) == 6 {
		return color.NRGBA{
			R: uint8(val >> 16),
			G: uint8(val >> 8),
			B: uint8(val),
			A: 0xff,
		}, nil
	}

	return color.NRGBA{
		R: uint8(val >> 24),
		G: uint8(val >> 16),
		B: uint8(val >> 8),
		A: uint8(val),
	}, nil
}
