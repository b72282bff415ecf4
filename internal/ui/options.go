package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"github.com/chewxy/math32"

	"anchortip/internal/geometry"
)

const (
	defaultCornerRadius = float32(8)
	defaultArrowHeight  = float32(8)
	defaultArrowWidth   = float32(16)

	// minContentWidth is the floor applied to every width constraint so
	// configuration cannot produce a degenerate zero-width layout.
	minContentWidth = float32(100)
	// mainAxisInset is subtracted from the viewport width when no
	// explicit width is configured for up/down placement.
	mainAxisInset = float32(32)

	hoverHideDelay = 200 * time.Millisecond
)

var defaultBackground = color.NRGBA{A: 0xcc}

// Options is the recognized tooltip configuration surface. The zero
// value is not useful on its own; start from DefaultOptions and adjust.
type Options struct {
	// PreferredDirection is the side of the anchor tried first. When it
	// lacks room and the opposite side has it, placement flips once.
	PreferredDirection geometry.Direction

	ShowOnTap   bool
	ShowOnHover bool

	// HideOnScroll tears the tooltip down when any watched scroll
	// container enclosing the anchor moves.
	HideOnScroll bool

	// AutoHide hides the tooltip after this duration. Zero means the
	// tooltip stays until dismissed.
	AutoHide time.Duration

	// Margin is extra distance between anchor and tooltip body, on top
	// of the arrow extrusion.
	Margin float32

	// MainAxisWidth caps content width for up/down placement; zero
	// falls back to viewport width minus an inset. SideAxisWidth is the
	// same for left/right placement; zero falls back to half the
	// viewport width.
	MainAxisWidth float32
	SideAxisWidth float32

	BackgroundColor color.Color
	CornerRadius    float32
	BorderColor     color.Color
	BorderWidth     float32

	ArrowHeight float32
	ArrowWidth  float32
}

func DefaultOptions() Options {
	return Options{
		PreferredDirection: geometry.DirUp,
		ShowOnTap:          true,
		HideOnScroll:       true,
		BackgroundColor:    defaultBackground,
		CornerRadius:       defaultCornerRadius,
		ArrowHeight:        defaultArrowHeight,
		ArrowWidth:         defaultArrowWidth,
	}
}

// fillMissing resolves fields where the zero value means "use the
// default", leaving deliberate zeros (margin, auto-hide, border) alone.
func (o *Options) fillMissing() {
	if o.BackgroundColor == nil {
		o.BackgroundColor = defaultBackground
	}
	if o.ArrowHeight <= 0 {
		o.ArrowHeight = defaultArrowHeight
	}
	if o.ArrowWidth <= 0 {
		o.ArrowWidth = defaultArrowWidth
	}
}

func (o *Options) stroked() bool {
	return o.BorderColor != nil && o.BorderWidth > 0
}

// maxContentWidth is the width the tooltip content is constrained to
// for the given placement axis. Flips never change the axis, so the
// preferred direction determines which configured width applies.
func (o *Options) maxContentWidth(viewport fyne.Size, dir geometry.Direction) float32 {
	var w float32
	if dir.Horizontal() {
		w = o.SideAxisWidth
		if w <= 0 {
			w = viewport.Width * 0.5
		}
	} else {
		w = o.MainAxisWidth
		if w <= 0 {
			w = viewport.Width - mainAxisInset
		}
	}

	return math32.Max(w, minContentWidth)
}
