package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/chewxy/math32"

	"anchortip/internal/geometry"
)

type sessionState int

const (
	stateIdle sessionState = iota
	stateMeasuring
	stateVisible
)

// Session owns the overlay lifecycle for one trigger: Idle →
// Measuring (off-screen probe mounted) → Visible (positioned overlay
// mounted) → Idle. At most one overlay exists per session, and every
// asynchronous callback re-checks the generation counter so a torn-down
// session is never resurrected.
type Session struct {
	host    Host
	scrolls *ScrollRegistry
	opts    Options
	logger  *slog.Logger

	state       sessionState
	gen         uint64
	overlay     fyne.CanvasObject
	cancelTimer func()
	stopScroll  func()
}

func NewSession(host Host, scrolls *ScrollRegistry, opts Options) *Session {
	opts.fillMissing()

	return &Session{
		host:    host,
		scrolls: scrolls,
		opts:    opts,
		logger:  slog.With("component", "ui.tooltip"),
	}
}

// Visible reports whether the session currently has a positioned
// overlay mounted.
func (s *Session) Visible() bool {
	return s.state == stateVisible
}

// Show starts the measure → place → mount pipeline for content anchored
// to anchor. A no-op while a show is already in flight or visible, and
// a silent no-op when the anchor is not attached to a canvas.
func (s *Session) Show(anchor, content fyne.CanvasObject) {
	if s.state != stateIdle || s.host == nil || anchor == nil || content == nil {
		return
	}
	if _, _, ok := s.host.AnchorGeometry(anchor); !ok {
		s.logger.Debug("show skipped: anchor not attached")

		return
	}

	s.state = stateMeasuring
	s.gen++
	gen := s.gen

	bubble := newBubble(content, &s.opts)
	measureOffscreen(s.host, bubble, func(natural fyne.Size) {
		if s.gen != gen || s.state != stateMeasuring {
			s.logger.Debug("discarding stale measurement")

			return
		}
		s.present(anchor, bubble, natural)
	})
}

func (s *Session) present(anchor fyne.CanvasObject, bubble fyne.CanvasObject, natural fyne.Size) {
	anchorPos, anchorSize, ok := s.host.AnchorGeometry(anchor)
	if !ok {
		s.state = stateIdle

		return
	}

	viewport := s.host.ViewportSize()
	capWidth := s.opts.maxContentWidth(viewport, s.opts.PreferredDirection)
	size := fyne.NewSize(math32.Min(natural.Width, capWidth), natural.Height)

	placed := geometry.Place(geometry.PlacementRequest{
		Viewport:    viewport,
		AnchorPos:   anchorPos,
		AnchorSize:  anchorSize,
		ContentSize: size,
		Preferred:   s.opts.PreferredDirection,
		Margin:      s.opts.Margin + s.opts.ArrowHeight,
	})

	s.overlay = newOverlay(overlayLayout{
		viewport:   viewport,
		bubble:     bubble,
		bubbleSize: size,
		placed:     placed,
		anchorPos:  anchorPos,
		anchorSize: anchorSize,
		opts:       &s.opts,
		onDismiss:  s.Hide,
	})
	s.host.Mount(s.overlay)
	s.state = stateVisible
	s.logger.Debug("tooltip shown",
		"direction", placed.Direction.String(),
		"origin_x", placed.Origin.X,
		"origin_y", placed.Origin.Y,
	)

	if s.opts.AutoHide > 0 {
		gen := s.gen
		s.cancelTimer = s.host.Schedule(s.opts.AutoHide, func() {
			if s.gen != gen {
				return
			}
			s.Hide()
		})
	}

	if s.opts.HideOnScroll && s.scrolls != nil {
		s.stopScroll = s.scrolls.subscribeHide(anchor, func() {
			fyne.Do(s.Hide)
		})
	}
}

// Hide tears the overlay down and releases the timer and scroll
// subscriptions. Safe to call in any state; hiding an idle session is
// a no-op.
func (s *Session) Hide() {
	if s.state == stateIdle {
		return
	}

	s.gen++
	if s.cancelTimer != nil {
		s.cancelTimer()
		s.cancelTimer = nil
	}
	if s.stopScroll != nil {
		s.stopScroll()
		s.stopScroll = nil
	}
	if s.overlay != nil {
		s.host.Unmount(s.overlay)
		s.overlay = nil
	}
	s.state = stateIdle
}
