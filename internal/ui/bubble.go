package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/chewxy/math32"

	"anchortip/internal/geometry"
)

// arrowOverlap is how far the arrow base reaches back into the bubble
// so the seam with the rounded corner background stays hidden.
const arrowOverlap = float32(2)

// newBubble composes the tooltip body: rounded background with optional
// border, padded content on top.
func newBubble(content fyne.CanvasObject, opts *Options) fyne.CanvasObject {
	bg := canvas.NewRectangle(opts.BackgroundColor)
	bg.CornerRadius = opts.CornerRadius
	if opts.stroked() {
		bg.StrokeColor = opts.BorderColor
		bg.StrokeWidth = opts.BorderWidth
	}

	return container.NewStack(bg, container.NewPadded(content))
}

type overlayLayout struct {
	viewport   fyne.Size
	bubble     fyne.CanvasObject
	bubbleSize fyne.Size
	placed     geometry.PlacementResult
	anchorPos  fyne.Position
	anchorSize fyne.Size
	opts       *Options
	onDismiss  func()
}

// newOverlay assembles the visible overlay: a full-viewport backdrop
// that dismisses on tap, the positioned bubble, and the arrow bridging
// bubble and anchor.
func newOverlay(l overlayLayout) fyne.CanvasObject {
	backdrop := newTapCatcher(l.onDismiss)
	backdrop.Resize(l.viewport)

	l.bubble.Resize(l.bubbleSize)
	l.bubble.Move(l.placed.Origin)

	arrowBox := arrowBoxSize(l.placed.Direction, l.opts)
	arrow := newArrowObject(geometry.BuildArrow(geometry.ArrowSpec{
		Direction:   l.placed.Direction,
		Size:        arrowBox,
		Overlap:     arrowOverlap,
		StrokeWidth: l.opts.BorderWidth,
		Stroked:     l.opts.stroked(),
	}), l.opts)
	arrow.Resize(arrowBox)
	arrow.Move(arrowOrigin(l.placed, l.bubbleSize, arrowBox, l.anchorPos, l.anchorSize, l.opts))

	return container.NewWithoutLayout(backdrop, l.bubble, arrow)
}

// arrowBoxSize is the arrow bounding box: extrusion depth plus the
// overlap back into the bubble, with the configured width across.
func arrowBoxSize(dir geometry.Direction, opts *Options) fyne.Size {
	depth := opts.ArrowHeight + arrowOverlap
	if dir.Horizontal() {
		return fyne.NewSize(depth, opts.ArrowWidth)
	}

	return fyne.NewSize(opts.ArrowWidth, depth)
}

// arrowOrigin positions the arrow box against the bubble edge facing
// the anchor, centered on the anchor along the shared edge but kept
// clear of the rounded corners.
func arrowOrigin(placed geometry.PlacementResult, bubbleSize, arrowBox fyne.Size, anchorPos fyne.Position, anchorSize fyne.Size, opts *Options) fyne.Position {
	origin := placed.Origin

	if placed.Direction.Horizontal() {
		centered := anchorPos.Y + anchorSize.Height/2 - arrowBox.Height/2
		y := clampSpan(centered, origin.Y+opts.CornerRadius, origin.Y+bubbleSize.Height-opts.CornerRadius-arrowBox.Height)
		if placed.Direction == geometry.DirLeft {
			return fyne.NewPos(origin.X+bubbleSize.Width-arrowOverlap, y)
		}

		return fyne.NewPos(origin.X-opts.ArrowHeight, y)
	}

	centered := anchorPos.X + anchorSize.Width/2 - arrowBox.Width/2
	x := clampSpan(centered, origin.X+opts.CornerRadius, origin.X+bubbleSize.Width-opts.CornerRadius-arrowBox.Width)
	if placed.Direction == geometry.DirUp {
		return fyne.NewPos(x, origin.Y+bubbleSize.Height-arrowOverlap)
	}

	return fyne.NewPos(x, origin.Y-opts.ArrowHeight)
}

func clampSpan(v, lo, hi float32) float32 {
	if hi < lo {
		return lo
	}

	return math32.Min(math32.Max(v, lo), hi)
}

var _ fyne.Tappable = (*tapCatcher)(nil)

// tapCatcher is the transparent full-viewport backdrop that hides the
// tooltip when the user taps outside its body.
type tapCatcher struct {
	widget.BaseWidget

	onTap func()
}

func newTapCatcher(onTap func()) *tapCatcher {
	c := &tapCatcher{onTap: onTap}
	c.ExtendBaseWidget(c)

	return c
}

func (c *tapCatcher) Tapped(*fyne.PointEvent) {
	if c.onTap != nil {
		c.onTap()
	}
}

func (c *tapCatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
