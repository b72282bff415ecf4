package geometry

import (
	"fyne.io/fyne/v2"

	"github.com/chewxy/math32"
)

// MinEdgeMargin is the minimum clearance kept between the tooltip box
// and the viewport edge on every axis.
const MinEdgeMargin float32 = 16

// PlacementRequest fully determines a placement decision. All
// coordinates are screen space with the origin top-left and y growing
// downward.
type PlacementRequest struct {
	Viewport    fyne.Size
	AnchorPos   fyne.Position
	AnchorSize  fyne.Size
	ContentSize fyne.Size
	Preferred   Direction
	Margin      float32
}

// PlacementResult is the final tooltip origin together with the
// direction actually used, which may be the flip of the preferred one.
type PlacementResult struct {
	Origin    fyne.Position
	Direction Direction
}

// Place decides where the tooltip box goes. The preferred direction is
// flipped to its opposite exactly once when it lacks room and the
// opposite has it; there is no fallback to the orthogonal axis. The raw
// position centers the box on the anchor along the cross axis, then
// both axes are clamped to the viewport minus MinEdgeMargin. Content
// larger than the available viewport region degrades to edge-flush
// placement at the minimum margin.
func Place(req PlacementRequest) PlacementResult {
	dir := chooseDirection(req)

	var left, top float32
	switch dir {
	case DirUp:
		left = req.AnchorPos.X + req.AnchorSize.Width/2 - req.ContentSize.Width/2
		top = req.AnchorPos.Y - req.ContentSize.Height - req.Margin
	case DirDown:
		left = req.AnchorPos.X + req.AnchorSize.Width/2 - req.ContentSize.Width/2
		top = req.AnchorPos.Y + req.AnchorSize.Height + req.Margin
	case DirLeft:
		left = req.AnchorPos.X - req.ContentSize.Width - req.Margin
		top = req.AnchorPos.Y + req.AnchorSize.Height/2 - req.ContentSize.Height/2
	case DirRight:
		left = req.AnchorPos.X + req.AnchorSize.Width + req.Margin
		top = req.AnchorPos.Y + req.AnchorSize.Height/2 - req.ContentSize.Height/2
	}

	left = clampAxis(left, req.Viewport.Width, req.ContentSize.Width)
	top = clampAxis(top, req.Viewport.Height, req.ContentSize.Height)

	return PlacementResult{Origin: fyne.NewPos(left, top), Direction: dir}
}

func chooseDirection(req PlacementRequest) Direction {
	fitsAbove := req.AnchorPos.Y-req.ContentSize.Height-req.Margin > MinEdgeMargin
	fitsBelow := req.AnchorPos.Y+req.AnchorSize.Height+req.ContentSize.Height+req.Margin < req.Viewport.Height-MinEdgeMargin
	fitsLeft := req.AnchorPos.X-req.ContentSize.Width-req.Margin > MinEdgeMargin
	fitsRight := req.AnchorPos.X+req.AnchorSize.Width+req.ContentSize.Width+req.Margin < req.Viewport.Width-MinEdgeMargin

	switch req.Preferred {
	case DirUp:
		if !fitsAbove && fitsBelow {
			return DirDown
		}
	case DirDown:
		if !fitsBelow && fitsAbove {
			return DirUp
		}
	case DirLeft:
		if !fitsLeft && fitsRight {
			return DirRight
		}
	case DirRight:
		if !fitsRight && fitsLeft {
			return DirLeft
		}
	}

	return req.Preferred
}

// clampAxis keeps [pos, pos+content] inside the viewport band
// [MinEdgeMargin, viewport-MinEdgeMargin]. When the content cannot fit
// the band it pins to the leading edge instead.
func clampAxis(pos, viewport, content float32) float32 {
	maxPos := viewport - content - MinEdgeMargin
	if maxPos <= MinEdgeMargin {
		return MinEdgeMargin
	}

	return math32.Min(math32.Max(pos, MinEdgeMargin), maxPos)
}
