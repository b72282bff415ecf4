package geometry

import "fyne.io/fyne/v2"

// ArrowSpec describes the pointer connecting the tooltip body to its
// anchor. Size is the bounding box of the arrow in local coordinates;
// Overlap is how far the arrow base extends back into the tooltip body
// to hide the corner-radius seam.
type ArrowSpec struct {
	Direction   Direction
	Size        fyne.Size
	Overlap     float32
	StrokeWidth float32
	Stroked     bool
}

// Segment is a single straight stroke in arrow-local coordinates.
type Segment struct {
	A fyne.Position
	B fyne.Position
}

// ArrowGeometry is the declarative draw description for an arrow: a
// closed fill outline and, when a border is configured, the two edges
// running from the tip to each base corner. The base edge itself is
// never part of Strokes so the arrow fuses with the body border.
type ArrowGeometry struct {
	Fill    []fyne.Position
	Strokes []Segment
}

// BuildArrow produces the outline for the given spec. The shape is a
// rectangle of depth Overlap merging into the tooltip body plus a
// triangle whose tip sits at the midpoint of the opposite box edge.
// Deterministic: identical specs yield identical vertex sequences.
func BuildArrow(spec ArrowSpec) ArrowGeometry {
	w := spec.Size.Width
	h := spec.Size.Height
	o := spec.Overlap

	var fill []fyne.Position
	var tip, baseA, baseB fyne.Position

	switch spec.Direction {
	case DirUp:
		// Body sits above the anchor; tip points down.
		tip = fyne.NewPos(w/2, h)
		baseA = fyne.NewPos(0, o)
		baseB = fyne.NewPos(w, o)
		fill = []fyne.Position{
			fyne.NewPos(0, 0), baseA, tip, baseB, fyne.NewPos(w, 0),
		}
	case DirDown:
		// Body sits below the anchor; tip points up.
		tip = fyne.NewPos(w/2, 0)
		baseA = fyne.NewPos(0, h-o)
		baseB = fyne.NewPos(w, h-o)
		fill = []fyne.Position{
			fyne.NewPos(0, h), baseA, tip, baseB, fyne.NewPos(w, h),
		}
	case DirLeft:
		// Body sits left of the anchor; tip points right.
		tip = fyne.NewPos(w, h/2)
		baseA = fyne.NewPos(o, 0)
		baseB = fyne.NewPos(o, h)
		fill = []fyne.Position{
			fyne.NewPos(0, 0), baseA, tip, baseB, fyne.NewPos(0, h),
		}
	case DirRight:
		// Body sits right of the anchor; tip points left.
		tip = fyne.NewPos(0, h/2)
		baseA = fyne.NewPos(w-o, 0)
		baseB = fyne.NewPos(w-o, h)
		fill = []fyne.Position{
			fyne.NewPos(w, 0), baseA, tip, baseB, fyne.NewPos(w, h),
		}
	}

	geom := ArrowGeometry{Fill: fill}
	if spec.Stroked && spec.StrokeWidth > 0 {
		geom.Strokes = []Segment{
			{A: baseA, B: tip},
			{A: tip, B: baseB},
		}
	}

	return geom
}
