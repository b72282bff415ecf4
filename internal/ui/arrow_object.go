package ui

import (
	"image"
	"image/color"
	"image/draw"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"anchortip/internal/geometry"
)

// arrowObject renders an ArrowGeometry: the fill outline is rasterized
// with a point-in-polygon test, and each stroke segment becomes a line.
// Fyne has no polygon primitive, so the raster fills that gap.
type arrowObject struct {
	widget.BaseWidget

	geom        geometry.ArrowGeometry
	fillColor   color.Color
	strokeColor color.Color
	strokeWidth float32
}

func newArrowObject(geom geometry.ArrowGeometry, opts *Options) *arrowObject {
	a := &arrowObject{
		geom:        geom,
		fillColor:   opts.BackgroundColor,
		strokeColor: opts.BorderColor,
		strokeWidth: opts.BorderWidth,
	}
	a.ExtendBaseWidget(a)

	return a
}

func (a *arrowObject) CreateRenderer() fyne.WidgetRenderer {
	raster := canvas.NewRaster(a.rasterize)
	objects := []fyne.CanvasObject{raster}

	lines := make([]*canvas.Line, 0, len(a.geom.Strokes))
	for range a.geom.Strokes {
		line := canvas.NewLine(a.strokeColor)
		line.StrokeWidth = a.strokeWidth
		lines = append(lines, line)
		objects = append(objects, line)
	}

	return &arrowRenderer{arrow: a, raster: raster, lines: lines, objects: objects}
}

// rasterize fills the arrow polygon at pixel resolution. The outline is
// defined in box-local units; pixel coordinates scale against the
// current widget size.
func (a *arrowObject) rasterize(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 || len(a.geom.Fill) < 3 {
		return img
	}

	size := a.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return img
	}
	scaleX := size.Width / float32(w)
	scaleY := size.Height / float32(h)

	src := image.NewUniform(a.fillColor)
	for py := 0; py < h; py++ {
		y := (float32(py) + 0.5) * scaleY
		for px := 0; px < w; px++ {
			x := (float32(px) + 0.5) * scaleX
			if pointInPolygon(a.geom.Fill, x, y) {
				draw.Draw(img, image.Rect(px, py, px+1, py+1), src, image.Point{}, draw.Src)
			}
		}
	}

	return img
}

func pointInPolygon(pts []fyne.Position, x, y float32) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}

	return inside
}

type arrowRenderer struct {
	arrow   *arrowObject
	raster  *canvas.Raster
	lines   []*canvas.Line
	objects []fyne.CanvasObject
}

func (r *arrowRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	for i, line := range r.lines {
		seg := r.arrow.geom.Strokes[i]
		line.Position1 = seg.A
		line.Position2 = seg.B
	}
}

func (r *arrowRenderer) MinSize() fyne.Size {
	return fyne.Size{}
}

func (r *arrowRenderer) Refresh() {
	r.raster.Refresh()
	for _, line := range r.lines {
		line.StrokeColor = r.arrow.strokeColor
		line.StrokeWidth = r.arrow.strokeWidth
		line.Refresh()
	}
}

func (r *arrowRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *arrowRenderer) Destroy() {}
