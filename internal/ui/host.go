package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// Host is the narrow contract a tooltip session needs from the
// rendering environment: geometry queries, an overlay slot, a way to
// run after the next render turn, and a cancellable timer. Keeping it
// an interface keeps the session testable without a real canvas.
type Host interface {
	// ViewportSize is the current size of the area tooltips may occupy.
	ViewportSize() fyne.Size

	// AnchorGeometry resolves the on-screen origin and size of obj in
	// viewport coordinates. ok is false when obj is not attached to a
	// canvas yet; callers treat that as "do not show".
	AnchorGeometry(obj fyne.CanvasObject) (pos fyne.Position, size fyne.Size, ok bool)

	// Mount adds obj to the overlay layer; Unmount removes it. The
	// session owns at most one mounted overlay at a time.
	Mount(obj fyne.CanvasObject)
	Unmount(obj fyne.CanvasObject)

	// RunAfterRender schedules fn on the UI thread after the current
	// render turn has completed.
	RunAfterRender(fn func())

	// Schedule runs fn on the UI thread after d. The returned func
	// cancels the pending call.
	Schedule(d time.Duration, fn func()) (cancel func())
}

// CanvasHost implements Host over a plain container stacked above the
// application content. The layer is expected to span the window.
type CanvasHost struct {
	layer *fyne.Container
}

func NewCanvasHost(layer *fyne.Container) *CanvasHost {
	return &CanvasHost{layer: layer}
}

func (h *CanvasHost) ViewportSize() fyne.Size {
	if h.layer == nil {
		return fyne.Size{}
	}
	size := h.layer.Size()
	if size.Width > 0 && size.Height > 0 {
		return size
	}
	if cnv := canvasFor(h.layer); cnv != nil {
		return cnv.Size()
	}

	return size
}

func (h *CanvasHost) AnchorGeometry(obj fyne.CanvasObject) (fyne.Position, fyne.Size, bool) {
	if h.layer == nil || obj == nil {
		return fyne.Position{}, fyne.Size{}, false
	}
	driver := currentDriver()
	if driver == nil {
		return fyne.Position{}, fyne.Size{}, false
	}
	if driver.CanvasForObject(obj) == nil {
		return fyne.Position{}, fyne.Size{}, false
	}

	pos := driver.AbsolutePositionForObject(obj)
	layerSize := h.layer.Size()
	if layerSize.Width > 0 && layerSize.Height > 0 {
		pos = pos.Subtract(driver.AbsolutePositionForObject(h.layer))
	}

	return pos, obj.Size(), true
}

func (h *CanvasHost) Mount(obj fyne.CanvasObject) {
	if h.layer == nil || obj == nil {
		return
	}
	h.layer.Add(obj)
	h.layer.Refresh()
}

func (h *CanvasHost) Unmount(obj fyne.CanvasObject) {
	if h.layer == nil || obj == nil {
		return
	}
	h.layer.Remove(obj)
	h.layer.Refresh()
}

func (h *CanvasHost) RunAfterRender(fn func()) {
	// fyne.Do enqueues onto the UI thread from another goroutine, which
	// lands after the in-flight render turn.
	go fyne.Do(fn)
}

func (h *CanvasHost) Schedule(d time.Duration, fn func()) func() {
	timer := time.AfterFunc(d, func() {
		fyne.Do(fn)
	})

	return func() { timer.Stop() }
}

func canvasFor(obj fyne.CanvasObject) fyne.Canvas {
	driver := currentDriver()
	if driver == nil {
		return nil
	}

	return driver.CanvasForObject(obj)
}

func currentDriver() fyne.Driver {
	app := fyne.CurrentApp()
	if app == nil {
		return nil
	}

	return app.Driver()
}
