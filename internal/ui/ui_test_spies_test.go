package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// hostSpy is a deterministic Host: render callbacks run synchronously
// unless deferRender is set, and timers fire only when the test says so.
type hostSpy struct {
	viewport       fyne.Size
	anchorPos      fyne.Position
	anchorSize     fyne.Size
	anchorDetached bool

	mounted     []fyne.CanvasObject
	deferRender bool
	pendingFns  []func()
	scheduled   []*scheduledCall
}

type scheduledCall struct {
	delay     time.Duration
	fn        func()
	cancelled bool
}

func newHostSpy() *hostSpy {
	return &hostSpy{
		viewport:   fyne.NewSize(400, 400),
		anchorPos:  fyne.NewPos(180, 200),
		anchorSize: fyne.NewSize(40, 20),
	}
}

func (h *hostSpy) ViewportSize() fyne.Size {
	return h.viewport
}

func (h *hostSpy) AnchorGeometry(fyne.CanvasObject) (fyne.Position, fyne.Size, bool) {
	if h.anchorDetached {
		return fyne.Position{}, fyne.Size{}, false
	}

	return h.anchorPos, h.anchorSize, true
}

func (h *hostSpy) Mount(obj fyne.CanvasObject) {
	h.mounted = append(h.mounted, obj)
}

func (h *hostSpy) Unmount(obj fyne.CanvasObject) {
	for i, o := range h.mounted {
		if o == obj {
			h.mounted = append(h.mounted[:i], h.mounted[i+1:]...)

			return
		}
	}
}

func (h *hostSpy) RunAfterRender(fn func()) {
	if h.deferRender {
		h.pendingFns = append(h.pendingFns, fn)

		return
	}
	fn()
}

func (h *hostSpy) flushRender() {
	fns := h.pendingFns
	h.pendingFns = nil
	for _, fn := range fns {
		fn()
	}
}

func (h *hostSpy) Schedule(d time.Duration, fn func()) func() {
	call := &scheduledCall{delay: d, fn: fn}
	h.scheduled = append(h.scheduled, call)

	return func() { call.cancelled = true }
}
