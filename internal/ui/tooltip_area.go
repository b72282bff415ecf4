package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"anchortip/internal/bus"
)

// Manager wires tooltip areas to a shared overlay layer and scroll
// registry. Applications create one per window and stack its layer
// above their content.
type Manager struct {
	host     Host
	scrolls  *ScrollRegistry
	defaults Options
}

func NewManager(layer *fyne.Container, b bus.MessageBus) *Manager {
	return &Manager{
		host:     NewCanvasHost(layer),
		scrolls:  NewScrollRegistry(b),
		defaults: DefaultOptions(),
	}
}

// SetDefaults replaces the options used by areas created without
// explicit options.
func (m *Manager) SetDefaults(opts Options) {
	opts.fillMissing()
	m.defaults = opts
}

// Scrolls exposes the registry so applications can Watch their scroll
// containers.
func (m *Manager) Scrolls() *ScrollRegistry {
	return m.scrolls
}

// NewArea wraps content in a trigger that shows tip anchored to it.
// Passing nil opts uses the manager defaults.
func (m *Manager) NewArea(content, tip fyne.CanvasObject, opts *Options) *TooltipArea {
	resolved := m.defaults
	if opts != nil {
		resolved = *opts
		resolved.fillMissing()
	}

	a := &TooltipArea{
		content: content,
		tip:     tip,
		opts:    resolved,
		session: NewSession(m.host, m.scrolls, resolved),
	}
	a.ExtendBaseWidget(a)

	return a
}

var (
	_ fyne.Tappable     = (*TooltipArea)(nil)
	_ desktop.Hoverable = (*TooltipArea)(nil)
)

// TooltipArea is the trigger element: it renders its wrapped content
// and starts the tooltip session on tap (and optionally hover).
type TooltipArea struct {
	widget.BaseWidget

	content fyne.CanvasObject
	tip     fyne.CanvasObject
	opts    Options
	session *Session

	hovered   bool
	hideTimer *time.Timer
}

func (a *TooltipArea) Tapped(*fyne.PointEvent) {
	if !a.opts.ShowOnTap {
		return
	}
	a.session.Show(a, a.tip)
}

func (a *TooltipArea) MouseIn(*desktop.MouseEvent) {
	if !a.opts.ShowOnHover {
		return
	}
	a.hovered = true
	a.cancelHide()
	a.session.Show(a, a.tip)
}

func (a *TooltipArea) MouseMoved(*desktop.MouseEvent) {}

func (a *TooltipArea) MouseOut() {
	if !a.opts.ShowOnHover {
		return
	}
	a.hovered = false
	a.scheduleHide()
}

// Hide dismisses the tooltip if it is showing.
func (a *TooltipArea) Hide() {
	a.cancelHide()
	a.session.Hide()
}

func (a *TooltipArea) CreateRenderer() fyne.WidgetRenderer {
	return &tooltipAreaRenderer{area: a, objects: []fyne.CanvasObject{a.content}}
}

func (a *TooltipArea) scheduleHide() {
	a.cancelHide()
	a.hideTimer = time.AfterFunc(hoverHideDelay, func() {
		fyne.Do(func() {
			if a.hovered {
				return
			}
			a.session.Hide()
		})
	})
}

func (a *TooltipArea) cancelHide() {
	if a.hideTimer == nil {
		return
	}

	a.hideTimer.Stop()
	a.hideTimer = nil
}

type tooltipAreaRenderer struct {
	area    *TooltipArea
	objects []fyne.CanvasObject
}

func (r *tooltipAreaRenderer) Layout(size fyne.Size) {
	r.area.content.Resize(size)
	r.area.content.Move(fyne.Position{})
}

func (r *tooltipAreaRenderer) MinSize() fyne.Size {
	return r.area.content.MinSize()
}

func (r *tooltipAreaRenderer) Refresh() {
	r.area.content.Refresh()
}

func (r *tooltipAreaRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *tooltipAreaRenderer) Destroy() {
	r.area.cancelHide()
	r.area.session.Hide()
}
