package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	fynetest "fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func newSpyManager() (*Manager, *hostSpy) {
	host := newHostSpy()

	return &Manager{
		host:     host,
		scrolls:  NewScrollRegistry(nil),
		defaults: DefaultOptions(),
	}, host
}

func TestTooltipAreaTapShowsTooltip(t *testing.T) {
	app := fynetest.NewApp()
	t.Cleanup(app.Quit)

	manager, host := newSpyManager()
	area := manager.NewArea(widget.NewLabel("trigger"), widget.NewLabel("tip"), nil)

	area.Tapped(&fyne.PointEvent{})
	if len(host.mounted) != 1 {
		t.Fatalf("expected tap to mount one overlay, got %d", len(host.mounted))
	}

	area.Tapped(&fyne.PointEvent{})
	if len(host.mounted) != 1 {
		t.Fatalf("repeated tap while visible must not stack overlays, got %d", len(host.mounted))
	}
}

func TestTooltipAreaTapDisabled(t *testing.T) {
	app := fynetest.NewApp()
	t.Cleanup(app.Quit)

	manager, host := newSpyManager()
	opts := DefaultOptions()
	opts.ShowOnTap = false
	area := manager.NewArea(widget.NewLabel("trigger"), widget.NewLabel("tip"), &opts)

	area.Tapped(&fyne.PointEvent{})
	if len(host.mounted) != 0 {
		t.Fatalf("tap trigger disabled, expected no overlay")
	}
}

func TestTooltipAreaHoverTrigger(t *testing.T) {
	app := fynetest.NewApp()
	t.Cleanup(app.Quit)

	manager, host := newSpyManager()
	opts := DefaultOptions()
	opts.ShowOnTap = false
	opts.ShowOnHover = true
	area := manager.NewArea(widget.NewLabel("trigger"), widget.NewLabel("tip"), &opts)

	area.MouseIn(nil)
	if len(host.mounted) != 1 {
		t.Fatalf("expected hover to mount one overlay, got %d", len(host.mounted))
	}

	area.Hide()
	if len(host.mounted) != 0 {
		t.Fatalf("expected hide to unmount the overlay")
	}
}

func TestTooltipAreaHideWithoutShowIsSafe(t *testing.T) {
	app := fynetest.NewApp()
	t.Cleanup(app.Quit)

	manager, _ := newSpyManager()
	area := manager.NewArea(widget.NewLabel("trigger"), widget.NewLabel("tip"), nil)
	area.Hide()
}

func TestTooltipAreaRendererDestroyTearsDown(t *testing.T) {
	app := fynetest.NewApp()
	t.Cleanup(app.Quit)

	manager, host := newSpyManager()
	area := manager.NewArea(widget.NewLabel("trigger"), widget.NewLabel("tip"), nil)

	area.Tapped(&fyne.PointEvent{})
	if len(host.mounted) != 1 {
		t.Fatalf("expected overlay mounted before destroy")
	}

	area.CreateRenderer().Destroy()
	if len(host.mounted) != 0 {
		t.Fatalf("renderer destroy must unmount the overlay")
	}
}

func TestManagerDefaultsApplyToNewAreas(t *testing.T) {
	app := fynetest.NewApp()
	t.Cleanup(app.Quit)

	manager, host := newSpyManager()
	custom := DefaultOptions()
	custom.ShowOnTap = false
	manager.SetDefaults(custom)

	area := manager.NewArea(widget.NewLabel("trigger"), widget.NewLabel("tip"), nil)
	area.Tapped(&fyne.PointEvent{})
	if len(host.mounted) != 0 {
		t.Fatalf("manager defaults must apply to areas created without options")
	}
}
