package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"anchortip/internal/app"
	"anchortip/internal/geometry"
	"anchortip/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := app.Initialize(ctx)
	if err != nil {
		slog.Error("initialize app runtime", "error", err)
		os.Exit(1)
	}

	var closeOnce sync.Once
	closeRuntime := func() {
		closeOnce.Do(func() {
			_ = rt.Close()
		})
	}
	defer closeRuntime()

	defaults, err := app.TooltipOptions(rt.Config.Tooltip)
	if err != nil {
		slog.Error("resolve tooltip options", "error", err)
		os.Exit(1)
	}

	a := fyneapp.New()
	window := a.NewWindow(fmt.Sprintf("anchortip gallery %s", app.BuildVersionWithDate()))
	window.Resize(fyne.NewSize(640, 480))

	layer := container.NewWithoutLayout()
	manager := ui.NewManager(layer, rt.Bus)
	manager.SetDefaults(defaults)

	window.SetContent(container.NewStack(buildGallery(manager), layer))
	window.SetOnClosed(func() {
		stop()
		closeRuntime()
	})
	window.ShowAndRun()
}

// buildGallery lays out trigger widgets near every viewport edge so
// each placement direction and its flip can be exercised by hand.
func buildGallery(manager *ui.Manager) fyne.CanvasObject {
	top := manager.NewArea(
		widget.NewButton("Top edge", nil),
		widget.NewLabel("Preferred up, flips down because the top edge is close."),
		nil,
	)

	bottomOpts := ui.DefaultOptions()
	bottomOpts.PreferredDirection = geometry.DirDown
	bottom := manager.NewArea(
		widget.NewButton("Bottom edge", nil),
		widget.NewLabel("Preferred down, flips up near the bottom edge."),
		&bottomOpts,
	)

	leftOpts := ui.DefaultOptions()
	leftOpts.PreferredDirection = geometry.DirLeft
	left := manager.NewArea(
		widget.NewButton("Left edge", nil),
		widget.NewLabel("Side placement, capped to half the viewport width."),
		&leftOpts,
	)

	rightOpts := ui.DefaultOptions()
	rightOpts.PreferredDirection = geometry.DirRight
	right := manager.NewArea(
		widget.NewButton("Right edge", nil),
		widget.NewLabel("Side placement with a flip to the left."),
		&rightOpts,
	)

	timedOpts := ui.DefaultOptions()
	timedOpts.AutoHide = 3 * time.Second
	timed := manager.NewArea(
		widget.NewButton("Auto hide", nil),
		widget.NewLabel("Disappears on its own after three seconds."),
		&timedOpts,
	)

	hoverOpts := ui.DefaultOptions()
	hoverOpts.ShowOnTap = false
	hoverOpts.ShowOnHover = true
	hover := manager.NewArea(
		widget.NewButton("Hover me", nil),
		widget.NewLabel("Shown on pointer enter, hidden shortly after leave."),
		&hoverOpts,
	)

	rich := manager.NewArea(
		widget.NewButton("Rich content", nil),
		container.NewVBox(
			widget.NewLabelWithStyle("Anchored overlay", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabel("Any canvas object works as tooltip content."),
			widget.NewProgressBarInfinite(),
		),
		nil,
	)

	center := container.NewVBox(
		widget.NewLabelWithStyle("Tap a button to anchor a tooltip to it.", fyne.TextAlignCenter, fyne.TextStyle{}),
		container.NewCenter(timed),
		container.NewCenter(hover),
		container.NewCenter(rich),
	)

	list := container.NewVBox()
	for i := 1; i <= 40; i++ {
		item := manager.NewArea(
			widget.NewButton(fmt.Sprintf("List item %d", i), nil),
			widget.NewLabel(fmt.Sprintf("Tooltip for item %d. Scrolling hides it.", i)),
			nil,
		)
		list.Add(item)
	}
	scroll := container.NewVScroll(list)
	manager.Scrolls().Watch(scroll)

	body := container.NewHSplit(center, scroll)
	body.SetOffset(0.6)

	return container.NewBorder(
		container.NewCenter(top),
		container.NewCenter(bottom),
		container.NewCenter(left),
		container.NewCenter(right),
		body,
	)
}
