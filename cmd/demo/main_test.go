package main

import (
	"testing"

	"fyne.io/fyne/v2/container"
	fynetest "fyne.io/fyne/v2/test"

	"anchortip/internal/ui"
)

func TestBuildGallery(t *testing.T) {
	a := fynetest.NewApp()
	t.Cleanup(a.Quit)

	layer := container.NewWithoutLayout()
	manager := ui.NewManager(layer, nil)

	gallery := buildGallery(manager)
	if gallery == nil {
		t.Fatalf("expected gallery content")
	}

	window := fynetest.NewWindow(container.NewStack(gallery, layer))
	t.Cleanup(window.Close)
	if min := gallery.MinSize(); min.Width <= 0 || min.Height <= 0 {
		t.Fatalf("gallery must have a non-zero minimum size, got %v", min)
	}
}
