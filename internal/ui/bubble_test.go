package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	fynetest "fyne.io/fyne/v2/test"

	"anchortip/internal/geometry"
)

func TestArrowBoxSize(t *testing.T) {
	opts := DefaultOptions()

	vertical := arrowBoxSize(geometry.DirUp, &opts)
	if vertical != fyne.NewSize(opts.ArrowWidth, opts.ArrowHeight+arrowOverlap) {
		t.Fatalf("unexpected vertical arrow box: %v", vertical)
	}

	horizontal := arrowBoxSize(geometry.DirRight, &opts)
	if horizontal != fyne.NewSize(opts.ArrowHeight+arrowOverlap, opts.ArrowWidth) {
		t.Fatalf("unexpected horizontal arrow box: %v", horizontal)
	}
}

func TestArrowOriginHugsBubbleEdge(t *testing.T) {
	opts := DefaultOptions()
	bubbleSize := fyne.NewSize(120, 60)
	anchorPos := fyne.NewPos(150, 200)
	anchorSize := fyne.NewSize(40, 20)

	tests := []struct {
		name string
		dir  geometry.Direction
		// the coordinate pinned against the bubble edge
		check func(t *testing.T, got fyne.Position, placed geometry.PlacementResult)
	}{
		{
			name: "up overlaps bubble bottom",
			dir:  geometry.DirUp,
			check: func(t *testing.T, got fyne.Position, placed geometry.PlacementResult) {
				want := placed.Origin.Y + bubbleSize.Height - arrowOverlap
				if got.Y != want {
					t.Fatalf("expected arrow top %v, got %v", want, got.Y)
				}
			},
		},
		{
			name: "down sits above bubble top",
			dir:  geometry.DirDown,
			check: func(t *testing.T, got fyne.Position, placed geometry.PlacementResult) {
				want := placed.Origin.Y - opts.ArrowHeight
				if got.Y != want {
					t.Fatalf("expected arrow top %v, got %v", want, got.Y)
				}
			},
		},
		{
			name: "left overlaps bubble right edge",
			dir:  geometry.DirLeft,
			check: func(t *testing.T, got fyne.Position, placed geometry.PlacementResult) {
				want := placed.Origin.X + bubbleSize.Width - arrowOverlap
				if got.X != want {
					t.Fatalf("expected arrow left %v, got %v", want, got.X)
				}
			},
		},
		{
			name: "right sits before bubble left edge",
			dir:  geometry.DirRight,
			check: func(t *testing.T, got fyne.Position, placed geometry.PlacementResult) {
				want := placed.Origin.X - opts.ArrowHeight
				if got.X != want {
					t.Fatalf("expected arrow left %v, got %v", want, got.X)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			placed := geometry.PlacementResult{Origin: fyne.NewPos(100, 100), Direction: tc.dir}
			box := arrowBoxSize(tc.dir, &opts)
			got := arrowOrigin(placed, bubbleSize, box, anchorPos, anchorSize, &opts)
			tc.check(t, got, placed)
		})
	}
}

func TestArrowOriginStaysClearOfCorners(t *testing.T) {
	opts := DefaultOptions()
	bubbleSize := fyne.NewSize(120, 60)
	placed := geometry.PlacementResult{Origin: fyne.NewPos(100, 100), Direction: geometry.DirUp}
	box := arrowBoxSize(geometry.DirUp, &opts)

	// Anchor far to the left of the bubble: centering would put the
	// arrow before the rounded corner.
	got := arrowOrigin(placed, bubbleSize, box, fyne.NewPos(0, 200), fyne.NewSize(10, 10), &opts)
	if got.X != placed.Origin.X+opts.CornerRadius {
		t.Fatalf("expected arrow clamped past the corner radius, got %v", got.X)
	}

	// Anchor far to the right: clamp against the other corner.
	got = arrowOrigin(placed, bubbleSize, box, fyne.NewPos(500, 200), fyne.NewSize(10, 10), &opts)
	wantMax := placed.Origin.X + bubbleSize.Width - opts.CornerRadius - box.Width
	if got.X != wantMax {
		t.Fatalf("expected arrow clamped before the far corner, got %v", got.X)
	}
}

func TestNewOverlayComposition(t *testing.T) {
	app := fynetest.NewApp()
	t.Cleanup(app.Quit)

	opts := DefaultOptions()
	bubble := newBubble(fixedSizeContent(80, 30), &opts)
	dismissed := false

	overlay := newOverlay(overlayLayout{
		viewport:   fyne.NewSize(400, 400),
		bubble:     bubble,
		bubbleSize: fyne.NewSize(90, 40),
		placed:     geometry.PlacementResult{Origin: fyne.NewPos(100, 100), Direction: geometry.DirUp},
		anchorPos:  fyne.NewPos(120, 160),
		anchorSize: fyne.NewSize(40, 20),
		opts:       &opts,
		onDismiss:  func() { dismissed = true },
	})

	root, ok := overlay.(*fyne.Container)
	if !ok {
		t.Fatalf("unexpected overlay type %T", overlay)
	}
	if len(root.Objects) != 3 {
		t.Fatalf("expected backdrop, bubble and arrow, got %d objects", len(root.Objects))
	}

	backdrop, ok := root.Objects[0].(*tapCatcher)
	if !ok {
		t.Fatalf("expected tap catcher first, got %T", root.Objects[0])
	}
	if backdrop.Size() != fyne.NewSize(400, 400) {
		t.Fatalf("backdrop must span the viewport, got %v", backdrop.Size())
	}

	backdrop.Tapped(&fyne.PointEvent{})
	if !dismissed {
		t.Fatalf("tap outside the tooltip body must dismiss it")
	}

	if root.Objects[1].Position() != fyne.NewPos(100, 100) {
		t.Fatalf("bubble not moved to placement origin: %v", root.Objects[1].Position())
	}
}
