package ui

import "fyne.io/fyne/v2"

// Probe renders happen far outside the viewport rather than at zero
// opacity so the content lays out unclipped at its natural size.
const offscreenCoord = float32(-10000)

// measureOffscreen mounts content off-viewport, waits one render turn,
// reports the measured natural size, and unmounts. The report callback
// runs on the UI thread; callers must re-check their own state before
// acting on it, since the session may have been torn down in between.
func measureOffscreen(host Host, content fyne.CanvasObject, report func(fyne.Size)) {
	content.Move(fyne.NewPos(offscreenCoord, offscreenCoord))
	content.Resize(content.MinSize())
	host.Mount(content)
	host.RunAfterRender(func() {
		size := content.MinSize()
		host.Unmount(content)
		report(size)
	})
}
