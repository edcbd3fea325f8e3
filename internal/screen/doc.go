// Package screen provides the character-grid display the screensaver draws on.
//
// The package defines a small [Display] interface and two implementations:
//
//   - [Terminal]: full-screen tcell display with non-blocking input polling
//   - [Buffer]: offscreen grid used for snapshots
//   - [Event]: the subset of terminal input the animation reacts to
//
// Writes outside the visible grid are discarded silently; columns of rain
// routinely extend above or below the screen.
//
// # Thread Safety
//
// A Display is driven by a single loop. Only tcell's own input goroutine runs
// concurrently, and it communicates through tcell's event queue.
package screen
