// Package anim drives the screensaver: one loop that polls input, advances
// the rain, types the bio and paces frames.
//
// # States
//
//	Idle   - bio not typed yet, nothing queued
//	Queued - typing requested (space, autoplay or repeat)
//	Typing - blocking typing pass in progress
//	Steady - bio typed at least once; redrawn every frame
//
// Queued, Typing and Steady are passed through within a single iteration.
//
// # Key Bindings
//
//	q, Q   - quit
//	Space  - type the bio (ignored with autoplay)
//	Ctrl-C - quit
//
// Input is not read while a typing pass runs; a key pressed mid-pass is seen
// on the next iteration. SIGINT and SIGTERM cancel the loop context, which
// also stops a typing pass between characters.
package anim
