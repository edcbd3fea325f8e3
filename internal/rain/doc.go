// Package rain implements the falling-character columns of the screensaver.
//
// Each [Column] owns a vertical strip of the screen. It advances its head one
// cell at a time on its own timer and resets with freshly sampled speed,
// trail length and glyphs once its tail has fallen past the bottom edge.
// A [Field] holds the columns for one screen size.
//
// # Glyph lookup
//
// The glyph shown at trail offset i is buf[(head+i) mod len(buf)], not
// buf[head-i]. As the head moves every visible glyph changes, which gives the
// rain its flicker.
package rain
