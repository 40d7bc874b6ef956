// Package viz is the terminal front end: a braille canvas coloured per cell,
// a pinhole projection through the orbit camera, and Bubble Tea programs for
// the live view and the preset picker.
//
// # Key Bindings
//
//	W/S   - Zoom in/out
//	A/D   - Orbit left/right
//	Q/E   - Tilt down/up
//	Space - Toggle auto-rotate
//	P     - Pause/Resume
//	R     - Reset disk
//	T     - Cycle themes
//	?     - Show help overlay
//	Esc   - Quit
//
// A terminal sees key presses, not key releases, so each press holds its
// direction for a few ticks.
package viz
