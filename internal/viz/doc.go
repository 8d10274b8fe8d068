// Package viz renders a running body system in the terminal.
//
// The live view is a Bubble Tea program drawing the bodies on a braille
// [Canvas], with their trails, and a side panel with the energy variation
// graph and the orbital periods found so far.
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Rebuild the system from its initial state
//	+/-   - Zoom in/out
//	>/<   - More/fewer steps per frame
//	L     - Toggle trails
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
package viz
