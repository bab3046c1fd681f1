// Package viz provides the terminal front end for sortviz.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: algorithm menu, size/interval entry and the animated bar chart
//   - [RenderBars]: block-character bar chart colored by tag
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Start/Stop animation
//	N     - Single step
//	+/-   - Faster/slower
//	C     - New random sequence
//	R     - Reset
//	T     - Cycle color themes
//	P     - Toggle value profile
//	E     - Export current frame as SVG
//	?     - Show help overlay
//
// The tea.Tick loop is the animation driver; each tick carries a generation
// number so ticks scheduled before a stop are dropped.
package viz
