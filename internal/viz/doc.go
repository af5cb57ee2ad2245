// Package viz renders the softmax and softargmax transforms in the terminal.
//
// The interactive [Model] is a Bubble Tea program that draws the vector as a
// Braille histogram on a [Canvas] and morphs it column by column into the
// transformed vector:
//
//   - [Model]: owns the values, the engine configuration and the animation controller
//   - [Canvas]: Braille-based pixel canvas, 2x4 sub-pixels per cell
//   - [Recorder]: captures canvas frames into a GIF
//   - Theme selection with 6 built-in color schemes
//
// # Key Bindings
//
//	Space - Start/Stop the animation
//	R     - Reset to the original values
//	←/→   - Select a column
//	↑/↓   - Change the selected value by 0.01
//	+/-   - Add or remove a column
//	[/]   - Scale the temperature
//	A     - Toggle softmax/softargmax
//	M     - Toggle max subtraction
//	E     - Edit values as comma-separated text
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// Every edit recomputes the transform, restarts the animation from the first
// column and starts it when autostart is enabled. A rejected edit keeps the
// previous state and shows the error in the stats panel.
package viz
