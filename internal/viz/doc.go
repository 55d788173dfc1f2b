// Package viz provides the interactive terminal view of the bouncing blocks.
//
// The view runs a [display.Display] inside a Bubble Tea program on the
// alternate screen, with a lipgloss status bar and an optional population
// chart.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	G     - Toggle population chart
//	Q     - Quit (also Esc, Ctrl+C)
package viz
