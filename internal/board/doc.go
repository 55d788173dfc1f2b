// Package board holds the dense cell grid that bouncing blocks are drawn on
// and turns it into a single terminal frame.
//
// # Coordinates
//
// [Board.Set] uses a physics frame: y=0 is the bottom printed row and y grows
// upward. Both axes wrap with a mathematical modulo, so negative coordinates
// index from the far edge.
//
// # Frames
//
// [Board.Frame] writes every row followed by "\r\n" and an FPS line. From the
// second frame on it first emits one "\r\x1b[1F" per line of the previous
// frame so the terminal repaints in place instead of scrolling.
package board
