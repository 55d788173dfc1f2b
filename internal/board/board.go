package board

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/bounce/internal/clock"
)

const (
	// Placeholder fills every cell of a freshly created board.
	Placeholder = "0"
	// Blank fills every cell after Clear.
	Blank = " "

	// Rewind moves the cursor to the start of the previous line.
	Rewind = "\r\x1b[1F"
	// RowEnd terminates each printed row. The carriage return is required by
	// terminals that treat a bare newline as a line feed only.
	RowEnd = "\r\n"

	fpsPrefix = "FPS: "

	// MaxTagLen is the per-cell byte budget used to size the frame buffer.
	// Longer tags are still written; the buffer just grows past its estimate.
	MaxTagLen = 24

	fpsWindow = 1.0
)

// ErrInvalidDimension is returned when a board is created with a width or
// height below 1.
var ErrInvalidDimension = errors.New("board: width and height must be positive")

// Board is a fixed-size grid of printable cells addressed with y=0 at the
// bottom row and x wrapping horizontally.
//
// A Board is not safe for concurrent use.
type Board struct {
	width, height int
	cells         []string

	drawn     bool
	owed      int
	drawCount int
	fps       int
	fpsTime   float64

	status []string

	clock clock.Clock
	buf   bytes.Buffer
}

func New(width, height int) (*Board, error) {
	return NewWithClock(width, height, clock.NewSystem())
}

func NewWithClock(width, height int, clk clock.Clock) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}

	b := &Board{
		width:   width,
		height:  height,
		cells:   make([]string, width*height),
		clock:   clk,
		fpsTime: clk.Now(),
	}
	for i := range b.cells {
		b.cells[i] = Placeholder
	}
	b.buf.Grow(b.frameSize(height + 1))
	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) FPS() int    { return b.fps }

// SetStatus replaces the extra lines printed under the FPS counter. Rewinds
// always follow what was actually printed, so the line count may change
// between frames.
func (b *Board) SetStatus(lines ...string) {
	b.status = append(b.status[:0], lines...)
}

// Drawn reports whether Frame has been called at least once.
func (b *Board) Drawn() bool { return b.drawn }

// Clear sets every cell to Blank.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Blank
	}
}

// Set writes tag at (x, y). y counts up from the bottom row; both axes wrap
// with a mathematical modulo, so y=-1 is the top row and x=-1 the last column.
// The last write to a cell in a frame wins.
func (b *Board) Set(x, y int, tag string) {
	if tag == "" {
		tag = Blank
	}
	row := mod(b.height-1-y, b.height)
	col := mod(x, b.width)
	b.cells[row*b.width+col] = tag
}

// Cell returns the tag at a printed position, row 0 being the top line.
func (b *Board) Cell(row, col int) string {
	return b.cells[row*b.width+col]
}

// Row returns a copy of the tags on printed row.
func (b *Board) Row(row int) []string {
	out := make([]string, b.width)
	copy(out, b.cells[row*b.width:(row+1)*b.width])
	return out
}

// Frame serializes the board for in-place repainting: rewinds over the
// previous frame (if any), every row followed by RowEnd, an FPS line, then
// any status lines.
//
// The returned slice aliases an internal buffer and is only valid until the
// next call to Frame.
func (b *Board) Frame() []byte {
	b.buf.Reset()
	b.buf.Grow(b.frameSize(b.owed))

	if b.drawn {
		for i := 0; i < b.owed; i++ {
			b.buf.WriteString(Rewind)
		}
	}

	for row := 0; row < b.height; row++ {
		for _, tag := range b.cells[row*b.width : (row+1)*b.width] {
			b.buf.WriteString(tag)
		}
		b.buf.WriteString(RowEnd)
	}

	b.Tick()
	b.buf.WriteString(fpsPrefix)
	b.buf.WriteString(strconv.Itoa(b.fps))
	b.buf.WriteString(RowEnd)
	for _, line := range b.status {
		b.buf.WriteString(line)
		b.buf.WriteString(RowEnd)
	}

	b.drawn = true
	b.owed = b.height + 1 + len(b.status)

	return b.buf.Bytes()
}

// Body returns the rows joined by newlines without any control sequences.
func (b *Board) Body() string {
	var s strings.Builder
	s.Grow(b.width*b.height*MaxTagLen + b.height)
	for row := 0; row < b.height; row++ {
		if row > 0 {
			s.WriteByte('\n')
		}
		for _, tag := range b.cells[row*b.width : (row+1)*b.width] {
			s.WriteString(tag)
		}
	}
	return s.String()
}

// Tick counts one drawn frame and, once a full second has passed since the
// last sample, publishes the count as the current FPS.
func (b *Board) Tick() int {
	b.drawCount++
	now := b.clock.Now()
	if now-b.fpsTime >= fpsWindow {
		b.fps = b.drawCount
		b.drawCount = 0
		b.fpsTime = now
	}
	return b.fps
}

// frameSize is the worst-case frame length given the number of owed rewinds.
func (b *Board) frameSize(rewinds int) int {
	size := rewinds*len(Rewind) + b.width*b.height*MaxTagLen + b.height*len(RowEnd)
	size += len(fpsPrefix) + 20 + len(RowEnd)
	for _, line := range b.status {
		size += len(line) + len(RowEnd)
	}
	return size
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
