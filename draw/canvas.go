package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. It implements Path, so collision bodies can be traced onto
// it directly, and scales from logical (world) coordinates to terminal
// pixels.
type Canvas struct {
	termWidth      int    // actual terminal columns
	termHeight     int    // actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64 // in sub-pixels
	scaleX        float64
	scaleY        float64

	// Offset for centering the render area when the terminal is larger
	// than the target resolution (0-based columns/rows to skip).
	offsetCol int
	offsetRow int

	// Path state
	curX, curY     float64 // current position, logical coordinates
	startX, startY float64 // subpath start, for Close

	renderBuf strings.Builder // reused across Render calls
}

// NewCanvas creates a canvas that scales from logical coordinates to
// terminal pixels. logicalWidth/Height define the coordinate space bodies
// live in; termWidth/Height are actual terminal dimensions.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	subPixelHeight := termHeight * 2
	return &Canvas{
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: subPixelHeight,
		pixels:         make([]bool, subPixelHeight*termWidth),
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		scaleX:         float64(termWidth) / logicalWidth,
		scaleY:         float64(subPixelHeight) / logicalHeight,
	}
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// LogicalWidth returns the logical width of the drawing space.
func (c *Canvas) LogicalWidth() float64 { return c.logicalWidth }

// LogicalHeight returns the logical height of the drawing space.
func (c *Canvas) LogicalHeight() float64 { return c.logicalHeight }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at terminal sub-pixel coordinates.
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Set sets a pixel at logical coordinates.
func (c *Canvas) Set(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// MoveTo implements Path.
func (c *Canvas) MoveTo(x, y float64) {
	c.curX, c.curY = x, y
	c.startX, c.startY = x, y
}

// LineTo implements Path: draws from the current position using
// Bresenham's algorithm in pixel space.
func (c *Canvas) LineTo(x, y float64) {
	c.line(c.curX, c.curY, x, y)
	c.curX, c.curY = x, y
}

// Close implements Path: draws back to the subpath start.
func (c *Canvas) Close() {
	c.line(c.curX, c.curY, c.startX, c.startY)
	c.curX, c.curY = c.startX, c.startY
}

// Arc implements Path: samples the arc into line segments. A zero radius
// degenerates to a single pixel at the center. The pen jumps to the arc's
// start without opening a new subpath, so a following Close still returns
// to the subpath origin.
func (c *Canvas) Arc(cx, cy, r, start, end float64) {
	if r <= 0 {
		c.Set(cx, cy)
		c.curX, c.curY = cx, cy
		return
	}
	// Segment count proportional to the on-screen arc length.
	scale := math.Max(c.scaleX, c.scaleY)
	steps := int(math.Ceil(math.Abs(end-start) * r * scale / 2))
	if steps < 8 {
		steps = 8
	}
	c.curX, c.curY = cx+r*math.Cos(start), cy+r*math.Sin(start)
	for i := 1; i <= steps; i++ {
		a := start + (end-start)*float64(i)/float64(steps)
		c.LineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
}

// line draws between two logical points with Bresenham in pixel space.
func (c *Canvas) line(x1f, y1f, x2f, y2f float64) {
	x1 := int(math.Round(x1f * c.scaleX))
	y1 := int(math.Round(y1f * c.scaleY))
	x2 := int(math.Round(x2f * c.scaleX))
	y2 := int(math.Round(y2f * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Render outputs the canvas to the writer using half-block characters,
// in chunks sized for smooth flow over SSH.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12)

	for row := 0; row < c.termHeight; row++ {
		topY := row * 2
		bottomY := row*2 + 1
		topOffset := topY * c.termWidth
		bottomOffset := bottomY * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := bottomY < c.subPixelHeight && c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = blockFull
			case top:
				ch = blockUpperHalf
			case bottom:
				ch = blockLowerHalf
			default:
				continue // skip empty cells
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
