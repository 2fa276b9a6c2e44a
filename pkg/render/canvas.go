// Package render draws 2D geometry into a terminal using half-block
// characters, giving each character cell two vertically stacked pixels.
package render

import "strings"

// Canvas is a monochrome drawing buffer with 2x vertical resolution.
// Pixel coordinates are (0,0) at the top left, y growing downward, with
// height*2 pixel rows for height terminal rows.
type Canvas struct {
	width     int    // terminal columns
	height    int    // terminal rows
	subHeight int    // height * 2 pixel rows
	pixels    []bool // [y*width + x]

	// reusable buffer to reduce per-frame allocations
	frameBuf strings.Builder
}

// NewCanvas creates a canvas for the given terminal dimensions.
func NewCanvas(width, height int) *Canvas {
	subHeight := height * 2
	return &Canvas{
		width:     width,
		height:    height,
		subHeight: subHeight,
		pixels:    make([]bool, width*subHeight),
	}
}

// Width returns the terminal column count.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the terminal row count.
func (c *Canvas) Height() int {
	return c.height
}

// PixelWidth returns the horizontal pixel resolution.
func (c *Canvas) PixelWidth() int {
	return c.width
}

// PixelHeight returns the vertical pixel resolution (two per row).
func (c *Canvas) PixelHeight() int {
	return c.subHeight
}

// Resize adjusts the canvas to new terminal dimensions and clears it.
func (c *Canvas) Resize(width, height int) {
	subHeight := height * 2
	if width != c.width || height != c.height {
		c.width = width
		c.height = height
		c.subHeight = subHeight
		c.pixels = make([]bool, width*subHeight)
		return
	}
	c.Clear()
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Set turns on the pixel at (x, y). Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.subHeight {
		return
	}
	c.pixels[y*c.width+x] = true
}

// Get reports whether the pixel at (x, y) is set.
func (c *Canvas) Get(x, y int) bool {
	if x < 0 || x >= c.width || y < 0 || y >= c.subHeight {
		return false
	}
	return c.pixels[y*c.width+x]
}

// Frame renders the canvas as height lines of half-block characters,
// separated by newlines.
func (c *Canvas) Frame() string {
	c.frameBuf.Reset()
	for row := 0; row < c.height; row++ {
		if row > 0 {
			c.frameBuf.WriteByte('\n')
		}
		top := row * 2
		bottom := top + 1
		for x := 0; x < c.width; x++ {
			upper := c.pixels[top*c.width+x]
			lower := c.pixels[bottom*c.width+x]
			switch {
			case upper && lower:
				c.frameBuf.WriteRune('█')
			case upper:
				c.frameBuf.WriteRune('▀')
			case lower:
				c.frameBuf.WriteRune('▄')
			default:
				c.frameBuf.WriteByte(' ')
			}
		}
	}
	return c.frameBuf.String()
}
