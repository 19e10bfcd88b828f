package render

import "math"

// PixelBuffer is a software raster target for Command lists
// Pixels are stored row-major as opaque RGB; alpha is resolved on write
type PixelBuffer struct {
	pixels []RGB
	width  int
	height int
}

// NewPixelBuffer creates a buffer with the specified dimensions
func NewPixelBuffer(width, height int) *PixelBuffer {
	b := &PixelBuffer{}
	b.Resize(width, height)
	return b
}

// Size returns the buffer dimensions in pixels
func (b *PixelBuffer) Size() (int, int) {
	return b.width, b.height
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *PixelBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.pixels) < size {
		b.pixels = make([]RGB, size)
	} else {
		b.pixels = b.pixels[:size]
	}
	b.width = width
	b.height = height
	b.Fill(RGBBlack)
}

// Fill sets every pixel using exponential copy
func (b *PixelBuffer) Fill(c RGB) {
	if len(b.pixels) == 0 {
		return
	}
	b.pixels[0] = c
	for filled := 1; filled < len(b.pixels); filled *= 2 {
		copy(b.pixels[filled:], b.pixels[:filled])
	}
}

// At returns the pixel at (x, y), black when out of bounds
func (b *PixelBuffer) At(x, y int) RGB {
	if !b.inBounds(x, y) {
		return RGBBlack
	}
	return b.pixels[y*b.width+x]
}

// inBounds returns true if in buffer bounds
func (b *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// blend composites c over the pixel at (x, y)
func (b *PixelBuffer) blend(x, y int, c RGBA) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.pixels[idx] = b.pixels[idx].Blend(c.RGB, c.A)
}

// Apply rasterizes commands in order
func (b *PixelBuffer) Apply(cmds []Command) {
	for i := range cmds {
		switch cmds[i].Op {
		case OpClear:
			b.Fill(cmds[i].Color.RGB)
		case OpRect:
			b.fillRect(&cmds[i])
		case OpDisc:
			b.fillDisc(&cmds[i])
		}
	}
}

// fillRect covers pixels whose centers fall inside the rectangle
// A rectangle thinner than one pixel still marks the pixel under its center
func (b *PixelBuffer) fillRect(c *Command) {
	if c.W <= 0 || c.H <= 0 || math.IsNaN(c.X+c.Y+c.W+c.H) {
		return
	}
	x0 := clampSpan(math.Ceil(c.X-0.5), b.width)
	x1 := clampSpan(math.Ceil(c.X+c.W-0.5), b.width)
	y0 := clampSpan(math.Ceil(c.Y-0.5), b.height)
	y1 := clampSpan(math.Ceil(c.Y+c.H-0.5), b.height)

	if x0 == x1 || y0 == y1 {
		b.blend(int(math.Floor(c.X+c.W/2)), int(math.Floor(c.Y+c.H/2)), c.Color)
		return
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.blend(x, y, c.Color)
		}
	}
}

// fillDisc covers pixels whose centers fall inside the circle
func (b *PixelBuffer) fillDisc(c *Command) {
	if c.R <= 0 || math.IsNaN(c.X+c.Y+c.R) {
		return
	}
	x0 := clampSpan(math.Floor(c.X-c.R), b.width)
	x1 := clampSpan(math.Ceil(c.X+c.R), b.width)
	y0 := clampSpan(math.Floor(c.Y-c.R), b.height)
	y1 := clampSpan(math.Ceil(c.Y+c.R), b.height)

	r2 := c.R * c.R
	hit := false
	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - c.Y
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - c.X
			if dx*dx+dy*dy <= r2 {
				b.blend(x, y, c.Color)
				hit = true
			}
		}
	}
	if !hit {
		b.blend(int(math.Floor(c.X)), int(math.Floor(c.Y)), c.Color)
	}
}

// clampSpan converts a pixel edge into an index in [0, limit]
func clampSpan(v float64, limit int) int {
	if v <= 0 {
		return 0
	}
	if v >= float64(limit) {
		return limit
	}
	return int(v)
}
