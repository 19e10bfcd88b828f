package render

// Op identifies a surface drawing primitive
type Op uint8

const (
	OpClear Op = iota
	OpRect
	OpDisc
)

// Command is one rasterization request in surface pixel space
// The core computes all geometry and color; surfaces only rasterize
type Command struct {
	Op    Op
	X, Y  float64 // Rect top-left, disc center
	W, H  float64 // Rect size
	R     float64 // Disc radius
	Color RGBA
}

// Clear fills the whole surface
func Clear(c RGB) Command {
	return Command{Op: OpClear, Color: c.Opaque()}
}

// Rect fills an axis-aligned rectangle
func Rect(x, y, w, h float64, c RGBA) Command {
	return Command{Op: OpRect, X: x, Y: y, W: w, H: h, Color: c}
}

// Disc fills a circle
func Disc(cx, cy, r float64, c RGBA) Command {
	return Command{Op: OpDisc, X: cx, Y: cy, R: r, Color: c}
}
