package entity

// Point is a screen position in device pixels.
type Point struct {
	X, Y int
}

// Size is a window size. Values are passed through to the host untouched.
type Size struct {
	Width, Height float64
}

// DefaultFloatSize is the size of a floating window when none is given.
var DefaultFloatSize = Size{Width: 300, Height: 200}

// Rect is a screen rectangle.
type Rect struct {
	X, Y          int
	Width, Height float64
}

// RectFrom builds a rectangle from a position and a size.
func RectFrom(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Position returns the top-left corner.
func (r Rect) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle size.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return float64(p.X) >= float64(r.X) && float64(p.X) < float64(r.X)+r.Width &&
		float64(p.Y) >= float64(r.Y) && float64(p.Y) < float64(r.Y)+r.Height
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return float64(r.X) < float64(o.X)+o.Width && float64(o.X) < float64(r.X)+r.Width &&
		float64(r.Y) < float64(o.Y)+o.Height && float64(o.Y) < float64(r.Y)+r.Height
}
