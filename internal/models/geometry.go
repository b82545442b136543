package models

// Screen geometry is measured in terminal cells with the origin at the
// top-left corner, x growing right and y growing down.

type Point struct {
	X int
	Y int
}

type Size struct {
	W int
	H int
}

// Frame is a rectangle on screen: origin plus size.
type Frame struct {
	Origin Point
	Size   Size
}

func (f Frame) Right() int {
	return f.Origin.X + f.Size.W
}

func (f Frame) Bottom() int {
	return f.Origin.Y + f.Size.H
}

// Offset returns a copy of the frame moved by (dx, dy).
func (f Frame) Offset(dx, dy int) Frame {
	f.Origin.X += dx
	f.Origin.Y += dy
	return f
}
