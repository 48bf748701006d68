package combat

// Box is an axis-aligned rectangle in arena coordinates. X,Y is the top
// left corner.
type Box struct {
	X, Y, W, H float64
}

// Right returns the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Overlaps reports whether the two boxes intersect.
func (b Box) Overlaps(other Box) bool {
	return b.X < other.Right() && b.Right() > other.X &&
		b.Y < other.Bottom() && b.Bottom() > other.Y
}

// Inflate grows the box by dx and dy while keeping its center.
func (b Box) Inflate(dx, dy float64) Box {
	return Box{
		X: b.X - dx/2,
		Y: b.Y - dy/2,
		W: b.W + dx,
		H: b.H + dy,
	}
}
