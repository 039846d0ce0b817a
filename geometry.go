package doodle

import "math"

// Vec2 is a pair of float64 values, used for sizes and positions.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of v and o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// roundInt rounds a coordinate to the nearest integer pixel.
// Rounding happens only at composite time, never in resolver math.
func roundInt(v float64) int {
	return int(math.Round(v))
}

// AxisAlign selects a relative point along one axis of a box.
type AxisAlign uint8

const (
	// AlignMin is the left or top edge.
	AlignMin AxisAlign = iota
	// AlignCenter is the horizontal or vertical center.
	AlignCenter
	// AlignMax is the right or bottom edge.
	AlignMax
)

// value maps an axis alignment to its fractional position: 0, 0.5, or 1.
func (a AxisAlign) value() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignMax:
		return 1
	default:
		return 0
	}
}

// Anchor is a relative point in a box, stored as two independent axis
// selectors. The zero value is the top-left corner.
type Anchor struct {
	X AxisAlign
	Y AxisAlign
}

// The nine named anchors.
var (
	AnchorTopLeft      = Anchor{AlignMin, AlignMin}
	AnchorTopCenter    = Anchor{AlignCenter, AlignMin}
	AnchorTopRight     = Anchor{AlignMax, AlignMin}
	AnchorCenterLeft   = Anchor{AlignMin, AlignCenter}
	AnchorCenter       = Anchor{AlignCenter, AlignCenter}
	AnchorCenterRight  = Anchor{AlignMax, AlignCenter}
	AnchorBottomLeft   = Anchor{AlignMin, AlignMax}
	AnchorBottomCenter = Anchor{AlignCenter, AlignMax}
	AnchorBottomRight  = Anchor{AlignMax, AlignMax}
)

// value returns the fractional position of the anchor within a unit box.
func (a Anchor) value() Vec2 {
	return Vec2{X: a.X.value(), Y: a.Y.value()}
}

// Axes marks a set of two dimensional axes.
type Axes uint8

const (
	// AxesNone marks no axes.
	AxesNone Axes = 0
	// AxesX marks the horizontal axis.
	AxesX Axes = 1 << 0
	// AxesY marks the vertical axis.
	AxesY Axes = 1 << 1
	// AxesBoth marks both axes.
	AxesBoth Axes = AxesX | AxesY
)

// Has reports whether all axes in o are present in a.
func (a Axes) Has(o Axes) bool {
	return a&o == o
}

// Inset is a set of four per-side spacing values. It is used both for
// margin (outside a drawable's bounds) and padding (inside a container,
// shrinking the area offered to children).
type Inset struct {
	Top, Bottom, Left, Right float64
}

// UniformInset returns an inset with the same value on every side.
func UniformInset(v float64) Inset {
	return Inset{Top: v, Bottom: v, Left: v, Right: v}
}

// Horizontal returns the combined left and right values.
func (i Inset) Horizontal() float64 {
	return i.Left + i.Right
}

// Vertical returns the combined top and bottom values.
func (i Inset) Vertical() float64 {
	return i.Top + i.Bottom
}
