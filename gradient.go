package doodle

import "sort"

// GradientDirection is the axis a linear gradient runs along.
type GradientDirection uint8

const (
	// DirectionUnset marks a gradient with no direction; drawing it
	// returns ErrMissingDirection.
	DirectionUnset GradientDirection = iota
	// DirectionHorizontal runs the gradient along the X axis.
	DirectionHorizontal
	// DirectionVertical runs the gradient along the Y axis.
	DirectionVertical
)

// String returns a human-readable representation of the direction.
func (d GradientDirection) String() string {
	switch d {
	case DirectionHorizontal:
		return "horizontal"
	case DirectionVertical:
		return "vertical"
	default:
		return "unset"
	}
}

// GradientStop is a colour control point on a gradient.
type GradientStop struct {
	// Position is the stop's place along the gradient, from 0 to 1.
	Position float64

	// Colour is the colour at this stop.
	Colour RGBA

	// Midpoint skews the interpolation toward the next stop, from 0
	// (exclusive) to 1. A zero value behaves like 1 (no skew applied);
	// the conventional default is 0.5.
	//
	// Midpoints above 0.5 produce a non-monotonic transition that
	// overshoots the next stop's colour before half the span. This
	// behaviour is kept as documented rather than corrected.
	Midpoint float64
}

// Gradient describes a linear multi-stop fill.
//
// Stops constructed directly carry whatever Midpoint they were given: a
// zero value is not normalized to the conventional 0.5, it interpolates
// without skew. The markup loader fills omitted midpoints with 0.5, so
// the same document attribute and a zero-valued struct field interpolate
// differently.
type Gradient struct {
	Direction GradientDirection
	Stops     []GradientStop
}

// Draw renders the gradient into a width x height buffer.
func (g *Gradient) Draw(width, height int) (*Pixmap, error) {
	return DrawGradient(width, height, g.Direction, g.Stops)
}

// DrawGradient renders a linear gradient into a width x height RGBA
// buffer. At least two stops are required. Stops are evaluated in
// ascending position order; a terminal stop at position 1 is synthesized
// from the last stop when it ends early, so the fill always covers the
// full length.
func DrawGradient(width, height int, direction GradientDirection, stops []GradientStop) (*Pixmap, error) {
	if len(stops) < 2 {
		return nil, ErrInsufficientStops
	}
	if direction != DirectionHorizontal && direction != DirectionVertical {
		return nil, ErrMissingDirection
	}

	sorted := make([]GradientStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	if last := sorted[len(sorted)-1]; last.Position < 1 {
		last.Position = 1
		sorted = append(sorted, last)
	}

	length := width
	if direction == DirectionVertical {
		length = height
	}

	pm := NewPixmap(width, height)
	lo, hi := 0, 1

	for i := 0; i < length; i++ {
		start := sorted[lo]
		end := sorted[hi]

		startPosition := float64(length) * start.Position
		endPosition := float64(length) * end.Position

		t := (float64(i) - startPosition) / (endPosition - startPosition)
		colour := interpolateStop(t, start, end)

		if direction == DirectionHorizontal {
			for y := 0; y < height; y++ {
				pm.SetPixel(i, y, colour)
			}
		} else {
			for x := 0; x < width; x++ {
				pm.SetPixel(x, i, colour)
			}
		}

		if float64(i) >= endPosition {
			lo = min(lo+1, len(sorted)-1)
			hi = min(hi+1, len(sorted)-1)
		}
	}

	return pm, nil
}

// interpolateStop interpolates each channel linearly between two stops,
// applying the start stop's midpoint skew.
func interpolateStop(t float64, start, end GradientStop) RGBA {
	return RGBA{
		R: gradientValue(t, start.Colour.R, end.Colour.R, start.Midpoint),
		G: gradientValue(t, start.Colour.G, end.Colour.G, start.Midpoint),
		B: gradientValue(t, start.Colour.B, end.Colour.B, start.Midpoint),
		A: gradientValue(t, start.Colour.A, end.Colour.A, start.Midpoint),
	}
}

// gradientValue interpolates one channel from startValue toward endValue
// at point t, skewed by the midpoint.
func gradientValue(t, startValue, endValue, midpoint float64) float64 {
	var skewed float64
	if midpoint == 0 {
		skewed = 0.5 * t
	} else {
		skewed = 0.5 * t / midpoint
	}
	return startValue + skewed*(endValue-startValue)
}
