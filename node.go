package doodle

// Drawable is anything that can be rendered into a pixel buffer.
//
// The set of drawables is closed: Box, Texture, Text, SpriteText and
// Container all embed Node, which provides the shared geometry state and
// the resolver queries. A drawable held by a Container is exclusively
// owned by it.
type Drawable interface {
	// node returns the shared geometry state of the drawable.
	node() *Node

	// Render renders the drawable into a fresh pixel buffer sized to its
	// rounded draw size.
	Render() (*Pixmap, error)
}

// Node holds the geometry attributes shared by every drawable kind.
//
// All geometry queries are pure: they recompute from the current
// attribute values on every call and never cache.
type Node struct {
	parent *Container

	// Size is the size of the drawable. Axes marked in RelativeSizeAxes
	// are fractions (0 to 1) of the parent's content area instead of
	// absolute pixels.
	Size Vec2

	// Position is the position of the drawable, relative to the
	// anchor/origin frame within its parent.
	Position Vec2

	// Anchor is the point in the parent's content area that Origin is
	// positioned against.
	Anchor Anchor

	// Origin is the point within this drawable's own bounds used as the
	// placement reference point.
	Origin Anchor

	// RelativeSizeAxes controls which size components are relative to the
	// parent's content area.
	RelativeSizeAxes Axes

	// Margin is the top, bottom, left and right spacing applied outside
	// this drawable's bounds, affecting how it sits within its parent.
	Margin Inset

	// Gradient optionally fills the drawable with a gradient instead of a
	// flat colour. Only fillable kinds (Box) consult it.
	Gradient *Gradient
}

func (n *Node) node() *Node { return n }

// Parent returns the container owning this drawable, or nil for a root.
// The back-reference is used only for upward geometry queries and
// ownership validation, never to mutate the parent.
func (n *Node) Parent() *Container {
	return n.parent
}

// DrawSize returns the size in pixels that this drawable will be drawn
// with. Axes marked relative are resolved against the parent's content
// area; requesting that without a parent returns ErrMissingParent.
func (n *Node) DrawSize() (Vec2, error) {
	size := n.Size

	if n.RelativeSizeAxes != AxesNone {
		if n.parent == nil {
			return Vec2{}, ErrMissingParent
		}
		parentSize, err := n.parent.ChildrenSize()
		if err != nil {
			return Vec2{}, err
		}
		if n.RelativeSizeAxes.Has(AxesX) {
			size.X *= parentSize.X
		}
		if n.RelativeSizeAxes.Has(AxesY) {
			size.Y *= parentSize.Y
		}
	}

	return size, nil
}

// DrawPosition returns the coordinates in pixels of DrawSize, relative to
// the parent's frame.
//
// With a parent, the anchor point inside the parent's content area and
// the origin point inside this drawable's own bounds are lined up and
// offset by Position. Margin then pushes the drawable away from the edge
// its anchor selects; centered axes apply no margin.
func (n *Node) DrawPosition() (Vec2, error) {
	position := n.Position

	if n.parent != nil {
		parentSize, err := n.parent.ChildrenSize()
		if err != nil {
			return Vec2{}, err
		}
		size, err := n.DrawSize()
		if err != nil {
			return Vec2{}, err
		}

		anchorPoint := n.parent.ChildrenPosition().Add(n.Anchor.value().Mul(parentSize))
		originPoint := n.Origin.value().Mul(size)
		position = anchorPoint.Sub(originPoint).Add(n.Position)
	}

	switch n.Anchor.X {
	case AlignMin:
		position.X += n.Margin.Left
	case AlignMax:
		position.X -= n.Margin.Right
	}
	switch n.Anchor.Y {
	case AlignMin:
		position.Y += n.Margin.Top
	case AlignMax:
		position.Y -= n.Margin.Bottom
	}

	return position, nil
}

// LayoutSize returns the full footprint of this drawable including
// margin.
func (n *Node) LayoutSize() (Vec2, error) {
	size, err := n.DrawSize()
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{
		X: size.X + n.Margin.Horizontal(),
		Y: size.Y + n.Margin.Vertical(),
	}, nil
}

// LayoutPosition returns the coordinates of LayoutSize, relative to the
// parent's frame.
func (n *Node) LayoutPosition() (Vec2, error) {
	position, err := n.DrawPosition()
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{
		X: position.X - n.Margin.Left,
		Y: position.Y - n.Margin.Top,
	}, nil
}
