package doodle

import "log/slog"

// Container is a drawable that owns an ordered list of child drawables.
// Child order is back-to-front paint order.
type Container struct {
	Node

	// Padding is the top, bottom, left and right spacing applied inside
	// this container, shrinking the area offered to its children.
	Padding Inset

	// Masking controls whether children are clipped to this container's
	// bounds. When false, children paint into the nearest masking
	// ancestor's bounds instead, allowing overflow visuals.
	Masking bool

	children []Drawable
}

// NewContainer creates an empty container with masking enabled.
func NewContainer() *Container {
	return &Container{Masking: true}
}

// Children returns the container's children in paint order.
// The returned slice is shared; use Add and Remove to modify it.
func (c *Container) Children() []Drawable {
	return c.children
}

// ChildrenSize returns the size in pixels of the content area offered to
// children: the container's draw size minus padding.
func (c *Container) ChildrenSize() (Vec2, error) {
	size, err := c.DrawSize()
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{
		X: size.X - c.Padding.Horizontal(),
		Y: size.Y - c.Padding.Vertical(),
	}, nil
}

// ChildrenPosition returns the coordinates of ChildrenSize, relative to
// the container's own resolved frame.
func (c *Container) ChildrenPosition() Vec2 {
	return Vec2{X: c.Padding.Left, Y: c.Padding.Top}
}

// Add appends a child drawable. A child already owned by another
// container is detached from it first, so a drawable never appears in
// two child lists.
func (c *Container) Add(child Drawable) {
	c.AddAt(child, len(c.children))
}

// AddAt inserts a child drawable at the given index in the child list.
// Out-of-range indices append.
func (c *Container) AddAt(child Drawable, index int) {
	n := child.node()
	if n.parent != nil {
		_ = n.parent.Remove(child)
	}
	if index < 0 || index > len(c.children) {
		index = len(c.children)
	}

	c.children = append(c.children, nil)
	copy(c.children[index+1:], c.children[index:])
	c.children[index] = child
	n.parent = c
}

// Remove detaches a child drawable. It returns ErrNotOwned if child's
// owner is not this container; the child list is unaffected by a failed
// call. Order of the remaining children is preserved.
func (c *Container) Remove(child Drawable) error {
	n := child.node()
	if n.parent != c {
		return ErrNotOwned
	}

	for i, d := range c.children {
		if d == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			break
		}
	}
	n.parent = nil
	return nil
}

// RenderSize returns the size of the buffer this container paints into.
// A masking container (or a root) paints into its own bounds; an
// unmasked container paints into the nearest masking ancestor's bounds.
func (c *Container) RenderSize() (Vec2, error) {
	if !c.Masking && c.parent != nil {
		return c.parent.RenderSize()
	}
	return c.DrawSize()
}

// RenderPosition returns the offset of this container within the buffer
// it paints into. For an unmasked container this accumulates the draw
// positions down the unmasked chain from the nearest masking ancestor.
func (c *Container) RenderPosition() (Vec2, error) {
	if !c.Masking && c.parent != nil {
		parentPosition, err := c.parent.RenderPosition()
		if err != nil {
			return Vec2{}, err
		}
		position, err := c.DrawPosition()
		if err != nil {
			return Vec2{}, err
		}
		return parentPosition.Add(position), nil
	}
	return c.DrawPosition()
}

// Render composites the container's children, back to front, into a
// fresh transparent buffer of the rounded render size.
//
// Children of a masked container are placed at their own resolved
// positions, clipping by construction. Within an unmasked chain, leaf
// children are offset by the chain's accumulated render position, while
// unmasked child containers paint at the buffer origin since their own
// Render already accounts for the ancestor offsets. Positions are
// rounded to integer pixels only here, at composite time.
func (c *Container) Render() (*Pixmap, error) {
	renderSize, err := c.RenderSize()
	if err != nil {
		return nil, err
	}
	buf := NewPixmap(roundInt(renderSize.X), roundInt(renderSize.Y))

	Logger().Debug("rendering container",
		slog.Int("children", len(c.children)),
		slog.Int("width", buf.Width()),
		slog.Int("height", buf.Height()),
		slog.Bool("masking", c.Masking))

	for _, child := range c.children {
		var position Vec2

		if c.Masking && (c.parent == nil || c.parent.Masking) {
			position, err = child.node().DrawPosition()
			if err != nil {
				return nil, err
			}
		} else if cc, ok := child.(*Container); ok && !cc.Masking {
			// The child's render call resolves its own offset through
			// RenderPosition, so it composites at the shared origin.
			position = Vec2{}
		} else {
			renderPosition, err := c.RenderPosition()
			if err != nil {
				return nil, err
			}
			drawPosition, err := child.node().DrawPosition()
			if err != nil {
				return nil, err
			}
			position = renderPosition.Add(drawPosition)
		}

		img, err := child.Render()
		if err != nil {
			return nil, err
		}
		buf.Compose(img, roundInt(position.X), roundInt(position.Y))
	}

	return buf, nil
}
