package doodle

// Box is a drawable that fills its bounds with a flat colour, or with
// its gradient when one is set.
type Box struct {
	Node

	// Colour is the flat fill colour, used when no gradient is set.
	Colour RGBA
}

// NewBox creates a white box.
func NewBox() *Box {
	return &Box{Colour: White}
}

// Render renders the box at its rounded draw size.
func (b *Box) Render() (*Pixmap, error) {
	size, err := b.DrawSize()
	if err != nil {
		return nil, err
	}
	width, height := roundInt(size.X), roundInt(size.Y)

	if b.Gradient != nil {
		return b.Gradient.Draw(width, height)
	}

	pm := NewPixmap(width, height)
	pm.Fill(b.Colour)
	return pm, nil
}
