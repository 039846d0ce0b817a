package doodle

// SpriteText is a drawable that draws text with a SpriteFont.
// It automatically resizes to fit its text, so its size should not be
// set directly.
type SpriteText struct {
	Node

	font    *SpriteFont
	content string
}

// NewSpriteText creates an empty sprite text drawable.
func NewSpriteText() *SpriteText {
	return &SpriteText{}
}

// Font returns the sprite font this drawable draws with.
func (t *SpriteText) Font() *SpriteFont {
	return t.font
}

// SetFont sets the sprite font, re-fitting the drawable's size.
func (t *SpriteText) SetFont(font *SpriteFont) {
	t.font = font
	t.updateSize()
}

// Content returns the displayed text.
func (t *SpriteText) Content() string {
	return t.content
}

// SetContent sets the displayed text, re-fitting the drawable's size.
func (t *SpriteText) SetContent(content string) {
	t.content = content
	t.updateSize()
}

func (t *SpriteText) updateSize() {
	if t.font != nil && t.content != "" {
		t.Size = t.font.MeasureString(t.content)
	}
}

// Render draws the text with the sprite font.
func (t *SpriteText) Render() (*Pixmap, error) {
	if t.font == nil {
		return nil, ErrNoFont
	}
	return t.font.RenderString(t.content)
}
