package doodle

import (
	"image"
	"math"
	"os"
	"strings"

	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextMode controls how a Text drawable lays out its content.
type TextMode uint8

const (
	// TextSingleLine draws the text on a single line and auto-sizes the
	// drawable to fit it.
	TextSingleLine TextMode = iota
	// TextSquish draws the text on a single line, auto-sizes the height,
	// and compresses the text horizontally when it exceeds the width.
	TextSquish
	// TextWrap wraps the text to fit the drawable's width.
	TextWrap
)

// String returns a human-readable representation of the mode.
func (m TextMode) String() string {
	switch m {
	case TextSquish:
		return "squish"
	case TextWrap:
		return "wrap"
	default:
		return "single-line"
	}
}

// LoadFont parses a TTF or OTF font file. Missing or malformed files
// produce a *ResourceError.
func LoadFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	return fnt, nil
}

// Text is a drawable that rasterizes text with a TrueType font.
//
// In TextSingleLine mode the drawable auto-sizes to its content, so its
// size should not be set directly; in TextSquish mode only the height is
// managed. TextWrap leaves the size alone and breaks lines to fit the
// width.
type Text struct {
	Node

	// Colour is the colour the text is drawn with.
	Colour RGBA

	// LineSpacing is the vertical space in pixels between wrapped lines.
	// Unused outside TextWrap mode.
	LineSpacing float64

	fnt      *opentype.Font
	face     font.Face
	fontSize float64
	content  string
	mode     TextMode
}

// NewText creates an empty single-line text drawable in white.
func NewText() *Text {
	return &Text{Colour: White}
}

// Content returns the displayed text.
func (t *Text) Content() string {
	return t.content
}

// SetContent sets the displayed text, re-fitting the drawable's size to
// it where the mode calls for that.
func (t *Text) SetContent(content string) {
	t.content = content
	t.updateSize()
}

// Mode returns the layout mode.
func (t *Text) Mode() TextMode {
	return t.mode
}

// SetMode sets the layout mode, re-fitting the drawable's size.
func (t *Text) SetMode(mode TextMode) {
	t.mode = mode
	t.updateSize()
}

// FontSize returns the configured font size in pixels.
func (t *Text) FontSize() float64 {
	return t.fontSize
}

// SetFont sets the font and size used to rasterize the text.
func (t *Text) SetFont(fnt *opentype.Font, size float64) error {
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}

	t.fnt = fnt
	t.fontSize = size
	t.face = face
	t.updateSize()
	return nil
}

// updateSize fits Size to the measured content. Wrap mode does not
// consult the content size, so it is skipped.
func (t *Text) updateSize() {
	if t.content == "" || t.face == nil || t.mode == TextWrap {
		return
	}

	w, h := t.measure(t.content)
	switch t.mode {
	case TextSingleLine:
		t.Size = Vec2{X: w, Y: h}
	case TextSquish:
		t.Size.Y = h
	}
}

// measure returns the advance width and line height of s in pixels.
func (t *Text) measure(s string) (width, height float64) {
	width = float64(font.MeasureString(t.face, s)) / 64
	metrics := t.face.Metrics()
	height = float64(metrics.Ascent+metrics.Descent) / 64
	return width, height
}

// Render rasterizes the text into a buffer of the rounded draw size,
// aligned within it by the drawable's anchor.
func (t *Text) Render() (*Pixmap, error) {
	size, err := t.DrawSize()
	if err != nil {
		return nil, err
	}
	buf := NewPixmap(roundInt(size.X), roundInt(size.Y))

	if t.content == "" {
		return buf, nil
	}
	if t.face == nil {
		return nil, ErrNoFont
	}

	var textImg *Pixmap
	if t.mode == TextWrap {
		textImg = t.renderWrapped(buf.Width())
	} else {
		textImg = t.renderLine(t.content)

		// Squish the text when it does not fit the width.
		if t.mode == TextSquish && buf.Width() < textImg.Width() {
			squished := image.NewNRGBA(image.Rect(0, 0, buf.Width(), textImg.Height()))
			draw.ApproxBiLinear.Scale(squished, squished.Bounds(), textImg.ToImage(), textImg.ToImage().Bounds(), draw.Src, nil)
			textImg = FromImage(squished)
		}
	}

	x := anchoredOffset(t.Anchor.X, textImg.Width(), buf.Width())
	y := anchoredOffset(t.Anchor.Y, textImg.Height(), buf.Height())
	buf.Compose(textImg, x, y)
	return buf, nil
}

// renderLine rasterizes a single line of text at its natural size.
func (t *Text) renderLine(s string) *Pixmap {
	w, h := t.measure(s)
	img := image.NewNRGBA(image.Rect(0, 0, int(math.Ceil(w)), roundInt(h)))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(t.Colour.Color()),
		Face: t.face,
		Dot:  fixed.Point26_6{X: 0, Y: t.face.Metrics().Ascent},
	}
	d.DrawString(s)

	return FromImage(img)
}

// renderWrapped rasterizes the content broken into lines that fit
// maxWidth, stacked with LineSpacing and aligned per the X anchor.
func (t *Text) renderWrapped(maxWidth int) *Pixmap {
	lines := t.wrapLines(float64(maxWidth))

	lineImgs := make([]*Pixmap, 0, len(lines))
	textHeight := 0.0
	for _, line := range lines {
		img := t.renderLine(line)
		textHeight += float64(img.Height()) + t.LineSpacing
		lineImgs = append(lineImgs, img)
	}
	textHeight = math.Max(textHeight-t.LineSpacing, 0)

	textImg := NewPixmap(maxWidth, roundInt(textHeight))
	y := 0.0
	for _, img := range lineImgs {
		x := anchoredOffset(t.Anchor.X, img.Width(), maxWidth)
		textImg.Compose(img, x, roundInt(y))
		y += float64(img.Height()) + t.LineSpacing
	}
	return textImg
}

// wrapLines splits the content at UAX #14 line-break opportunities,
// greedily packing segments while the measured line fits maxWidth.
func (t *Text) wrapLines(maxWidth float64) []string {
	var seg segmenter.Segmenter
	seg.Init([]rune(t.content))

	var lines []string
	var current []rune

	flush := func() {
		lines = append(lines, strings.TrimRight(string(current), " \r\n"))
		current = current[:0]
	}

	iter := seg.LineIterator()
	for iter.Next() {
		line := iter.Line()

		candidate := string(current) + string(line.Text)
		w, _ := t.measure(strings.TrimRight(candidate, " \r\n"))
		if len(current) > 0 && w > maxWidth {
			flush()
		}
		current = append(current, line.Text...)

		if line.IsMandatoryBreak {
			flush()
		}
	}
	if len(current) > 0 {
		flush()
	}
	return lines
}

// anchoredOffset positions an image of size inner inside a span of size
// outer along one axis, per the axis alignment.
func anchoredOffset(align AxisAlign, inner, outer int) int {
	switch align {
	case AlignCenter:
		return (outer - inner) / 2
	case AlignMax:
		return outer - inner
	default:
		return 0
	}
}
