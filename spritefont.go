package doodle

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"

	"github.com/beevik/etree"
)

// SpriteFont is a fixed-cell font composed of one pre-rendered image per
// character.
//
// A sprite font is a directory containing a font.xml descriptor plus the
// glyph images. The descriptor declares the cell size and spacing:
//
//	<font width="12" height="16" spacing="2">
//	    <character value="/">slash.png</character>
//	</font>
//
// Each glyph image is named after the character it represents ("a.png",
// "b.png", ...). Characters that cannot appear in filenames are remapped
// to explicit files with character entries.
type SpriteFont struct {
	path string

	// CellWidth and CellHeight are the size in pixels of every glyph.
	CellWidth, CellHeight int

	// Spacing is the horizontal space in pixels between glyphs.
	Spacing int

	files map[rune]string
}

// LoadSpriteFont reads a sprite font from a directory. A missing or
// malformed font.xml produces a *ResourceError.
func LoadSpriteFont(dir string) (*SpriteFont, error) {
	descriptor := filepath.Join(dir, "font.xml")

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(descriptor); err != nil {
		return nil, &ResourceError{Path: descriptor, Err: err}
	}

	root := doc.Root()
	if root == nil || root.Tag != "font" {
		return nil, &ResourceError{Path: descriptor, Err: errors.New("descriptor must have a root <font> node")}
	}

	width, werr := strconv.Atoi(root.SelectAttrValue("width", ""))
	height, herr := strconv.Atoi(root.SelectAttrValue("height", ""))
	spacing, serr := strconv.Atoi(root.SelectAttrValue("spacing", ""))
	if werr != nil || herr != nil || serr != nil {
		return nil, &ResourceError{
			Path: descriptor,
			Err:  errors.New("the root <font> node must specify width, height and spacing"),
		}
	}

	files := make(map[rune]string)
	for _, char := range root.SelectElements("character") {
		value := []rune(char.SelectAttrValue("value", ""))
		if len(value) != 1 || char.Text() == "" {
			return nil, &ResourceError{
				Path: descriptor,
				Err:  errors.New("<character> nodes must specify a single-character value and a file"),
			}
		}
		files[value[0]] = char.Text()
	}

	return &SpriteFont{
		path:       dir,
		CellWidth:  width,
		CellHeight: height,
		Spacing:    spacing,
		files:      files,
	}, nil
}

// MeasureString returns the size in pixels of text drawn with this font.
func (f *SpriteFont) MeasureString(text string) Vec2 {
	n := len([]rune(text))
	return Vec2{
		X: float64((f.CellWidth+f.Spacing)*n + int(math.Abs(float64(f.Spacing)))),
		Y: float64(f.CellHeight),
	}
}

// RenderString draws text with this font into a fresh buffer. A missing
// glyph image for a required character produces a *ResourceError.
func (f *SpriteFont) RenderString(text string) (*Pixmap, error) {
	size := f.MeasureString(text)
	pm := NewPixmap(roundInt(size.X), roundInt(size.Y))

	x := 0
	for _, r := range text {
		file, ok := f.files[r]
		if !ok {
			file = fmt.Sprintf("%c.png", r)
		}

		img, err := LoadImage(filepath.Join(f.path, file))
		if err != nil {
			return nil, err
		}

		pm.Compose(FromImage(img), x, 0)
		x += f.CellWidth + f.Spacing
	}

	return pm, nil
}
