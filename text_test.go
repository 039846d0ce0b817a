package doodle

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func testFont(t *testing.T) *opentype.Font {
	t.Helper()
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("parsing test font: %v", err)
	}
	return fnt
}

func TestTextAutoSize(t *testing.T) {
	text := NewText()
	if err := text.SetFont(testFont(t), 16); err != nil {
		t.Fatalf("SetFont() error = %v", err)
	}
	text.SetContent("hello world")

	if text.Size.X <= 0 || text.Size.Y <= 0 {
		t.Fatalf("Size = %v, want positive auto-fitted size", text.Size)
	}

	short := text.Size.X
	text.SetContent("hello world, but quite a bit longer")
	if text.Size.X <= short {
		t.Errorf("Size.X = %v, want wider than %v for longer content", text.Size.X, short)
	}
}

func TestTextSquishKeepsWidth(t *testing.T) {
	text := NewText()
	text.SetMode(TextSquish)
	text.Size = Vec2{X: 40, Y: 0}
	if err := text.SetFont(testFont(t), 16); err != nil {
		t.Fatalf("SetFont() error = %v", err)
	}
	text.SetContent("a line that is far too long for forty pixels")

	if text.Size.X != 40 {
		t.Errorf("Size.X = %v, want width left at 40", text.Size.X)
	}
	if text.Size.Y <= 0 {
		t.Errorf("Size.Y = %v, want auto-fitted height", text.Size.Y)
	}

	buf, err := text.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.Width() != 40 {
		t.Errorf("buffer width = %d, want 40", buf.Width())
	}
}

func TestTextRenderProducesInk(t *testing.T) {
	text := NewText()
	if err := text.SetFont(testFont(t), 24); err != nil {
		t.Fatalf("SetFont() error = %v", err)
	}
	text.Colour = White
	text.SetContent("Hello")

	buf, err := text.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	inked := false
	for y := 0; y < buf.Height() && !inked; y++ {
		for x := 0; x < buf.Width(); x++ {
			if buf.GetPixel(x, y).A > 0 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("rendered text has no opaque pixels")
	}
}

func TestTextRenderEmptyContent(t *testing.T) {
	text := NewText()
	text.Size = Vec2{X: 10, Y: 10}

	buf, err := text.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.Width() != 10 || buf.Height() != 10 {
		t.Errorf("buffer = %dx%d, want 10x10", buf.Width(), buf.Height())
	}
}

func TestTextRenderNoFont(t *testing.T) {
	text := NewText()
	text.Size = Vec2{X: 10, Y: 10}
	text.content = "orphaned"

	if _, err := text.Render(); !errors.Is(err, ErrNoFont) {
		t.Errorf("Render() error = %v, want ErrNoFont", err)
	}
}

func TestTextWrapLines(t *testing.T) {
	text := NewText()
	text.SetMode(TextWrap)
	if err := text.SetFont(testFont(t), 16); err != nil {
		t.Fatalf("SetFont() error = %v", err)
	}
	text.SetContent("several words that cannot possibly fit one narrow line")

	lines := text.wrapLines(80)
	if len(lines) < 2 {
		t.Fatalf("wrapLines() = %d lines, want at least 2", len(lines))
	}
	for i, line := range lines {
		w, _ := text.measure(line)
		// A single over-long word may overflow; packed lines must not.
		if w > 80 && strings.Contains(line, " ") {
			t.Errorf("line %d (%q) measures %v, wider than the 80px limit", i, line, w)
		}
	}
}

func TestTextWrapMandatoryBreak(t *testing.T) {
	text := NewText()
	text.SetMode(TextWrap)
	if err := text.SetFont(testFont(t), 16); err != nil {
		t.Fatalf("SetFont() error = %v", err)
	}
	text.SetContent("first\nsecond")

	lines := text.wrapLines(10000)
	if len(lines) != 2 || lines[0] != "first" || lines[1] != "second" {
		t.Errorf("wrapLines() = %q, want [first second]", lines)
	}
}

func TestTextWrapDoesNotResize(t *testing.T) {
	text := NewText()
	text.SetMode(TextWrap)
	text.Size = Vec2{X: 50, Y: 70}
	if err := text.SetFont(testFont(t), 16); err != nil {
		t.Fatalf("SetFont() error = %v", err)
	}
	text.SetContent("wrapped content leaves the size alone")

	if want := (Vec2{X: 50, Y: 70}); !vecsEqual(text.Size, want) {
		t.Errorf("Size = %v, want unchanged %v", text.Size, want)
	}
}

func TestLoadFontMissingFile(t *testing.T) {
	_, err := LoadFont("/nonexistent/font.ttf")
	var resErr *ResourceError
	if !errors.As(err, &resErr) {
		t.Fatalf("LoadFont() error = %T, want *ResourceError", err)
	}
}
