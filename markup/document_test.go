package markup

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aoki-marika/doodle"
	"golang.org/x/image/font/gofont/goregular"
)

func coloursClose(a, b doodle.RGBA) bool {
	const eps = 1.0 / 255
	return math.Abs(a.R-b.R) <= eps &&
		math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps &&
		math.Abs(a.A-b.A) <= eps
}

func loadString(t *testing.T, document, dir string, values any) *doodle.Container {
	t.Helper()
	root, err := Load(strings.NewReader(document), dir, values)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return root
}

func TestLoadBasicDocument(t *testing.T) {
	root := loadString(t, `<drawing width="200" height="100">
	<box colour="#f00" width="50" height="25" x="10" y="20"/>
</drawing>`, "", nil)

	if want := (doodle.Vec2{X: 200, Y: 100}); root.Size != want {
		t.Errorf("root size = %v, want %v", root.Size, want)
	}
	if len(root.Children()) != 1 {
		t.Fatalf("len(children) = %d, want 1", len(root.Children()))
	}

	box, ok := root.Children()[0].(*doodle.Box)
	if !ok {
		t.Fatalf("child = %T, want *doodle.Box", root.Children()[0])
	}
	if want := (doodle.RGBA{R: 1, A: 1}); box.Colour != want {
		t.Errorf("colour = %v, want %v", box.Colour, want)
	}
	if want := (doodle.Vec2{X: 50, Y: 25}); box.Size != want {
		t.Errorf("size = %v, want %v", box.Size, want)
	}
	if want := (doodle.Vec2{X: 10, Y: 20}); box.Position != want {
		t.Errorf("position = %v, want %v", box.Position, want)
	}
}

func TestLoadRootErrors(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"wrong root tag", `<scene width="10" height="10"/>`},
		{"missing width", `<drawing height="10"/>`},
		{"missing height", `<drawing width="10"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.document), "", nil)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Load() error = %T, want *ConfigError", err)
			}
		})
	}
}

func TestLoadUnknownTag(t *testing.T) {
	_, err := Load(strings.NewReader(`<drawing width="10" height="10"><widget/></drawing>`), "", nil)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load() error = %T, want *ConfigError", err)
	}
	if cfgErr.Tag != "widget" {
		t.Errorf("ConfigError.Tag = %q, want widget", cfgErr.Tag)
	}
}

func TestLoadMalformedNumericAttribute(t *testing.T) {
	_, err := Load(strings.NewReader(`<drawing width="10" height="10"><box width="wide"/></drawing>`), "", nil)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load() error = %T, want *ConfigError", err)
	}
}

func TestLoadNodeAttributes(t *testing.T) {
	root := loadString(t, `<drawing width="100" height="100">
	<box anchor="bottom-right" origin="center" relative-size-axes="both" size="0.5"
	     margin-left="3" margin-top="4"/>
</drawing>`, "", nil)

	box := root.Children()[0].(*doodle.Box)
	if box.Anchor != doodle.AnchorBottomRight {
		t.Errorf("anchor = %v, want bottom-right", box.Anchor)
	}
	if box.Origin != doodle.AnchorCenter {
		t.Errorf("origin = %v, want center", box.Origin)
	}
	if box.RelativeSizeAxes != doodle.AxesBoth {
		t.Errorf("relative size axes = %v, want both", box.RelativeSizeAxes)
	}
	if want := (doodle.Vec2{X: 0.5, Y: 0.5}); box.Size != want {
		t.Errorf("size = %v, want shorthand-applied %v", box.Size, want)
	}
	if want := (doodle.Inset{Left: 3, Top: 4}); box.Margin != want {
		t.Errorf("margin = %v, want %v", box.Margin, want)
	}
}

func TestLoadEnumFallbacks(t *testing.T) {
	// Unrecognized enum tokens silently fall back to defaults.
	root := loadString(t, `<drawing width="100" height="100">
	<box anchor="upper-middle" relative-size-axes="diagonal"/>
</drawing>`, "", nil)

	box := root.Children()[0].(*doodle.Box)
	if box.Anchor != doodle.AnchorTopLeft {
		t.Errorf("anchor = %v, want fallback top-left", box.Anchor)
	}
	if box.RelativeSizeAxes != doodle.AxesNone {
		t.Errorf("relative size axes = %v, want fallback none", box.RelativeSizeAxes)
	}
}

func TestLoadContainer(t *testing.T) {
	root := loadString(t, `<drawing width="100" height="100">
	<container masking="false" padding="5" width="50" height="50">
		<box width="10" height="10"/>
		<box width="20" height="20"/>
	</container>
</drawing>`, "", nil)

	c := root.Children()[0].(*doodle.Container)
	if c.Masking {
		t.Error("masking = true, want false")
	}
	if want := doodle.UniformInset(5); c.Padding != want {
		t.Errorf("padding = %v, want %v", c.Padding, want)
	}
	if len(c.Children()) != 2 {
		t.Errorf("len(children) = %d, want 2", len(c.Children()))
	}
}

func TestLoadGradient(t *testing.T) {
	root := loadString(t, `<drawing width="100" height="100">
	<box gradient-type="linear" gradient-direction="vertical"
	     gradient-stops="#000, #fff 0.75 0.25, #f00"/>
</drawing>`, "", nil)

	box := root.Children()[0].(*doodle.Box)
	if box.Gradient == nil {
		t.Fatal("gradient not attached")
	}
	if box.Gradient.Direction != doodle.DirectionVertical {
		t.Errorf("direction = %v, want vertical", box.Gradient.Direction)
	}
	stops := box.Gradient.Stops
	if len(stops) != 3 {
		t.Fatalf("len(stops) = %d, want 3", len(stops))
	}
	if stops[0].Position != 0 || stops[0].Midpoint != 0.5 {
		t.Errorf("stop 0 = %+v, want evenly spaced with default midpoint", stops[0])
	}
	if stops[1].Position != 0.75 || stops[1].Midpoint != 0.25 {
		t.Errorf("stop 1 = %+v, want explicit position and midpoint", stops[1])
	}
	if stops[2].Position != 1 {
		t.Errorf("stop 2 position = %v, want even spacing 1", stops[2].Position)
	}
	if !coloursClose(stops[1].Colour, doodle.White) {
		t.Errorf("stop 1 colour = %v, want white", stops[1].Colour)
	}
}

func TestLoadGradientWithoutType(t *testing.T) {
	root := loadString(t, `<drawing width="100" height="100">
	<box gradient-stops="#000, #fff"/>
</drawing>`, "", nil)

	if box := root.Children()[0].(*doodle.Box); box.Gradient != nil {
		t.Error("gradient attached without gradient-type")
	}
}

func TestLoadTexture(t *testing.T) {
	dir := t.TempDir()
	pm := doodle.NewPixmap(6, 4)
	pm.Fill(doodle.RGBA{G: 1, A: 1})
	if err := pm.SavePNG(filepath.Join(dir, "sprite.png")); err != nil {
		t.Fatalf("writing image: %v", err)
	}

	root := loadString(t, `<drawing width="100" height="100">
	<texture file="{name}.png" size-to-image="true"/>
</drawing>`, dir, map[string]string{"name": "sprite"})

	tex := root.Children()[0].(*doodle.Texture)
	if tex.Image() == nil {
		t.Fatal("image not loaded")
	}
	if want := (doodle.Vec2{X: 6, Y: 4}); tex.Size != want {
		t.Errorf("size = %v, want image size %v", tex.Size, want)
	}
}

func TestLoadTextureMissingFile(t *testing.T) {
	_, err := Load(strings.NewReader(`<drawing width="10" height="10"><texture/></drawing>`), "", nil)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load() error = %T, want *ConfigError", err)
	}
}

func TestLoadText(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.ttf"), goregular.TTF, 0o644); err != nil {
		t.Fatalf("writing font: %v", err)
	}

	root := loadString(t, `<drawing width="200" height="100">
	<text font="main.ttf" font-size="16" colour="#0f0">Hello, {name}!</text>
</drawing>`, dir, map[string]string{"name": "world"})

	text := root.Children()[0].(*doodle.Text)
	if got := text.Content(); got != "Hello, world!" {
		t.Errorf("content = %q, want templated greeting", got)
	}
	if text.FontSize() != 16 {
		t.Errorf("font size = %v, want 16", text.FontSize())
	}
	if text.Size.X <= 0 || text.Size.Y <= 0 {
		t.Errorf("size = %v, want auto-fitted", text.Size)
	}
	if !coloursClose(text.Colour, doodle.RGBA{G: 1, A: 1}) {
		t.Errorf("colour = %v, want green", text.Colour)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.xml"), nil)
	var resErr *doodle.ResourceError
	if !errors.As(err, &resErr) {
		t.Fatalf("LoadFile() error = %T, want *ResourceError", err)
	}
}

func TestLoadFileResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	pm := doodle.NewPixmap(2, 2)
	pm.Fill(doodle.RGBA{B: 1, A: 1})
	if err := pm.SavePNG(filepath.Join(dir, "dot.png")); err != nil {
		t.Fatalf("writing image: %v", err)
	}
	document := `<drawing width="10" height="10"><texture file="dot.png" size-to-image="true"/></drawing>`
	path := filepath.Join(dir, "scene.xml")
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		t.Fatalf("writing document: %v", err)
	}

	root, err := LoadFile(path, nil)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if tex := root.Children()[0].(*doodle.Texture); tex.Image() == nil {
		t.Error("image not resolved against the document directory")
	}
}

func TestLoadNonUTF8Document(t *testing.T) {
	// 0xE9 is "é" in ISO-8859-1; the declared charset drives decoding.
	document := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?>
<drawing width="10" height="10" label="caf`), 0xE9)
	document = append(document, []byte(`"/>`)...)

	if _, err := Load(strings.NewReader(string(document)), "", nil); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}
