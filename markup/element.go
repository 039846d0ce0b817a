package markup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aoki-marika/doodle"
	"github.com/beevik/etree"
)

// element is the load capability attached to every constructed drawable:
// phase two of the loader protocol, resolving context-dependent
// attributes after the structural tree exists.
type element interface {
	// drawable returns the constructed drawable.
	drawable() doodle.Drawable

	// load resolves the element's context-dependent attributes.
	load(ctx *loadContext) error
}

// elementFrom constructs the element for a markup tag. Unknown tags are
// a hard configuration error; <option> is only valid inside <switch> and
// is handled there.
func elementFrom(el *etree.Element) (element, error) {
	switch el.Tag {
	case "container":
		return newContainerElement(el)
	case "box":
		return newBoxElement(el)
	case "texture":
		return newTextureElement(el)
	case "text":
		return newTextElement(el)
	case "sprite-text":
		return newSpriteTextElement(el)
	case "switch":
		return newSwitchElement(el)
	case "progress":
		return newProgressElement(el)
	default:
		return nil, &ConfigError{Tag: el.Tag, Msg: "unknown tag"}
	}
}

// floatAttr parses a float attribute, returning fallback when absent.
// A present but malformed value is a configuration error.
func floatAttr(el *etree.Element, name string, fallback float64) (float64, error) {
	raw := el.SelectAttrValue(name, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ConfigError{Tag: el.Tag, Msg: fmt.Sprintf("invalid %s %q", name, raw)}
	}
	return v, nil
}

// anchorFromString maps the nine named anchor tokens.
func anchorFromString(s string) (doodle.Anchor, bool) {
	switch strings.ToLower(s) {
	case "top-left":
		return doodle.AnchorTopLeft, true
	case "top-center":
		return doodle.AnchorTopCenter, true
	case "top-right":
		return doodle.AnchorTopRight, true
	case "center-left":
		return doodle.AnchorCenterLeft, true
	case "center":
		return doodle.AnchorCenter, true
	case "center-right":
		return doodle.AnchorCenterRight, true
	case "bottom-left":
		return doodle.AnchorBottomLeft, true
	case "bottom-center":
		return doodle.AnchorBottomCenter, true
	case "bottom-right":
		return doodle.AnchorBottomRight, true
	default:
		return doodle.Anchor{}, false
	}
}

func axesFromString(s string) (doodle.Axes, bool) {
	switch strings.ToLower(s) {
	case "none":
		return doodle.AxesNone, true
	case "x":
		return doodle.AxesX, true
	case "y":
		return doodle.AxesY, true
	case "both":
		return doodle.AxesBoth, true
	default:
		return doodle.AxesNone, false
	}
}

func textModeFromString(s string) (doodle.TextMode, bool) {
	switch strings.ToLower(s) {
	case "single-line":
		return doodle.TextSingleLine, true
	case "squish":
		return doodle.TextSquish, true
	case "wrap":
		return doodle.TextWrap, true
	default:
		return doodle.TextSingleLine, false
	}
}

func directionFromString(s string) (doodle.GradientDirection, bool) {
	switch strings.ToLower(s) {
	case "horizontal":
		return doodle.DirectionHorizontal, true
	case "vertical":
		return doodle.DirectionVertical, true
	default:
		return doodle.DirectionUnset, false
	}
}

func boolFromString(s string) bool {
	return strings.EqualFold(s, "true")
}

// insetFromAttrs parses a four-side spacing group: a single shorthand
// attribute setting every side, or per-side attributes.
func insetFromAttrs(el *etree.Element, shorthand string) (doodle.Inset, error) {
	if el.SelectAttr(shorthand) != nil {
		v, err := floatAttr(el, shorthand, 0)
		if err != nil {
			return doodle.Inset{}, err
		}
		return doodle.UniformInset(v), nil
	}

	var inset doodle.Inset
	var err error
	if inset.Top, err = floatAttr(el, shorthand+"-top", 0); err != nil {
		return doodle.Inset{}, err
	}
	if inset.Bottom, err = floatAttr(el, shorthand+"-bottom", 0); err != nil {
		return doodle.Inset{}, err
	}
	if inset.Left, err = floatAttr(el, shorthand+"-left", 0); err != nil {
		return doodle.Inset{}, err
	}
	if inset.Right, err = floatAttr(el, shorthand+"-right", 0); err != nil {
		return doodle.Inset{}, err
	}
	return inset, nil
}

// applyNode applies the attributes common to every drawable tag.
// Unrecognized tokens for optional enum attributes fall back to their
// defaults; malformed numeric values fail hard.
func applyNode(n *doodle.Node, el *etree.Element) error {
	n.Anchor, _ = anchorFromString(el.SelectAttrValue("anchor", ""))
	n.Origin, _ = anchorFromString(el.SelectAttrValue("origin", ""))
	n.RelativeSizeAxes, _ = axesFromString(el.SelectAttrValue("relative-size-axes", ""))

	var err error
	if n.Position.X, err = floatAttr(el, "x", 0); err != nil {
		return err
	}
	if n.Position.Y, err = floatAttr(el, "y", 0); err != nil {
		return err
	}

	if el.SelectAttr("size") != nil {
		s, err := floatAttr(el, "size", 0)
		if err != nil {
			return err
		}
		n.Size = doodle.Vec2{X: s, Y: s}
	} else {
		if n.Size.X, err = floatAttr(el, "width", 0); err != nil {
			return err
		}
		if n.Size.Y, err = floatAttr(el, "height", 0); err != nil {
			return err
		}
	}

	if n.Margin, err = insetFromAttrs(el, "margin"); err != nil {
		return err
	}

	return applyGradient(n, el)
}

// applyGradient parses the gradient attribute group. The gradient is
// attached only when a recognized type and a stop list are present.
func applyGradient(n *doodle.Node, el *etree.Element) error {
	raw := el.SelectAttrValue("gradient-stops", "")
	gradientType := strings.ToLower(el.SelectAttrValue("gradient-type", ""))
	if raw == "" || gradientType != "linear" {
		return nil
	}

	direction, _ := directionFromString(el.SelectAttrValue("gradient-direction", ""))

	entries := strings.Split(raw, ",")
	stops := make([]doodle.GradientStop, 0, len(entries))
	for i, entry := range entries {
		fields := strings.Fields(entry)
		if len(fields) == 0 {
			return &ConfigError{Tag: el.Tag, Msg: "empty gradient stop"}
		}

		stop := doodle.GradientStop{
			Colour:   doodle.Hex(fields[0]),
			Midpoint: 0.5,
		}

		// Positions default to dividing the run evenly.
		if len(entries) > 1 {
			stop.Position = float64(i) / float64(len(entries)-1)
		}
		if len(fields) >= 2 {
			v, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return &ConfigError{Tag: el.Tag, Msg: fmt.Sprintf("invalid gradient stop position %q", fields[1])}
			}
			stop.Position = v
		}
		if len(fields) >= 3 {
			v, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return &ConfigError{Tag: el.Tag, Msg: fmt.Sprintf("invalid gradient stop midpoint %q", fields[2])}
			}
			stop.Midpoint = v
		}

		stops = append(stops, stop)
	}

	n.Gradient = &doodle.Gradient{Direction: direction, Stops: stops}
	return nil
}

// containerElement wraps a constructed Container and the elements of its
// children for load-phase recursion.
type containerElement struct {
	container *doodle.Container
	children  []element
}

func newContainerElement(el *etree.Element) (*containerElement, error) {
	c := doodle.NewContainer()
	if err := applyNode(&c.Node, el); err != nil {
		return nil, err
	}

	c.Masking = boolFromString(el.SelectAttrValue("masking", "true"))

	var err error
	if c.Padding, err = insetFromAttrs(el, "padding"); err != nil {
		return nil, err
	}

	ce := &containerElement{container: c}
	for _, childEl := range el.ChildElements() {
		if childEl.Tag == "option" {
			// Options belong to <switch>; the switch element resolves
			// them during load.
			continue
		}
		child, err := elementFrom(childEl)
		if err != nil {
			return nil, err
		}
		ce.container.Add(child.drawable())
		ce.children = append(ce.children, child)
	}

	return ce, nil
}

func (e *containerElement) drawable() doodle.Drawable {
	return e.container
}

func (e *containerElement) load(ctx *loadContext) error {
	for _, child := range e.children {
		if err := child.load(ctx); err != nil {
			return err
		}
	}
	return nil
}

// boxElement wraps a constructed Box. Boxes carry no context-dependent
// attributes, so load is a no-op.
type boxElement struct {
	box *doodle.Box
}

func newBoxElement(el *etree.Element) (*boxElement, error) {
	b := doodle.NewBox()
	if err := applyNode(&b.Node, el); err != nil {
		return nil, err
	}
	if raw := el.SelectAttrValue("colour", ""); raw != "" {
		b.Colour = doodle.Hex(raw)
	}
	return &boxElement{box: b}, nil
}

func (e *boxElement) drawable() doodle.Drawable { return e.box }

func (e *boxElement) load(*loadContext) error { return nil }

// textureElement wraps a constructed Texture; the image file path is a
// template resolved and decoded at load time.
type textureElement struct {
	texture *doodle.Texture
	file    string
}

func newTextureElement(el *etree.Element) (*textureElement, error) {
	t := doodle.NewTexture()
	if err := applyNode(&t.Node, el); err != nil {
		return nil, err
	}

	file := el.SelectAttrValue("file", "")
	if file == "" {
		return nil, &ConfigError{Tag: el.Tag, Msg: "missing required attribute file"}
	}
	t.SizeToImage = boolFromString(el.SelectAttrValue("size-to-image", ""))

	return &textureElement{texture: t, file: file}, nil
}

func (e *textureElement) drawable() doodle.Drawable { return e.texture }

func (e *textureElement) load(ctx *loadContext) error {
	file, err := ctx.format(e.file)
	if err != nil {
		return err
	}
	img, err := doodle.LoadImage(ctx.resolvePath(file))
	if err != nil {
		return err
	}
	e.texture.SetImage(img)
	return nil
}

// textElement wraps a constructed Text; the content is templated and the
// font path is resolved and parsed at load time.
type textElement struct {
	text     *doodle.Text
	fontPath string
	fontSize float64
	content  string
}

func newTextElement(el *etree.Element) (*textElement, error) {
	t := doodle.NewText()
	if err := applyNode(&t.Node, el); err != nil {
		return nil, err
	}

	fontPath := el.SelectAttrValue("font", "")
	if fontPath == "" {
		return nil, &ConfigError{Tag: el.Tag, Msg: "missing required attribute font"}
	}
	fontSize, err := floatAttr(el, "font-size", 0)
	if err != nil {
		return nil, err
	}
	if t.LineSpacing, err = floatAttr(el, "line-spacing", 0); err != nil {
		return nil, err
	}
	if raw := el.SelectAttrValue("colour", ""); raw != "" {
		t.Colour = doodle.Hex(raw)
	}
	mode, _ := textModeFromString(el.SelectAttrValue("mode", ""))
	t.SetMode(mode)

	return &textElement{
		text:     t,
		fontPath: fontPath,
		fontSize: fontSize,
		content:  el.Text(),
	}, nil
}

func (e *textElement) drawable() doodle.Drawable { return e.text }

func (e *textElement) load(ctx *loadContext) error {
	fnt, err := doodle.LoadFont(ctx.resolvePath(e.fontPath))
	if err != nil {
		return err
	}
	if err := e.text.SetFont(fnt, e.fontSize); err != nil {
		return err
	}

	content, err := ctx.format(e.content)
	if err != nil {
		return err
	}
	e.text.SetContent(content)
	return nil
}

// spriteTextElement wraps a constructed SpriteText; the content is
// templated and the sprite-font directory is read at load time.
type spriteTextElement struct {
	text     *doodle.SpriteText
	fontPath string
	content  string
}

func newSpriteTextElement(el *etree.Element) (*spriteTextElement, error) {
	t := doodle.NewSpriteText()
	if err := applyNode(&t.Node, el); err != nil {
		return nil, err
	}

	fontPath := el.SelectAttrValue("font", "")
	if fontPath == "" {
		return nil, &ConfigError{Tag: el.Tag, Msg: "missing required attribute font"}
	}

	return &spriteTextElement{
		text:     t,
		fontPath: fontPath,
		content:  el.Text(),
	}, nil
}

func (e *spriteTextElement) drawable() doodle.Drawable { return e.text }

func (e *spriteTextElement) load(ctx *loadContext) error {
	font, err := doodle.LoadSpriteFont(ctx.resolvePath(e.fontPath))
	if err != nil {
		return err
	}
	e.text.SetFont(font)

	content, err := ctx.format(e.content)
	if err != nil {
		return err
	}
	e.text.SetContent(content)
	return nil
}
