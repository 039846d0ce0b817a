package markup

import (
	"fmt"
	"strconv"

	"github.com/aoki-marika/doodle"
	"github.com/beevik/etree"
)

// progressElement is a container that resizes on its progress axes
// according to a driving value resolved at load time.
//
// The computed ratio is assigned directly to the container's size, so it
// is interpreted the way a relative-size fraction would be when the
// matching relative-size-axes are set. The ratio is deliberately not
// clamped: values outside [0, max] propagate into the geometry as-is.
type progressElement struct {
	containerElement

	axes          doodle.Axes
	valueTemplate string
	max           float64
}

func newProgressElement(el *etree.Element) (*progressElement, error) {
	ce, err := newContainerElement(el)
	if err != nil {
		return nil, err
	}

	axes, _ := axesFromString(el.SelectAttrValue("progress-axes", ""))
	max, err := floatAttr(el, "max", 100)
	if err != nil {
		return nil, err
	}

	return &progressElement{
		containerElement: *ce,
		axes:             axes,
		valueTemplate:    el.SelectAttrValue("value", ""),
		max:              max,
	}, nil
}

func (p *progressElement) load(ctx *loadContext) error {
	if err := p.containerElement.load(ctx); err != nil {
		return err
	}

	raw, err := ctx.format(p.valueTemplate)
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return &ConfigError{Tag: "progress", Msg: fmt.Sprintf("invalid value %q", raw)}
	}

	ratio := value / p.max
	if p.axes.Has(doodle.AxesX) {
		p.container.Size.X = ratio
	}
	if p.axes.Has(doodle.AxesY) {
		p.container.Size.Y = ratio
	}

	return nil
}

var _ element = (*progressElement)(nil)
