// Package doodle provides a retained-mode 2D scene graph that renders
// into static images.
//
// # Overview
//
// doodle builds a tree of drawables (boxes, textures, text, containers)
// whose geometry is expressed relative to their parents through anchors,
// origins, margins and padding. Rendering the root of a tree composites
// the whole hierarchy into a single RGBA pixel buffer.
//
// # Quick Start
//
//	import "github.com/aoki-marika/doodle"
//
//	root := doodle.NewContainer()
//	root.Size = doodle.Vec2{X: 400, Y: 400}
//
//	box := doodle.NewBox()
//	box.RelativeSizeAxes = doodle.AxesBoth
//	box.Size = doodle.Vec2{X: 1, Y: 1}
//	root.Add(box)
//
//	pm, err := root.Render()
//	if err != nil {
//	    // handle error
//	}
//	_ = pm.SavePNG("out.png")
//
// # Markup
//
// The markup subpackage loads a scene graph from an XML description and
// resolves templated values, file paths and dynamic constructs against a
// caller-supplied context.
//
// # Architecture
//
// The library is organized into:
//   - Scene graph: Drawable, Container, Box, Texture, Text, SpriteText
//   - Geometry: pure anchor/origin/margin resolution, recomputed per query
//   - Compositing: Pixmap buffers with straight-alpha over blending
//   - Gradients: linear multi-stop fills with midpoint skew
package doodle
