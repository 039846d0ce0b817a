package markup

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aoki-marika/doodle"
	"github.com/beevik/etree"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// LoadFile reads a markup document from a file and returns the fully
// resolved root container. Relative resource paths inside the document
// are resolved against the file's directory. values supplies the
// template context: a map formats placeholders by key, any other value
// substitutes as-is.
func LoadFile(path string, values any) (*doodle.Container, error) {
	doc := newDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, &doodle.ResourceError{Path: path, Err: err}
	}
	return load(doc, filepath.Dir(path), values)
}

// Load reads a markup document from r. Relative resource paths inside
// the document are resolved against dir.
func Load(r io.Reader, dir string, values any) (*doodle.Container, error) {
	doc := newDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	return load(doc, dir, values)
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	return doc
}

// charsetReader decodes non-UTF-8 documents using the encoding named in
// the XML declaration.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

// load runs the two loader phases on a parsed document: construct the
// drawable tree from static attributes, then resolve everything
// context-dependent.
func load(doc *etree.Document, dir string, values any) (*doodle.Container, error) {
	root := doc.Root()
	if root == nil || root.Tag != "drawing" {
		return nil, &ConfigError{Tag: "drawing", Msg: "documents must have a root <drawing> node"}
	}
	if root.SelectAttr("width") == nil || root.SelectAttr("height") == nil {
		return nil, &ConfigError{Tag: "drawing", Msg: "the root <drawing> node must specify width and height"}
	}

	rootElement, err := newContainerElement(root)
	if err != nil {
		return nil, err
	}

	ctx := &loadContext{dir: dir, values: values}
	if err := rootElement.load(ctx); err != nil {
		return nil, err
	}

	doodle.Logger().Debug("loaded markup document",
		slog.String("dir", dir),
		slog.Int("children", len(rootElement.container.Children())))

	return rootElement.container, nil
}
