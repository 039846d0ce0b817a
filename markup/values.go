package markup

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/valyala/fasttemplate"
)

// loadContext carries the context-dependent state of the load phase: the
// document's base directory for resolving relative paths, and the
// caller's values for template formatting.
type loadContext struct {
	dir    string
	values any
}

// format interpolates {name} placeholders in s against the context
// values. A map looks placeholders up by key; any other value is
// substituted as-is for every placeholder.
func (c *loadContext) format(s string) (string, error) {
	return fasttemplate.ExecuteFuncStringWithErr(s, "{", "}", func(w io.Writer, tag string) (int, error) {
		switch values := c.values.(type) {
		case map[string]string:
			v, ok := values[tag]
			if !ok {
				return 0, fmt.Errorf("markup: unknown template key %q", tag)
			}
			return io.WriteString(w, v)
		case map[string]any:
			v, ok := values[tag]
			if !ok {
				return 0, fmt.Errorf("markup: unknown template key %q", tag)
			}
			return fmt.Fprint(w, v)
		default:
			return fmt.Fprint(w, c.values)
		}
	})
}

// resolvePath joins a document-relative path with the base directory.
// Absolute paths pass through untouched.
func (c *loadContext) resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.dir, path)
}
