package markup

import "fmt"

// ConfigError is returned when a document is structurally invalid: a
// missing required attribute, an unknown tag, or a malformed value for a
// required attribute.
type ConfigError struct {
	// Tag is the markup tag the error occurred on.
	Tag string
	// Msg describes the problem.
	Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("markup: <%s>: %s", e.Tag, e.Msg)
}
