// Package markup loads doodle scene graphs from XML documents.
//
// A document is a <drawing> root with required width and height, holding
// nested drawable tags:
//
//	<drawing width="400" height="400">
//	    <box relative-size-axes="both" size="1" colour="#ffffff"/>
//	    <text font="fonts/body.ttf" font-size="24">hi, {name}!</text>
//	</drawing>
//
// Loading happens in two phases. Construction builds the drawable tree
// from static attributes only; loading then resolves everything that
// depends on context: template strings are formatted against the
// caller's values, relative file paths are joined with the document's
// directory and decoded, and the switch and progress constructs react to
// their driving values. Structural problems surface as *ConfigError and
// missing or malformed files as *doodle.ResourceError; no partially
// usable tree is ever returned.
package markup
