package markup

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// switchOption is one case of a switch: an operator, the comparison
// values it matches, and the wrapped child markup to instantiate when it
// does.
type switchOption struct {
	operator string
	values   []string
	childEl  *etree.Element

	// index is the option's position among the switch's non-option
	// children, so the resolved child keeps the paint order the option
	// held in the document.
	index int
}

// switchElement is a container that instantiates at most one of its
// options depending on a driving value resolved at load time.
type switchElement struct {
	containerElement

	valueTemplate string
	options       []*switchOption
}

func newSwitchElement(el *etree.Element) (*switchElement, error) {
	ce, err := newContainerElement(el)
	if err != nil {
		return nil, err
	}

	s := &switchElement{
		containerElement: *ce,
		valueTemplate:    el.SelectAttrValue("value", ""),
	}

	nonOption := 0
	for _, childEl := range el.ChildElements() {
		if childEl.Tag != "option" {
			nonOption++
			continue
		}

		wrapped := childEl.ChildElements()
		if len(wrapped) != 1 {
			return nil, &ConfigError{Tag: "option", Msg: "options must wrap exactly one element"}
		}
		rawValues := childEl.SelectAttrValue("value", "")
		if rawValues == "" {
			return nil, &ConfigError{Tag: "option", Msg: "missing required attribute value"}
		}

		operator := childEl.SelectAttrValue("operator", "==")
		if !validOperator(operator) {
			operator = "=="
		}

		s.options = append(s.options, &switchOption{
			operator: operator,
			values:   strings.Split(rawValues, ", "),
			childEl:  wrapped[0],
			index:    nonOption,
		})
	}

	return s, nil
}

// load resolves the driving value and activates the first option whose
// predicate holds for any of its comparison values. The wrapped child is
// constructed, inserted at the option's document position, and loaded.
// When no option matches the switch gains no child.
func (s *switchElement) load(ctx *loadContext) error {
	if err := s.containerElement.load(ctx); err != nil {
		return err
	}

	value, err := ctx.format(s.valueTemplate)
	if err != nil {
		return err
	}

	for _, option := range s.options {
		for _, comparison := range option.values {
			if !compareValues(option.operator, value, comparison) {
				continue
			}

			child, err := elementFrom(option.childEl)
			if err != nil {
				return err
			}
			s.container.AddAt(child.drawable(), option.index)
			return child.load(ctx)
		}
	}

	return nil
}

func validOperator(op string) bool {
	switch op {
	case "==", "!=", ">=", ">", "<=", "<":
		return true
	default:
		return false
	}
}

// compareValues applies an operator to the driving and comparison
// values. Both sides are coerced to numbers when both parse; otherwise
// the comparison is lexicographic.
func compareValues(op, a, b string) bool {
	af, aerr := strconv.ParseFloat(a, 64)
	bf, berr := strconv.ParseFloat(b, 64)
	if aerr == nil && berr == nil {
		switch op {
		case "==":
			return af == bf
		case "!=":
			return af != bf
		case ">=":
			return af >= bf
		case ">":
			return af > bf
		case "<=":
			return af <= bf
		case "<":
			return af < bf
		}
		return false
	}

	switch op {
	case "==":
		return a == b
	case "!=":
		return a != b
	case ">=":
		return a >= b
	case ">":
		return a > b
	case "<=":
		return a <= b
	case "<":
		return a < b
	}
	return false
}

var _ element = (*switchElement)(nil)
