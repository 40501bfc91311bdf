package notion

import (
	"strconv"
	"strings"
)

// QueryFilter is the typed filter object the query endpoint accepts.
// Exactly one condition field is set.
type QueryFilter struct {
	Property string          `json:"property"`
	Title    *ContainsFilter `json:"title,omitempty"`
	RichText *ContainsFilter `json:"rich_text,omitempty"`
	Select   *EqualsFilter   `json:"select,omitempty"`
	Checkbox *BoolEquals     `json:"checkbox,omitempty"`
	Number   *NumberEquals   `json:"number,omitempty"`
}

// ContainsFilter matches values containing a substring.
type ContainsFilter struct {
	Contains string `json:"contains"`
}

// EqualsFilter matches values equal to a string.
type EqualsFilter struct {
	Equals string `json:"equals"`
}

// BoolEquals matches a checkbox state.
type BoolEquals struct {
	Equals bool `json:"equals"`
}

// NumberEquals matches a number value.
type NumberEquals struct {
	Equals float64 `json:"equals"`
}

// ParseFilter compiles the CLI filter shorthand "Prop[:type]=value" into the
// API's filter object. Recognized types are title, select, checkbox, and
// number; anything else (including no type at all) becomes a rich_text
// contains match. The parsing is deliberately lenient: a string without '='
// yields no filter, a checkbox value other than "true" (any casing) means
// false, and an unparseable number falls back to 0 rather than erroring.
func ParseFilter(s string) *QueryFilter {
	propPart, value, found := strings.Cut(s, "=")
	if !found {
		return nil
	}
	value = strings.TrimSpace(value)

	prop, filterType := propPart, ""
	if p, t, ok := strings.Cut(propPart, ":"); ok {
		prop, filterType = p, t
	}
	prop = strings.TrimSpace(prop)
	filterType = strings.TrimSpace(filterType)

	filter := &QueryFilter{Property: prop}
	switch filterType {
	case "title":
		filter.Title = &ContainsFilter{Contains: value}
	case "select":
		filter.Select = &EqualsFilter{Equals: value}
	case "checkbox":
		filter.Checkbox = &BoolEquals{Equals: strings.EqualFold(value, "true")}
	case "number":
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			n = 0
		}
		filter.Number = &NumberEquals{Equals: n}
	default:
		filter.RichText = &ContainsFilter{Contains: value}
	}

	return filter
}
