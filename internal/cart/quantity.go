package cart

import (
	"regexp"
	"strconv"
	"strings"
)

// Quantity is either a resolved numeric value or the raw text of an edit in
// progress. Keeping the raw form lets a text field be cleared mid-edit
// without the empty string being coerced to a number.
type Quantity struct {
	value   float64
	text    string
	editing bool
}

func Resolved(v float64) Quantity {
	return Quantity{value: v}
}

func (q Quantity) Editing() bool {
	return q.editing
}

// Text returns the display form of the quantity.
func (q Quantity) Text() string {
	if q.editing {
		return q.text
	}
	return strconv.FormatFloat(q.value, 'f', -1, 64)
}

// Value resolves the quantity to a number. An in-progress or unparseable
// edit resolves to zero so it contributes nothing to totals.
func (q Quantity) Value() float64 {
	if !q.editing {
		return q.value
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(q.text), 64)
	if err != nil {
		return 0
	}
	return v
}

var (
	decimalPattern = regexp.MustCompile(`^\d*\.?\d*$`)
	integerPattern = regexp.MustCompile(`^\d*$`)
)

// acceptText stores value as the in-progress text when it matches pattern.
// Rejected input leaves the quantity untouched.
func (q Quantity) acceptText(value string, pattern *regexp.Regexp) (Quantity, bool) {
	if !pattern.MatchString(value) {
		return q, false
	}
	return Quantity{text: value, editing: true}, true
}

// commit finishes an edit: the text is parsed, and anything unparseable or
// non-positive falls back to fallback.
func (q Quantity) commit(fallback float64) Quantity {
	if !q.editing {
		return q
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(q.text), 64)
	if err != nil || v <= 0 {
		v = fallback
	}
	return Quantity{value: v}
}
