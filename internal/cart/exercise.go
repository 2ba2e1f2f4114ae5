package cart

import (
	"math"

	"github.com/alexvk/mealtrack/internal/model"
)

const (
	durationStepFloor  = 5.0
	defaultDurationMin = 30.0
	durationIncrement  = 15.0
)

// ExerciseLine is one selected exercise with its pending duration in minutes.
type ExerciseLine struct {
	Item model.CatalogExercise
	Qty  Quantity
}

// ExerciseCart holds the exercises selected for one log-workout session,
// keyed by catalog id.
type ExerciseCart struct {
	order    []string
	lines    map[string]*ExerciseLine
	expanded bool
}

func NewExerciseCart() *ExerciseCart {
	return &ExerciseCart{lines: map[string]*ExerciseLine{}}
}

func (c *ExerciseCart) Len() int {
	return len(c.order)
}

func (c *ExerciseCart) Lines() []ExerciseLine {
	out := make([]ExerciseLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *ExerciseCart) Line(id string) (ExerciseLine, bool) {
	l, ok := c.lines[id]
	if !ok {
		return ExerciseLine{}, false
	}
	return *l, true
}

// Add inserts item at the default 30 minutes, or extends the existing line
// by 15 minutes.
func (c *ExerciseCart) Add(item model.CatalogExercise) {
	if l, ok := c.lines[item.ID]; ok {
		l.Qty = Resolved(l.Qty.Value() + durationIncrement)
		return
	}
	c.lines[item.ID] = &ExerciseLine{Item: item, Qty: Resolved(defaultDurationMin)}
	c.order = append(c.order, item.ID)
}

func (c *ExerciseCart) Remove(id string) {
	if _, ok := c.lines[id]; !ok {
		return
	}
	delete(c.lines, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	if len(c.order) == 0 {
		c.expanded = false
	}
}

// Step adjusts the duration by delta minutes, clamped to the 5 minute floor.
func (c *ExerciseCart) Step(id string, delta float64) {
	l, ok := c.lines[id]
	if !ok {
		return
	}
	l.Qty = Resolved(math.Max(durationStepFloor, l.Qty.Value()+delta))
}

// SetDurationText records free-text input while the field is being edited.
// Durations are whole minutes, so only digit strings are accepted.
func (c *ExerciseCart) SetDurationText(id, value string) bool {
	l, ok := c.lines[id]
	if !ok {
		return false
	}
	next, accepted := l.Qty.acceptText(value, integerPattern)
	l.Qty = next
	return accepted
}

// CommitDuration ends a text edit, substituting the 30 minute default when
// the text does not parse to a positive number.
func (c *ExerciseCart) CommitDuration(id string) {
	l, ok := c.lines[id]
	if !ok {
		return
	}
	l.Qty = l.Qty.commit(defaultDurationMin)
}

func (c *ExerciseCart) Expanded() bool {
	return c.expanded
}

func (c *ExerciseCart) SetExpanded(open bool) {
	if open && len(c.order) == 0 {
		return
	}
	c.expanded = open
}
