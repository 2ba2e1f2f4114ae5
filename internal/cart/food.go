package cart

import (
	"math"

	"github.com/alexvk/mealtrack/internal/model"
)

// Quantity editing defaults per mode. The floors bound stepper adjustments;
// the defaults replace an abandoned or invalid text edit.
const (
	unitStepFloor = 0.5
	gramStepFloor = 1.0

	defaultUnitQty = 1.0
	defaultGramQty = 10.0

	unitAddIncrement = 1.0
	gramAddIncrement = 10.0
)

// FoodLine is one selected food with its pending quantity.
type FoodLine struct {
	Item model.CatalogFood
	Qty  Quantity
	Mode Mode
}

// FoodCart holds the foods selected for one add-meal session, keyed by
// catalog id so re-adding an item merges instead of duplicating.
type FoodCart struct {
	order    []string
	lines    map[string]*FoodLine
	expanded bool
}

func NewFoodCart() *FoodCart {
	return &FoodCart{lines: map[string]*FoodLine{}}
}

func (c *FoodCart) Len() int {
	return len(c.order)
}

// Lines returns the selections in insertion order.
func (c *FoodCart) Lines() []FoodLine {
	out := make([]FoodLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *FoodCart) Line(id string) (FoodLine, bool) {
	l, ok := c.lines[id]
	if !ok {
		return FoodLine{}, false
	}
	return *l, true
}

// Add inserts item with the default quantity of one unit, or increments the
// existing line in its current mode.
func (c *FoodCart) Add(item model.CatalogFood) {
	if l, ok := c.lines[item.ID]; ok {
		increment := unitAddIncrement
		if l.Mode == ModeGram {
			increment = gramAddIncrement
		}
		l.Qty = Resolved(l.Qty.Value() + increment)
		return
	}
	c.lines[item.ID] = &FoodLine{Item: item, Qty: Resolved(defaultUnitQty), Mode: ModeUnit}
	c.order = append(c.order, item.ID)
}

// Remove deletes the line. Emptying the cart collapses the expanded view.
func (c *FoodCart) Remove(id string) {
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

// ToggleMode re-expresses the line's quantity in the other mode.
func (c *FoodCart) ToggleMode(id string) {
	l, ok := c.lines[id]
	if !ok {
		return
	}
	if l.Mode == ModeUnit {
		l.Mode = ModeGram
		l.Qty = Resolved(ToGrams(l.Qty.Value(), l.Item.GramsPerUnit))
	} else {
		l.Mode = ModeUnit
		l.Qty = Resolved(ToUnits(l.Qty.Value(), l.Item.GramsPerUnit))
	}
}

// Step adjusts the quantity by delta, clamped to the mode floor and rounded
// to one decimal place.
func (c *FoodCart) Step(id string, delta float64) {
	l, ok := c.lines[id]
	if !ok {
		return
	}
	floor := unitStepFloor
	if l.Mode == ModeGram {
		floor = gramStepFloor
	}
	l.Qty = Resolved(round1(math.Max(floor, l.Qty.Value()+delta)))
}

// SetQuantityText records free-text input while the field is being edited.
// Anything that is not an unsigned decimal (including partial forms like
// "" or "12.") is rejected and the field keeps its previous content.
func (c *FoodCart) SetQuantityText(id, value string) bool {
	l, ok := c.lines[id]
	if !ok {
		return false
	}
	next, accepted := l.Qty.acceptText(value, decimalPattern)
	l.Qty = next
	return accepted
}

// CommitQuantity ends a text edit, substituting the mode default when the
// text does not parse to a positive number.
func (c *FoodCart) CommitQuantity(id string) {
	l, ok := c.lines[id]
	if !ok {
		return
	}
	fallback := defaultUnitQty
	if l.Mode == ModeGram {
		fallback = defaultGramQty
	}
	l.Qty = l.Qty.commit(fallback)
}

func (c *FoodCart) Expanded() bool {
	return c.expanded
}

func (c *FoodCart) SetExpanded(open bool) {
	if open && len(c.order) == 0 {
		return
	}
	c.expanded = open
}
