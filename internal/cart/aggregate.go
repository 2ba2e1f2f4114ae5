package cart

// MacroTotals is a summed set of macros, either for one line or a whole cart.
type MacroTotals struct {
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

func (t *MacroTotals) add(other MacroTotals) {
	t.Calories += other.Calories
	t.ProteinG += other.ProteinG
	t.CarbsG += other.CarbsG
	t.FatG += other.FatG
}

// Macros computes the line's absolute macros from the catalog per-unit
// values. In gram mode the quantity is first expressed as a unit ratio.
func (l FoodLine) Macros() MacroTotals {
	qty := l.Qty.Value()
	ratio := qty
	if l.Mode == ModeGram {
		if l.Item.GramsPerUnit <= 0 {
			return MacroTotals{}
		}
		ratio = qty / l.Item.GramsPerUnit
	}
	return MacroTotals{
		Calories: l.Item.Calories * ratio,
		ProteinG: l.Item.ProteinG * ratio,
		CarbsG:   l.Item.CarbsG * ratio,
		FatG:     l.Item.FatG * ratio,
	}
}

// Totals sums every line's macros. An empty cart sums to zero.
func (c *FoodCart) Totals() MacroTotals {
	var total MacroTotals
	for _, id := range c.order {
		total.add(c.lines[id].Macros())
	}
	return total
}

// Burn computes the line's absolute calories burned.
func (l ExerciseLine) Burn() float64 {
	return l.Item.CaloriesPerMin * l.Qty.Value()
}

// TotalBurn sums every line's calories burned.
func (c *ExerciseCart) TotalBurn() float64 {
	var total float64
	for _, id := range c.order {
		total += c.lines[id].Burn()
	}
	return total
}
