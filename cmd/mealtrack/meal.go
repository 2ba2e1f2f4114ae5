package mealtrack

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexvk/mealtrack/internal/cart"
	"github.com/alexvk/mealtrack/internal/service"
	"github.com/spf13/cobra"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log meals from the food catalog",
}

var (
	mealAddItems []string
	mealAddType  string
	mealAddDate  string
	mealAddTime  string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Build a meal cart and confirm it",
	Long:  "Build a cart from repeatable --item flags (name[:qty[:g|u]]), then confirm it as immutable meal records applied to the day's totals in one batch.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(mealAddItems) == 0 {
			return fmt.Errorf("at least one --item is required")
		}
		when, err := parseDateTimeOrNow(mealAddDate, mealAddTime)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			c := cart.NewFoodCart()
			for _, spec := range mealAddItems {
				if err := applyFoodItemSpec(sqldb, c, spec); err != nil {
					return err
				}
			}
			records, err := service.ConfirmMealCart(sqldb, c, mealAddType, when)
			if err != nil {
				return err
			}
			var batch cart.MacroTotals
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %.0f kcal (P %.1f / C %.1f / F %.1f)\n", r.Name, r.Calories, r.ProteinG, r.CarbsG, r.FatG)
				batch.Calories += r.Calories
				batch.ProteinG += r.ProteinG
				batch.CarbsG += r.CarbsG
				batch.FatG += r.FatG
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s total: %.0f kcal (P %.1f / C %.1f / F %.1f)\n", records[0].MealType, batch.Calories, batch.ProteinG, batch.CarbsG, batch.FatG)
			return nil
		})
	},
}

// applyFoodItemSpec parses "name[:qty[:g|u]]" and merges it into the cart.
// The quantity is read in the requested mode; a blank quantity falls back to
// the mode default (1 unit or 10 g), and re-adding the same food increments
// the existing line instead of duplicating it.
func applyFoodItemSpec(sqldb *sql.DB, c *cart.FoodCart, spec string) error {
	parts := strings.SplitN(spec, ":", 3)
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return fmt.Errorf("empty food name in --item %q", spec)
	}
	item, err := service.FindFood(sqldb, name)
	if err != nil {
		return err
	}
	c.Add(item)
	if len(parts) == 3 {
		switch strings.ToLower(strings.TrimSpace(parts[2])) {
		case "g", "gram", "grams":
			if line, ok := c.Line(item.ID); ok && line.Mode == cart.ModeUnit {
				c.ToggleMode(item.ID)
			}
		case "", "u", "unit", "units":
		default:
			return fmt.Errorf("invalid mode %q in --item %q (use g or u)", parts[2], spec)
		}
	}
	if len(parts) >= 2 {
		qty := strings.TrimSpace(parts[1])
		if !c.SetQuantityText(item.ID, qty) {
			return fmt.Errorf("invalid quantity %q in --item %q", qty, spec)
		}
		c.CommitQuantity(item.ID)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd)

	mealAddCmd.Flags().StringArrayVar(&mealAddItems, "item", nil, "Food as name[:qty[:g|u]]; repeatable")
	mealAddCmd.Flags().StringVar(&mealAddType, "type", "", "Meal type: Breakfast, Lunch, Dinner, or Snack (default by hour)")
	mealAddCmd.Flags().StringVar(&mealAddDate, "date", "", "Date in YYYY-MM-DD")
	mealAddCmd.Flags().StringVar(&mealAddTime, "time", "", "Time in HH:MM")
}
