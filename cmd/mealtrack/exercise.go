package mealtrack

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexvk/mealtrack/internal/cart"
	"github.com/alexvk/mealtrack/internal/catalog"
	"github.com/alexvk/mealtrack/internal/service"
	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Browse exercises and log workouts",
}

var (
	exerciseListCategory string
	exerciseListQuery    string
)

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and custom exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListExercises(sqldb)
			if err != nil {
				return err
			}
			items = catalog.FilterExercises(items, exerciseListCategory, exerciseListQuery)
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL/MIN\tCATEGORY")
			for _, e := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.1f\t%s\n", e.ID, e.Name, e.CaloriesPerMin, e.Category)
			}
			return nil
		})
	},
}

var (
	customExerciseName  string
	customExerciseBurn  float64
	customExerciseCat   string
	customExerciseImage string
	customExerciseAI    string
	customExerciseModel string
)

var exerciseCustomCmd = &cobra.Command{
	Use:   "custom",
	Short: "Create a custom exercise, optionally drafted by AI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			in := service.CustomExerciseInput{
				Name:           customExerciseName,
				CaloriesPerMin: customExerciseBurn,
				Category:       customExerciseCat,
				Image:          customExerciseImage,
			}
			if customExerciseAI != "" {
				client, err := newGeminiClient(sqldb, customExerciseModel)
				if err != nil {
					return err
				}
				draft, err := client.AutoFillExercise(cmd.Context(), customExerciseAI)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("name") {
					in.Name = draft.Name
				}
				if !cmd.Flags().Changed("calories-per-min") {
					in.CaloriesPerMin = draft.CaloriesPerMin
				}
			}
			item, err := service.CreateCustomExercise(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added custom exercise %s (%s): %.1f kcal/min, %s\n", item.Name, item.ID, item.CaloriesPerMin, item.Category)
			return nil
		})
	},
}

var (
	exerciseAddItems []string
	exerciseAddDate  string
	exerciseAddTime  string
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout from one or more exercises",
	Long:  "Build a workout from repeatable --item flags (name[:minutes], default 30 minutes), then confirm it as immutable activity records.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(exerciseAddItems) == 0 {
			return fmt.Errorf("at least one --item is required")
		}
		when, err := parseDateTimeOrNow(exerciseAddDate, exerciseAddTime)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			c := cart.NewExerciseCart()
			for _, spec := range exerciseAddItems {
				if err := applyExerciseItemSpec(sqldb, c, spec); err != nil {
					return err
				}
			}
			records, err := service.ConfirmExerciseCart(sqldb, c, when)
			if err != nil {
				return err
			}
			var total float64
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %.0f min, %.0f kcal burned\n", r.Name, r.DurationMin, r.CaloriesBurned)
				total += r.CaloriesBurned
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total burned: %.0f kcal\n", total)
			return nil
		})
	},
}

// applyExerciseItemSpec parses "name[:minutes]" and merges it into the cart.
// Minutes are whole numbers; omitted or blank minutes keep the 30 minute
// default, and re-adding the same exercise extends it by 15 minutes.
func applyExerciseItemSpec(sqldb *sql.DB, c *cart.ExerciseCart, spec string) error {
	parts := strings.SplitN(spec, ":", 2)
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return fmt.Errorf("empty exercise name in --item %q", spec)
	}
	item, err := service.FindExercise(sqldb, name)
	if err != nil {
		return err
	}
	c.Add(item)
	if len(parts) == 2 {
		minutes := strings.TrimSpace(parts[1])
		if !c.SetDurationText(item.ID, minutes) {
			return fmt.Errorf("invalid minutes %q in --item %q (whole minutes only)", minutes, spec)
		}
		c.CommitDuration(item.ID)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseListCmd, exerciseCustomCmd, exerciseAddCmd)

	exerciseListCmd.Flags().StringVar(&exerciseListCategory, "category", "", "Filter by category: Cardio, Strength, Flexibility, or Sports")
	exerciseListCmd.Flags().StringVar(&exerciseListQuery, "query", "", "Filter by name substring")

	exerciseCustomCmd.Flags().StringVar(&customExerciseName, "name", "", "Exercise name")
	exerciseCustomCmd.Flags().Float64Var(&customExerciseBurn, "calories-per-min", 0, "Calories burned per minute (default 5)")
	exerciseCustomCmd.Flags().StringVar(&customExerciseCat, "category", "", "Category (default Cardio)")
	exerciseCustomCmd.Flags().StringVar(&customExerciseImage, "image", "", "Optional image URL")
	exerciseCustomCmd.Flags().StringVar(&customExerciseAI, "ai", "", "Draft the exercise from a free-text description via Gemini")
	exerciseCustomCmd.Flags().StringVar(&customExerciseModel, "model", "", "Gemini model override")

	exerciseAddCmd.Flags().StringArrayVar(&exerciseAddItems, "item", nil, "Exercise as name[:minutes]; repeatable")
	exerciseAddCmd.Flags().StringVar(&exerciseAddDate, "date", "", "Date in YYYY-MM-DD")
	exerciseAddCmd.Flags().StringVar(&exerciseAddTime, "time", "", "Time in HH:MM")
}
