package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/alexvk/mealtrack/internal/catalog"
	"github.com/alexvk/mealtrack/internal/model"
	"github.com/alexvk/mealtrack/internal/service"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Browse and extend the food catalog",
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and custom foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListFoods(sqldb)
			if err != nil {
				return err
			}
			printFoodTable(cmd, items)
			return nil
		})
	},
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search foods by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListFoods(sqldb)
			if err != nil {
				return err
			}
			printFoodTable(cmd, catalog.SearchFoods(items, args[0]))
			return nil
		})
	},
}

var (
	customFoodName     string
	customFoodUnit     string
	customFoodGrams    float64
	customFoodCalories float64
	customFoodProtein  float64
	customFoodCarbs    float64
	customFoodFat      float64
	customFoodImage    string
	customFoodAI       string
	customFoodModel    string
)

var foodCustomCmd = &cobra.Command{
	Use:   "custom",
	Short: "Create a custom food, optionally drafted by AI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			in := service.CustomFoodInput{
				Name:         customFoodName,
				Unit:         customFoodUnit,
				GramsPerUnit: customFoodGrams,
				Calories:     customFoodCalories,
				ProteinG:     customFoodProtein,
				CarbsG:       customFoodCarbs,
				FatG:         customFoodFat,
				Image:        customFoodImage,
			}
			if customFoodAI != "" {
				client, err := newGeminiClient(sqldb, customFoodModel)
				if err != nil {
					return err
				}
				draft, err := client.AutoFillFood(cmd.Context(), customFoodAI)
				if err != nil {
					return err
				}
				// Explicit flags win over the drafted values.
				if !cmd.Flags().Changed("name") {
					in.Name = draft.Name
				}
				if !cmd.Flags().Changed("unit") {
					in.Unit = draft.UnitName
				}
				if !cmd.Flags().Changed("grams-per-unit") {
					in.GramsPerUnit = draft.GramsPerUnit
				}
				if !cmd.Flags().Changed("calories") {
					in.Calories = draft.Calories
				}
				if !cmd.Flags().Changed("protein") {
					in.ProteinG = draft.ProteinG
				}
				if !cmd.Flags().Changed("carbs") {
					in.CarbsG = draft.CarbsG
				}
				if !cmd.Flags().Changed("fat") {
					in.FatG = draft.FatG
				}
			}
			item, err := service.CreateCustomFood(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added custom food %s (%s): %.0f kcal per %s (%.0fg)\n", item.Name, item.ID, item.Calories, item.Unit, item.GramsPerUnit)
			return nil
		})
	},
}

func printFoodTable(cmd *cobra.Command, items []model.CatalogFood) {
	fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL\tP\tC\tF\tUNIT\tG/UNIT")
	for _, f := range items {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\t%s\t%.0f\n", f.ID, f.Name, f.Calories, f.ProteinG, f.CarbsG, f.FatG, f.Unit, f.GramsPerUnit)
	}
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodListCmd, foodSearchCmd, foodCustomCmd)

	foodCustomCmd.Flags().StringVar(&customFoodName, "name", "", "Food name")
	foodCustomCmd.Flags().StringVar(&customFoodUnit, "unit", "", "Serving unit name (default \"1 serving\")")
	foodCustomCmd.Flags().Float64Var(&customFoodGrams, "grams-per-unit", 0, "Grams per serving (default 100)")
	foodCustomCmd.Flags().Float64Var(&customFoodCalories, "calories", 0, "Calories per serving")
	foodCustomCmd.Flags().Float64Var(&customFoodProtein, "protein", 0, "Protein grams per serving")
	foodCustomCmd.Flags().Float64Var(&customFoodCarbs, "carbs", 0, "Carbs grams per serving")
	foodCustomCmd.Flags().Float64Var(&customFoodFat, "fat", 0, "Fat grams per serving")
	foodCustomCmd.Flags().StringVar(&customFoodImage, "image", "", "Optional image URL")
	foodCustomCmd.Flags().StringVar(&customFoodAI, "ai", "", "Draft the food from a free-text description via Gemini")
	foodCustomCmd.Flags().StringVar(&customFoodModel, "model", "", "Gemini model override")
}
