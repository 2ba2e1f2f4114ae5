package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/alexvk/mealtrack/internal/service"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, burn, and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseDateOrNow(todayDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			status, err := service.StatusForDay(sqldb, target)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", status.Date)
			fmt.Fprintf(out, "Calories: %.0f / %.0f kcal (%.0f remaining)\n", status.Calories.Current, status.Calories.Target, status.Calories.Remaining())
			fmt.Fprintf(out, "Protein: %.1f / %.1fg\n", status.Protein.Current, status.Protein.Target)
			fmt.Fprintf(out, "Carbs: %.1f / %.1fg\n", status.Carbs.Current, status.Carbs.Target)
			fmt.Fprintf(out, "Fat: %.1f / %.1fg\n", status.Fat.Current, status.Fat.Target)
			fmt.Fprintf(out, "Burned: %.0f kcal\n", status.Burned)
			fmt.Fprintf(out, "Net: %.0f kcal\n", status.Net)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
