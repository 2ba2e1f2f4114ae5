package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/alexvk/mealtrack/internal/service"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Inspect raw log records",
}

var (
	logListDate string
	logListKind string
)

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the day's records with their ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseDateOrNow(logListDate)
		if err != nil {
			return err
		}
		if logListKind != "" && logListKind != "meal" && logListKind != "exercise" {
			return fmt.Errorf("invalid --kind %q (use meal or exercise)", logListKind)
		}
		return withDB(func(sqldb *sql.DB) error {
			out := cmd.OutOrStdout()
			if logListKind == "" || logListKind == "meal" {
				meals, err := service.ListMealRecords(sqldb, target)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "ID\tTIME\tTYPE\tNAME\tKCAL\tP\tC\tF")
				for _, r := range meals {
					fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n", r.ID, r.LoggedAt.Format("15:04"), r.MealType, r.Name, r.Calories, r.ProteinG, r.CarbsG, r.FatG)
				}
			}
			if logListKind == "" || logListKind == "exercise" {
				exercises, err := service.ListExerciseRecords(sqldb, target)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "ID\tTIME\tCATEGORY\tNAME\tKCAL\tMIN")
				for _, r := range exercises {
					fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%.0f\t%.0f\n", r.ID, r.LoggedAt.Format("15:04"), r.Category, r.Name, r.CaloriesBurned, r.DurationMin)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logListCmd)

	logListCmd.Flags().StringVar(&logListDate, "date", "", "Date YYYY-MM-DD (default today)")
	logListCmd.Flags().StringVar(&logListKind, "kind", "", "Record kind: meal or exercise (default both)")
}
