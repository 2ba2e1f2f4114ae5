package mealtrack

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexvk/mealtrack/internal/service"
	"github.com/spf13/cobra"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "View calorie and macro trends over a range",
}

var (
	analyticsJSON bool
	rangeFrom     string
	rangeTo       string
)

var analyticsRangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Range trend analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if rangeFrom == "" || rangeTo == "" {
			return fmt.Errorf("--from and --to are required")
		}
		from, err := time.ParseInLocation("2006-01-02", rangeFrom, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --from date (expected YYYY-MM-DD)")
		}
		to, err := time.ParseInLocation("2006-01-02", rangeTo, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --to date (expected YYYY-MM-DD)")
		}
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.AnalyticsRange(sqldb, from, to)
			if err != nil {
				return err
			}
			if analyticsJSON {
				b, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal analytics json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			printAnalyticsTable(cmd, report)
			return nil
		})
	},
}

func printAnalyticsTable(cmd *cobra.Command, r *service.AnalyticsReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Range: %s to %s\n", r.FromDate, r.ToDate)
	fmt.Fprintf(out, "Totals: intake=%.0f burned=%.0f P=%.1f C=%.1f F=%.1f\n", r.TotalCalories, r.TotalBurned, r.TotalProteinG, r.TotalCarbsG, r.TotalFatG)
	fmt.Fprintf(out, "Averages/day: intake=%.1f burned=%.1f over %d recorded day(s)\n", r.AverageCaloriesPerDay, r.AverageBurnedPerDay, r.DaysWithRecords)
	if r.HighestDay != nil && r.LowestDay != nil {
		fmt.Fprintf(out, "Highest day: %s (%.0f kcal)\n", r.HighestDay.Date, r.HighestDay.Calories)
		fmt.Fprintf(out, "Lowest day: %s (%.0f kcal)\n", r.LowestDay.Date, r.LowestDay.Calories)
	}
	fmt.Fprintf(out, "Macro energy split: P %.1f%%, C %.1f%%, F %.1f%%\n", r.Split.ProteinPct, r.Split.CarbsPct, r.Split.FatPct)

	if len(r.Days) == 0 {
		return
	}
	fmt.Fprintln(out, "\nDATE\tKCAL\tP\tC\tF\tBURNED\tNET")
	for _, d := range r.Days {
		fmt.Fprintf(out, "%s\t%.0f\t%.1f\t%.1f\t%.1f\t%.0f\t%.0f\n", d.Date, d.Calories, d.ProteinG, d.CarbsG, d.FatG, d.Burned, d.Net)
	}
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
	analyticsCmd.AddCommand(analyticsRangeCmd)

	analyticsRangeCmd.Flags().BoolVar(&analyticsJSON, "json", false, "Output as JSON")
	analyticsRangeCmd.Flags().StringVar(&rangeFrom, "from", "", "Start date YYYY-MM-DD")
	analyticsRangeCmd.Flags().StringVar(&rangeTo, "to", "", "End date YYYY-MM-DD")
}
