package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/alexvk/mealtrack/internal/service"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight and BMI",
}

var (
	weightKg   float64
	weightDate string
	weightTime string
)

var weightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a weight measurement",
	RunE: func(cmd *cobra.Command, args []string) error {
		measured, err := parseDateTimeOrNow(weightDate, weightTime)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddWeight(sqldb, weightKg, measured)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f kg (record %d)\n", weightKg, id)
			return nil
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show weight history and current BMI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			history, err := service.WeightHistory(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(history) == 0 {
				fmt.Fprintln(out, "No weight records")
				return nil
			}
			fmt.Fprintln(out, "DATE\tKG")
			for _, r := range history {
				fmt.Fprintf(out, "%s\t%.1f\n", r.MeasuredAt.Local().Format("2006-01-02 15:04"), r.WeightKg)
			}
			summary, err := service.SummarizeWeight(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nCurrent: %.1f kg (change %+.1f kg since %.1f kg)\n", summary.CurrentKg, summary.ChangeKg, summary.StartKg)
			if summary.BMI > 0 {
				fmt.Fprintf(out, "BMI: %.1f (%s)\n", summary.BMI, summary.BMICategory)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd, weightListCmd)

	weightAddCmd.Flags().Float64Var(&weightKg, "kg", 0, "Weight in kilograms")
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Date in YYYY-MM-DD")
	weightAddCmd.Flags().StringVar(&weightTime, "time", "", "Time in HH:MM")
	_ = weightAddCmd.MarkFlagRequired("kg")
}
