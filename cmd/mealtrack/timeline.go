package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/alexvk/mealtrack/internal/service"
	"github.com/spf13/cobra"
)

var timelineDate string

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the day's merged meal and workout timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseDateOrNow(timelineDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.TimelineForDay(sqldb, target)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No records for this day")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "TIME\tKIND\tNAME\tKCAL\tDETAIL")
			for _, item := range items {
				detail := item.Type
				if item.Kind == "exercise" {
					detail = fmt.Sprintf("%s, %.0f min", item.Type, item.DurationMin)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.0f\t%s\n", item.Time, item.Kind, item.Name, item.Calories, detail)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(timelineCmd)
	timelineCmd.Flags().StringVar(&timelineDate, "date", "", "Date YYYY-MM-DD (default today)")
}
