package mealtrack

import (
	"database/sql"
	"fmt"

	"github.com/alexvk/mealtrack/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.GetProfile(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", p.Name)
			fmt.Fprintf(out, "Age: %d\n", p.Age)
			fmt.Fprintf(out, "Height: %.0f cm\n", p.HeightCm)
			fmt.Fprintf(out, "Gender: %s\n", p.Gender)
			fmt.Fprintf(out, "Activity: %s\n", p.ActivityLevel)
			return nil
		})
	},
}

var (
	profileName     string
	profileAge      int
	profileHeight   float64
	profileGender   string
	profileActivity string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.GetProfile(sqldb)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				p.Name = profileName
			}
			if cmd.Flags().Changed("age") {
				p.Age = profileAge
			}
			if cmd.Flags().Changed("height-cm") {
				p.HeightCm = profileHeight
			}
			if cmd.Flags().Changed("gender") {
				p.Gender = profileGender
			}
			if cmd.Flags().Changed("activity") {
				p.ActivityLevel = profileActivity
			}
			if err := service.SetProfile(sqldb, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile for %s\n", p.Name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileSetCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height-cm", 0, "Height in centimeters")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level")
}
