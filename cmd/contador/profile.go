package contador

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catapou/contador/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage body metrics used for the calorie recommendation",
}

var (
	profileDOB      string
	profileWeight   string
	profileHeight   string
	profileActivity string
	profileGender   string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set date of birth, weight, height, activity level and gender",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := service.ProfileForm{
			DOB:           profileDOB,
			Weight:        profileWeight,
			Height:        profileHeight,
			ActivityLevel: profileActivity,
			Gender:        profileGender,
		}
		return withTracker(cmd, "", func(ctx context.Context, tr *service.Tracker) error {
			info, err := tr.SubmitProfile(ctx, form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile (%s, %s kg, %s cm, %s)\n", info.Gender, info.Weight, info.Height, info.ActivityLevel)
			if kcal, ok := tr.Recommended(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Recommended calories: %d Kcal\n", kcal)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Set a weight goal to get a calorie recommendation")
			}
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile and derived metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, "", func(ctx context.Context, tr *service.Tracker) error {
			out := cmd.OutOrStdout()
			if tr.NeedsOnboarding() {
				fmt.Fprintln(out, "Profile not set (run `contador profile set`)")
				return nil
			}
			info := tr.Profile()
			m := tr.Metrics()
			fmt.Fprintf(out, "Date of birth: %s (age %d)\n", info.DOB, m.AgeYears)
			fmt.Fprintf(out, "Weight: %s kg\nHeight: %s cm\n", info.Weight, info.Height)
			fmt.Fprintf(out, "Activity level: %s\nGender: %s\n", info.ActivityLevel, info.Gender)
			if bmi, ok := tr.BMI(); ok {
				fmt.Fprintf(out, "BMI: %.1f (%s)\n", bmi.Value, bmi.Class)
			}
			if m.Complete() {
				bmr := service.BMR(m.WeightKg, m.HeightCm, m.AgeYears, m.Gender)
				fmt.Fprintf(out, "BMR: %.0f Kcal\nTDEE: %d Kcal\n", bmr, service.TDEE(bmr, m.ActivityLevel))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileDOB, "dob", "", "Date of birth DD/MM/YYYY")
	profileSetCmd.Flags().StringVar(&profileWeight, "weight", "", "Weight in kg")
	profileSetCmd.Flags().StringVar(&profileHeight, "height", "", "Height in cm")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level: sedentary, lightly-active, moderately-active, very-active, extra-active (default sedentary)")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender: man or woman")
	_ = profileSetCmd.MarkFlagRequired("dob")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("gender")
}
