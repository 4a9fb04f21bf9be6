package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the risk profile questionnaire",
	Long: `The profile holds the questionnaire answers the recommendation is
based on. Risk tolerance and investment horizon are both required before
a recommendation can be computed.

Risk tolerance: conservative, moderate, aggressive.
Horizon: short (< 3 years), medium (3 - 7 years), long (> 7 years).

Examples:
  finplan profile set --risk moderate --horizon long
  finplan profile set --name "Camille Martin" --age 34 --income 2800
  finplan profile show`,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile answers; flags left out keep their value",
	Args:  cobra.NoArgs,
	RunE:  runProfileSet,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileShow,
}

var (
	profileName    string
	profileAge     int
	profileIncome  string
	profileRisk    string
	profileHorizon string
	profileGoals   string
)

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)

	f := profileSetCmd.Flags()
	f.StringVar(&profileName, "name", "", "full name")
	f.IntVar(&profileAge, "age", 0, "age in years")
	f.StringVar(&profileIncome, "income", "", "self reported monthly income in euros")
	f.StringVar(&profileRisk, "risk", "", "risk tolerance")
	f.StringVar(&profileHorizon, "horizon", "", "investment horizon")
	f.StringVar(&profileGoals, "goals", "", "life goals, free text")
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()

	r, err := svc.Metrics(cmd.Context(), cfg.User.ID)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	p := finance.Profile{UserID: cfg.User.ID}
	if r.Snapshot.Profile != nil {
		p = *r.Snapshot.Profile
	}

	changed := cmd.Flags().Changed
	if changed("name") {
		p.FullName = profileName
	}
	if changed("age") {
		p.Age = profileAge
	}
	if changed("income") {
		if p.MonthlyIncome, err = finance.ParseAmount(profileIncome); err != nil {
			return err
		}
	}
	if changed("risk") {
		if p.RiskTolerance, err = finance.ParseRiskTolerance(profileRisk); err != nil {
			return err
		}
	}
	if changed("horizon") {
		if p.InvestmentHorizon, err = finance.ParseHorizon(profileHorizon); err != nil {
			return err
		}
	}
	if changed("goals") {
		p.LifeGoals = profileGoals
	}

	p.UpdatedAt = time.Now()
	p, err = svc.UpdateProfile(cmd.Context(), p)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Profile saved")
	printProfile(cmd, p)
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()

	r, err := svc.Metrics(cmd.Context(), cfg.User.ID)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if r.Snapshot.Profile == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "No profile for %s yet. Run: finplan profile set --risk <tolerance> --horizon <horizon>\n", cfg.User.ID)
		return nil
	}
	printProfile(cmd, *r.Snapshot.Profile)
	return nil
}

func printProfile(cmd *cobra.Command, p finance.Profile) {
	orUnset := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  User:\t%s\n", p.UserID)
	fmt.Fprintf(w, "  Name:\t%s\n", orUnset(p.FullName))
	if p.Age > 0 {
		fmt.Fprintf(w, "  Age:\t%d\n", p.Age)
	}
	fmt.Fprintf(w, "  Monthly income:\t%s\n", p.MonthlyIncome.Display())
	fmt.Fprintf(w, "  Risk tolerance:\t%s\n", orUnset(p.RiskTolerance.Label()))
	fmt.Fprintf(w, "  Horizon:\t%s\n", orUnset(p.InvestmentHorizon.Label()))
	fmt.Fprintf(w, "  Goals:\t%s\n", orUnset(p.LifeGoals))
	w.Flush()

	if !p.Complete() {
		fmt.Fprintln(cmd.OutOrStdout(), "\nProfile incomplete: set --risk and --horizon to get a recommendation.")
	}
}
