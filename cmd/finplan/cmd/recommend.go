package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sachacalipel7-cmyk/FinAdvisor/advisor"
	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
	"github.com/sachacalipel7-cmyk/FinAdvisor/planner"
	"github.com/sachacalipel7-cmyk/FinAdvisor/store"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Compute an investment recommendation",
	Long: `Compute a recommendation from the current records and profile: risk
profile, emergency fund target, target allocation, instrument shortlist
and advice.

With --from the records are read from a YAML or JSON snapshot file
instead of the database.

Examples:
  finplan recommend
  finplan recommend --save
  finplan recommend --from household.yaml --json`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

var (
	recommendSave bool
	recommendFrom string
	recommendJSON bool
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().BoolVar(&recommendSave, "save", false, "append the recommendation to the history")
	recommendCmd.Flags().StringVar(&recommendFrom, "from", "", "read records from a snapshot file")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "print the recommendation as JSON")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	var (
		rec     advisor.Recommendation
		m       finance.Metrics
		savedID string
		err     error
	)
	if recommendSave && recommendFrom != "" {
		return fmt.Errorf("--save cannot be combined with --from")
	}

	if recommendFrom != "" {
		snap, lerr := finance.LoadSnapshot(recommendFrom)
		if lerr != nil {
			return fmt.Errorf("load snapshot: %w", lerr)
		}
		rec, m, err = planner.New(nil, log).RecommendSnapshot(*snap)
	} else {
		svc, done, oerr := openService()
		if oerr != nil {
			return oerr
		}
		defer done()

		if recommendSave {
			var e store.HistoryEntry
			e, m, err = svc.SaveRecommendation(cmd.Context(), cfg.User.ID, time.Now())
			if err != nil && !errors.Is(err, advisor.ErrIncompleteProfile) {
				return fmt.Errorf("save recommendation: %w", err)
			}
			rec, savedID = e.Recommendation, e.ID
		} else {
			rec, m, err = svc.Recommend(cmd.Context(), cfg.User.ID)
		}
	}
	if errors.Is(err, advisor.ErrIncompleteProfile) {
		return fmt.Errorf("%w\nRun: finplan profile set --risk <tolerance> --horizon <horizon>", err)
	}
	if err != nil {
		return err
	}

	if recommendJSON {
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("encode recommendation: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printMetrics(cmd, m)
	fmt.Fprintln(cmd.OutOrStdout())
	printRecommendation(cmd, rec)
	if savedID != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Saved to history as %s\n", savedID)
	}
	return nil
}

func printRecommendation(cmd *cobra.Command, rec advisor.Recommendation) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Risk profile: %s (%s, %s)\n", rec.RiskProfile.Label(), rec.RiskTolerance.Label(), rec.InvestmentHorizon.Label())
	fmt.Fprintf(out, "Emergency fund: %s (%d months of expenses)\n", rec.EmergencyFund.Display(), rec.EmergencyMonths)

	fmt.Fprintln(out, "\nTarget allocation:")
	for _, s := range rec.Allocation {
		fmt.Fprintf(out, "  %-20s %3d %%\n", s.Class.Label(), s.Percent)
	}

	fmt.Fprintln(out, "\nSuggested instruments:")
	for _, inv := range rec.Investments {
		fmt.Fprintf(out, "  - %s (%s, %s, %s)\n", inv.Name, inv.Type, inv.ExpectedRate, inv.Risk.Label())
	}

	fmt.Fprintln(out, "\nAdvice:")
	for _, a := range rec.Advice {
		fmt.Fprintf(out, "  - %s\n", a)
	}
}
