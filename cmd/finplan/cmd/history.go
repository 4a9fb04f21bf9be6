package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sachacalipel7-cmyk/FinAdvisor/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved recommendations, most recent first",
	Long: `Display the append-only recommendation history.

Examples:
  finplan history
  finplan history --limit 20 --org > history.org
  finplan history --limit 0 --csv > history.csv`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var (
	historyLimit int
	historyCSV   bool
	historyOrg   bool
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "number of entries, 0 for all (default from config)")
	historyCmd.Flags().BoolVar(&historyCSV, "csv", false, "write CSV")
	historyCmd.Flags().BoolVar(&historyOrg, "org", false, "write Org mode entries")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyCSV && historyOrg {
		return fmt.Errorf("--csv and --org are exclusive")
	}
	limit := historyLimit
	if !cmd.Flags().Changed("limit") {
		limit = cfg.Display.HistoryLimit
	}

	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()

	entries, err := svc.History(cmd.Context(), cfg.User.ID, limit)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case historyCSV:
		return store.WriteHistoryCSV(out, entries)
	case historyOrg:
		fmt.Fprint(out, store.FormatHistoryOrgList(entries))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No saved recommendation yet. Run: finplan recommend --save")
		return nil
	}
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s  %s  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.ID, e.Recommendation.RiskProfile.Label())
		for _, line := range strings.Split(e.Text, "\n") {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
	return nil
}
