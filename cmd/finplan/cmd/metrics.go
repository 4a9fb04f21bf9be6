package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show monthly metrics and the expense breakdown",
	Long: `Aggregate the current records into balance, monthly income, monthly
expenses, monthly savings and savings rate. Figures are recomputed on
every call.`,
	Args: cobra.NoArgs,
	RunE: runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()

	r, err := svc.Metrics(cmd.Context(), cfg.User.ID)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	printMetrics(cmd, r.Metrics)
	if len(r.ByCategory) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\nMonthly expenses by category:")
		printBreakdown(cmd, r.ByCategory)
	}
	return nil
}

func printMetrics(cmd *cobra.Command, m finance.Metrics) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "Total balance\t%s\t\n", m.TotalBalance.Display())
	fmt.Fprintf(w, "Monthly income\t%s\t\n", m.MonthlyIncome.Display())
	fmt.Fprintf(w, "Monthly expenses\t%s\t\n", m.MonthlyExpenses.Display())
	fmt.Fprintf(w, "Monthly savings\t%s\t\n", m.MonthlySavings.Display())
	fmt.Fprintf(w, "Savings rate\t%.1f %%\t\n", m.SavingsRate())
	w.Flush()
}

func printBreakdown(cmd *cobra.Command, totals []finance.CategoryTotal) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, t := range totals {
		fmt.Fprintf(w, "  %s\t%s\n", t.Category, t.Total.Display())
	}
	w.Flush()
}
