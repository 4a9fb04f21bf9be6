package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Manage income entries",
	Long: `Record, list and delete income entries. Only monthly entries count
toward monthly income.

Frequencies: monthly, quarterly, annual, one_time.

Examples:
  finplan income add --source Salaire --amount 2500
  finplan income add --source Prime --amount 1200 --frequency annual
  finplan income list`,
}

var incomeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new income entry",
	Args:  cobra.NoArgs,
	RunE:  runIncomeAdd,
}

var incomeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List income entries, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runIncomeList,
}

var incomeDeleteCmd = &cobra.Command{
	Use:   "delete <income-id>",
	Short: "Delete an income entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncomeDelete,
}

var (
	incomeSource    string
	incomeAmount    string
	incomeFrequency string
)

func init() {
	rootCmd.AddCommand(incomeCmd)
	incomeCmd.AddCommand(incomeAddCmd)
	incomeCmd.AddCommand(incomeListCmd)
	incomeCmd.AddCommand(incomeDeleteCmd)

	incomeAddCmd.Flags().StringVarP(&incomeSource, "source", "s", "", "income source (required)")
	incomeAddCmd.Flags().StringVarP(&incomeAmount, "amount", "a", "0", "amount in euros")
	incomeAddCmd.Flags().StringVarP(&incomeFrequency, "frequency", "f", string(finance.Monthly), "frequency")
	incomeAddCmd.MarkFlagRequired("source")
}

func runIncomeAdd(cmd *cobra.Command, args []string) error {
	f, err := finance.ParseFrequency(incomeFrequency)
	if err != nil {
		return err
	}
	amount, err := finance.ParseAmount(incomeAmount)
	if err != nil {
		return err
	}

	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()

	in, err := svc.AddIncome(cmd.Context(), finance.IncomeEntry{
		UserID:    cfg.User.ID,
		Source:    incomeSource,
		Amount:    amount,
		Frequency: f,
	})
	if err != nil {
		return fmt.Errorf("add income: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Income %s: %s %s (%s)\n", in.ID, in.Source, in.Amount.Display(), in.Frequency.Label())
	return nil
}

func runIncomeList(cmd *cobra.Command, args []string) error {
	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()

	r, err := svc.Metrics(cmd.Context(), cfg.User.ID)
	if err != nil {
		return fmt.Errorf("list income: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tAMOUNT\tFREQUENCY")
	for _, in := range r.Snapshot.Income {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", in.ID, in.Source, in.Amount.Display(), in.Frequency.Label())
	}
	fmt.Fprintf(w, "\tMonthly total\t%s\t\n", r.Metrics.MonthlyIncome.Display())
	return w.Flush()
}

func runIncomeDelete(cmd *cobra.Command, args []string) error {
	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()

	if err := svc.DeleteIncome(cmd.Context(), cfg.User.ID, args[0]); err != nil {
		return fmt.Errorf("delete income %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted income %s\n", args[0])
	return nil
}
