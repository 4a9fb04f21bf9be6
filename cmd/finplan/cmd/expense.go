package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage expenses",
	Long: `Record, list and delete expenses. Only monthly entries count toward
monthly expenses.

Categories: Loyer, Alimentation, Transport, Assurances, Abonnements,
Loisirs, Santé, Éducation, Autre.

Examples:
  finplan expense add --category Loyer --amount 850
  finplan expense add --category Loisirs --description Vacances --amount 1200 --frequency one_time
  finplan expense list`,
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	Args:  cobra.NoArgs,
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses, most recent first, then the monthly breakdown",
	Args:  cobra.NoArgs,
	RunE:  runExpenseList,
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete <expense-id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseDelete,
}

var (
	expenseCategory    string
	expenseDescription string
	expenseAmount      string
	expenseFrequency   string
)

func init() {
	rootCmd.AddCommand(expenseCmd)
	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseListCmd)
	expenseCmd.AddCommand(expenseDeleteCmd)

	expenseAddCmd.Flags().StringVarP(&expenseCategory, "category", "k", string(finance.OtherExpense), "expense category")
	expenseAddCmd.Flags().StringVarP(&expenseDescription, "description", "d", "", "free text description")
	expenseAddCmd.Flags().StringVarP(&expenseAmount, "amount", "a", "0", "amount in euros")
	expenseAddCmd.Flags().StringVarP(&expenseFrequency, "frequency", "f", string(finance.Monthly), "frequency")
}

func runExpenseAdd(cmd *cobra.Command, args []string) error {
	c, err := finance.ParseExpenseCategory(expenseCategory)
	if err != nil {
		return err
	}
	f, err := finance.ParseFrequency(expenseFrequency)
	if err != nil {
		return err
	}
	amount, err := finance.ParseAmount(expenseAmount)
	if err != nil {
		return err
	}

	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()

	e, err := svc.AddExpense(cmd.Context(), finance.ExpenseEntry{
		UserID:      cfg.User.ID,
		Category:    c,
		Description: expenseDescription,
		Amount:      amount,
		Frequency:   f,
	})
	if err != nil {
		return fmt.Errorf("add expense: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Expense %s: %s %s (%s)\n", e.ID, e.Category, e.Amount.Display(), e.Frequency.Label())
	return nil
}

func runExpenseList(cmd *cobra.Command, args []string) error {
	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()

	r, err := svc.Metrics(cmd.Context(), cfg.User.ID)
	if err != nil {
		return fmt.Errorf("list expenses: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tDESCRIPTION\tAMOUNT\tFREQUENCY")
	for _, e := range r.Snapshot.Expenses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Category, e.Description, e.Amount.Display(), e.Frequency.Label())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(r.ByCategory) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\nMonthly breakdown:")
		printBreakdown(cmd, r.ByCategory)
	}
	return nil
}

func runExpenseDelete(cmd *cobra.Command, args []string) error {
	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()

	if err := svc.DeleteExpense(cmd.Context(), cfg.User.ID, args[0]); err != nil {
		return fmt.Errorf("delete expense %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted expense %s\n", args[0])
	return nil
}
