package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sachacalipel7-cmyk/FinAdvisor/finance"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage accounts",
	Long: `Record, list and delete accounts.

Account types: current, savings, pea, life_insurance, crypto, other.

Examples:
  finplan account add --type pea --name "PEA Boursorama" --balance 1500
  finplan account list
  finplan account delete <account-id>`,
}

var accountAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new account",
	Args:  cobra.NoArgs,
	RunE:  runAccountAdd,
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runAccountList,
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete <account-id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountDelete,
}

var (
	accountType    string
	accountName    string
	accountBalance string
)

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountAddCmd)
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(accountDeleteCmd)

	accountAddCmd.Flags().StringVarP(&accountType, "type", "t", string(finance.CurrentAccount), "account type")
	accountAddCmd.Flags().StringVarP(&accountName, "name", "n", "", "account name (required)")
	accountAddCmd.Flags().StringVarP(&accountBalance, "balance", "b", "0", "current balance in euros")
	accountAddCmd.MarkFlagRequired("name")
}

func runAccountAdd(cmd *cobra.Command, args []string) error {
	t, err := finance.ParseAccountType(accountType)
	if err != nil {
		return err
	}
	balance, err := finance.ParseAmount(accountBalance)
	if err != nil {
		return err
	}

	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()

	a, err := svc.AddAccount(cmd.Context(), finance.Account{
		UserID:  cfg.User.ID,
		Type:    t,
		Name:    accountName,
		Balance: balance,
	})
	if err != nil {
		return fmt.Errorf("add account: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Account %s: %s (%s) %s\n", a.ID, a.Name, a.Type.Label(), a.Balance.Display())
	return nil
}

func runAccountList(cmd *cobra.Command, args []string) error {
	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()

	r, err := svc.Metrics(cmd.Context(), cfg.User.ID)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tNAME\tBALANCE")
	for _, a := range r.Snapshot.Accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Type.Label(), a.Name, a.Balance.Display())
	}
	fmt.Fprintf(w, "\t\tTotal\t%s\n", r.Metrics.TotalBalance.Display())
	return w.Flush()
}

func runAccountDelete(cmd *cobra.Command, args []string) error {
	svc, done, err := openService()
	if err != nil {
		return err
	}
	defer done()

	if err := svc.DeleteAccount(cmd.Context(), cfg.User.ID, args[0]); err != nil {
		return fmt.Errorf("delete account %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted account %s\n", args[0])
	return nil
}
