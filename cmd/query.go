package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	queryNumber  int64
	queryMinimum string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query accounts and aggregate reports",
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Get an account's balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := bank.Account(queryNumber)
		if err != nil {
			return fail(fmt.Errorf("getting balance: %w", err))
		}
		fmt.Printf("Account %d balance: %s\n", queryNumber, account.FormattedBalance())
		return nil
	},
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List all accounts with their balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary := bank.Summary()
		if summary == "" {
			fmt.Println("The bank holds no accounts.")
			return nil
		}
		fmt.Print(summary)
		return nil
	},
}

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "List free account numbers below the highest issued one",
	Long: `Lists every account number in [1, highest number ever issued]
that no account currently holds, e.g. because the account was deleted.
Freed numbers are never reassigned.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gaps := bank.FreeAccountNumberGaps()
		if len(gaps) == 0 {
			fmt.Println("No gaps.")
			return nil
		}
		for _, number := range gaps {
			fmt.Println(number)
		}
		return nil
	},
}

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List owners of accounts holding at least a minimum balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		minimum, err := decimal.NewFromString(queryMinimum)
		if err != nil {
			return fail(fmt.Errorf("invalid minimum %q: %v", queryMinimum, err))
		}
		customers := bank.CustomersWithMinimumBalance(minimum)
		if len(customers) == 0 {
			fmt.Println("No account holds that much.")
			return nil
		}
		for _, c := range customers {
			fmt.Println(c)
		}
		return nil
	},
}

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "Print the customer birthday report",
	RunE: func(cmd *cobra.Command, args []string) error {
		report := bank.CustomerBirthdayReport()
		if report == "" {
			fmt.Println("The bank has no customers.")
			return nil
		}
		fmt.Print(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.AddCommand(balanceCmd)
	balanceCmd.Flags().Int64Var(&queryNumber, "number", 0, "Account number (required)")
	_ = balanceCmd.MarkFlagRequired("number")

	queryCmd.AddCommand(accountsCmd)
	queryCmd.AddCommand(gapsCmd)

	queryCmd.AddCommand(customersCmd)
	customersCmd.Flags().StringVar(&queryMinimum, "minimum", "0", "Minimum balance")

	queryCmd.AddCommand(birthdaysCmd)
}
