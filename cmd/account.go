package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"corebanking/domain"
	"corebanking/shared"
)

var (
	acctKind      string
	acctName      string
	acctSurname   string
	acctAddress   string
	acctBirthday  string
	acctOverdraft string
	acctNumber    int64
	acctCurrency  string
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Create and manage accounts",
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Open a new account",
	Long: `Opens a checking or savings account for the given customer and
prints the assigned account number. Checking accounts take an optional
--overdraft limit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := parseCustomer()
		if err != nil {
			return fail(err)
		}

		var factory domain.Factory
		switch acctKind {
		case "checking":
			overdraft := domain.DefaultOverdraftLimit
			if acctOverdraft != "" {
				overdraft, err = decimal.NewFromString(acctOverdraft)
				if err != nil {
					return fail(fmt.Errorf("invalid overdraft %q: %v", acctOverdraft, err))
				}
			}
			factory = domain.NewCheckingFactory(overdraft)
		case "savings":
			factory = domain.SavingsFactory{}
		default:
			return fail(fmt.Errorf("unknown account kind %q, want checking or savings", acctKind))
		}

		number, err := bank.CreateAccount(factory, owner)
		if err != nil {
			return fail(fmt.Errorf("creating account: %w", err))
		}
		fmt.Printf("Account %d (%s) opened for %s %s.\n", number, acctKind, owner.Name, owner.Surname)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if bank.DeleteAccount(acctNumber) {
			fmt.Printf("Account %d deleted. The number will not be reused.\n", acctNumber)
		} else {
			fmt.Printf("Account %d does not exist.\n", acctNumber)
		}
		return nil
	},
}

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := bank.Account(acctNumber)
		if err != nil {
			return fail(err)
		}
		account.Lock()
		fmt.Printf("Account %d locked.\n", acctNumber)
		return nil
	},
}

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := bank.Account(acctNumber)
		if err != nil {
			return fail(err)
		}
		account.Unlock()
		fmt.Printf("Account %d unlocked.\n", acctNumber)
		return nil
	},
}

var setOwnerCmd = &cobra.Command{
	Use:   "set-owner",
	Short: "Replace the owner of an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := bank.Account(acctNumber)
		if err != nil {
			return fail(err)
		}
		owner, err := parseCustomer()
		if err != nil {
			return fail(err)
		}
		if err := account.SetOwner(owner); err != nil {
			return fail(fmt.Errorf("changing owner of account %d: %w", acctNumber, err))
		}
		fmt.Printf("Account %d now belongs to %s %s.\n", acctNumber, owner.Name, owner.Surname)
		return nil
	},
}

var setCurrencyCmd = &cobra.Command{
	Use:   "set-currency",
	Short: "Switch the currency an account is kept in",
	Long: `Switches the account to another currency. The balance and all
variant-specific amounts (overdraft limit, monthly withdrawal total)
are rescaled by the fixed conversion rate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := bank.Account(acctNumber)
		if err != nil {
			return fail(err)
		}
		currency, err := shared.Parse(acctCurrency)
		if err != nil {
			return fail(err)
		}
		if err := account.SetCurrency(currency); err != nil {
			return fail(fmt.Errorf("switching account %d to %s: %w", acctNumber, currency, err))
		}
		fmt.Printf("Account %d is now kept in %s. Balance: %s\n", acctNumber, currency, account.FormattedBalance())
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print one account",
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := bank.Account(acctNumber)
		if err != nil {
			return fail(err)
		}
		fmt.Print(account.String())
		return nil
	},
}

func parseCustomer() (domain.Customer, error) {
	if acctName == "" || acctSurname == "" {
		return domain.Customer{}, fmt.Errorf("customer name (--name) and surname (--surname) are required")
	}
	birthday, err := time.Parse("2006-01-02", acctBirthday)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("invalid birthday %q, want YYYY-MM-DD: %v", acctBirthday, err)
	}
	return domain.NewCustomer(acctName, acctSurname, acctAddress, birthday), nil
}

func init() {
	rootCmd.AddCommand(accountCmd)

	accountCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&acctKind, "kind", "checking", "Account kind: checking or savings")
	createCmd.Flags().StringVar(&acctName, "name", "", "Customer first name (required)")
	createCmd.Flags().StringVar(&acctSurname, "surname", "", "Customer surname (required)")
	createCmd.Flags().StringVar(&acctAddress, "address", "", "Customer address")
	createCmd.Flags().StringVar(&acctBirthday, "birthday", "", "Customer birth date, YYYY-MM-DD (required)")
	createCmd.Flags().StringVar(&acctOverdraft, "overdraft", "", "Overdraft limit for checking accounts (default 500)")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("surname")
	_ = createCmd.MarkFlagRequired("birthday")

	accountCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().Int64Var(&acctNumber, "number", 0, "Account number (required)")
	_ = deleteCmd.MarkFlagRequired("number")

	accountCmd.AddCommand(lockCmd)
	lockCmd.Flags().Int64Var(&acctNumber, "number", 0, "Account number (required)")
	_ = lockCmd.MarkFlagRequired("number")

	accountCmd.AddCommand(unlockCmd)
	unlockCmd.Flags().Int64Var(&acctNumber, "number", 0, "Account number (required)")
	_ = unlockCmd.MarkFlagRequired("number")

	accountCmd.AddCommand(setOwnerCmd)
	setOwnerCmd.Flags().Int64Var(&acctNumber, "number", 0, "Account number (required)")
	setOwnerCmd.Flags().StringVar(&acctName, "name", "", "New owner first name (required)")
	setOwnerCmd.Flags().StringVar(&acctSurname, "surname", "", "New owner surname (required)")
	setOwnerCmd.Flags().StringVar(&acctAddress, "address", "", "New owner address")
	setOwnerCmd.Flags().StringVar(&acctBirthday, "birthday", "", "New owner birth date, YYYY-MM-DD (required)")
	_ = setOwnerCmd.MarkFlagRequired("number")
	_ = setOwnerCmd.MarkFlagRequired("name")
	_ = setOwnerCmd.MarkFlagRequired("surname")
	_ = setOwnerCmd.MarkFlagRequired("birthday")

	accountCmd.AddCommand(setCurrencyCmd)
	setCurrencyCmd.Flags().Int64Var(&acctNumber, "number", 0, "Account number (required)")
	setCurrencyCmd.Flags().StringVar(&acctCurrency, "currency", "", "Target currency code (EUR, BGN, LTL, KM) (required)")
	_ = setCurrencyCmd.MarkFlagRequired("number")
	_ = setCurrencyCmd.MarkFlagRequired("currency")

	accountCmd.AddCommand(showCmd)
	showCmd.Flags().Int64Var(&acctNumber, "number", 0, "Account number (required)")
	_ = showCmd.MarkFlagRequired("number")
}
