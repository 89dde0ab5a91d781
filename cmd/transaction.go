package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"corebanking/shared"
)

var (
	txNumber    int64
	txAmountStr string
	txCurrency  string
	txFrom      int64
	txTo        int64
	txMemo      string
)

var transactionCmd = &cobra.Command{
	Use:   "transaction",
	Short: "Deposit, withdraw and transfer funds",
}

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Deposit funds into an account",
	Long: `Credits the amount to the account. With --currency the amount is
taken to be denominated in that currency and converted into the
account's own currency first. Deposits work on locked accounts too.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount()
		if err != nil {
			return fail(err)
		}

		if txCurrency == "" {
			err = bank.Deposit(txNumber, amount)
		} else {
			currency, parseErr := shared.Parse(txCurrency)
			if parseErr != nil {
				return fail(parseErr)
			}
			account, lookupErr := bank.Account(txNumber)
			if lookupErr != nil {
				return fail(lookupErr)
			}
			err = account.DepositIn(amount, currency)
		}
		if err != nil {
			return fail(fmt.Errorf("deposit failed: %w", err))
		}
		fmt.Printf("Deposited %s into account %d.\n", amount.StringFixed(2), txNumber)
		return nil
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraw funds from an account",
	Long: `Debits the amount if the account's rules allow it. A refused
withdrawal (insufficient funds, monthly cap, locked account) is reported
as refused, not as an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount()
		if err != nil {
			return fail(err)
		}

		ok, err := bank.Withdraw(txNumber, amount)
		if err != nil {
			return fail(fmt.Errorf("withdrawal failed: %w", err))
		}
		if !ok {
			fmt.Printf("Withdrawal of %s from account %d refused.\n", amount.StringFixed(2), txNumber)
			return nil
		}
		fmt.Printf("Withdrew %s from account %d.\n", amount.StringFixed(2), txNumber)
		return nil
	},
}

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer funds between two accounts of this bank",
	Long: `Moves funds from one transfer-capable account to another. A
transfer refused by the business rules (capability, lock state,
overdraft limit) reports as refused; if the receiving leg fails after
the amount was already debited, the amount goes back to the sender.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount()
		if err != nil {
			return fail(err)
		}
		if txMemo == "" {
			return fail(fmt.Errorf("memo (--memo) is required"))
		}

		ok, err := bank.Transfer(txFrom, txTo, amount, txMemo)
		if err != nil {
			return fail(fmt.Errorf("transfer failed: %w", err))
		}
		if !ok {
			fmt.Printf("Transfer of %s from account %d to account %d refused.\n", amount.StringFixed(2), txFrom, txTo)
			return nil
		}
		fmt.Printf("Transferred %s from account %d to account %d.\n", amount.StringFixed(2), txFrom, txTo)
		return nil
	},
}

func parseAmount() (decimal.Decimal, error) {
	if txAmountStr == "" {
		return decimal.Decimal{}, fmt.Errorf("amount (--amount) is required")
	}
	amount, err := decimal.NewFromString(txAmountStr)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %v", txAmountStr, err)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount must not be negative: %s", amount.String())
	}
	return amount, nil
}

func init() {
	rootCmd.AddCommand(transactionCmd)

	transactionCmd.AddCommand(depositCmd)
	depositCmd.Flags().Int64Var(&txNumber, "number", 0, "Account number (required)")
	depositCmd.Flags().StringVar(&txAmountStr, "amount", "", "Amount to deposit (required)")
	depositCmd.Flags().StringVar(&txCurrency, "currency", "", "Currency the amount is denominated in (defaults to the account currency)")
	_ = depositCmd.MarkFlagRequired("number")
	_ = depositCmd.MarkFlagRequired("amount")

	transactionCmd.AddCommand(withdrawCmd)
	withdrawCmd.Flags().Int64Var(&txNumber, "number", 0, "Account number (required)")
	withdrawCmd.Flags().StringVar(&txAmountStr, "amount", "", "Amount to withdraw (required)")
	_ = withdrawCmd.MarkFlagRequired("number")
	_ = withdrawCmd.MarkFlagRequired("amount")

	transactionCmd.AddCommand(transferCmd)
	transferCmd.Flags().Int64Var(&txFrom, "from", 0, "Sender account number (required)")
	transferCmd.Flags().Int64Var(&txTo, "to", 0, "Recipient account number (required)")
	transferCmd.Flags().StringVar(&txAmountStr, "amount", "", "Amount to transfer (required)")
	transferCmd.Flags().StringVar(&txMemo, "memo", "", "Transfer memo (required)")
	_ = transferCmd.MarkFlagRequired("from")
	_ = transferCmd.MarkFlagRequired("to")
	_ = transferCmd.MarkFlagRequired("amount")
	_ = transferCmd.MarkFlagRequired("memo")
}
