package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"corebanking/shared"
)

// AccountState is the serializable form of one account, used when the
// whole bank is snapshotted or cloned. It captures everything needed to
// rebuild the account, including the variant-specific amounts.
type AccountState struct {
	Number   int64           `json:"number"`
	Kind     Kind            `json:"kind"`
	Owner    Customer        `json:"owner"`
	Currency shared.Currency `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Locked   bool            `json:"locked"`

	// Checking variant.
	OverdraftLimit decimal.Decimal `json:"overdraftLimit,omitempty"`

	// Savings variant.
	InterestRate       decimal.Decimal `json:"interestRate,omitempty"`
	WithdrawnThisMonth decimal.Decimal `json:"withdrawnThisMonth,omitempty"`
	AnchorYear         int             `json:"anchorYear,omitempty"`
	AnchorMonth        time.Month      `json:"anchorMonth,omitempty"`
}

// CaptureState extracts the serializable state of an account.
func CaptureState(account BankAccount) (AccountState, error) {
	switch a := account.(type) {
	case *CheckingAccount:
		return AccountState{
			Number:         a.Number(),
			Kind:           KindChecking,
			Owner:          a.Owner(),
			Currency:       a.Currency(),
			Balance:        a.Balance(),
			Locked:         a.Locked(),
			OverdraftLimit: a.overdraftLimit,
		}, nil
	case *SavingsAccount:
		return AccountState{
			Number:             a.Number(),
			Kind:               KindSavings,
			Owner:              a.Owner(),
			Currency:           a.Currency(),
			Balance:            a.Balance(),
			Locked:             a.Locked(),
			InterestRate:       a.interestRate,
			WithdrawnThisMonth: a.withdrawnThisMonth,
			AnchorYear:         a.anchorYear,
			AnchorMonth:        a.anchorMonth,
		}, nil
	default:
		return AccountState{}, fmt.Errorf("cannot capture state of account type %T", account)
	}
}

// RestoreAccount rebuilds the account an AccountState was captured from.
// The restored account has a fresh notification stream: observers are not
// part of account state.
func RestoreAccount(state AccountState) (BankAccount, error) {
	switch state.Kind {
	case KindChecking:
		account, err := NewCheckingAccount(state.Owner, state.Number, decimal.Zero)
		if err != nil {
			return nil, err
		}
		account.overdraftLimit = state.OverdraftLimit
		account.currency = state.Currency
		account.balance = state.Balance
		account.locked = state.Locked
		return account, nil
	case KindSavings:
		account, err := NewSavingsAccount(state.Owner, state.Number)
		if err != nil {
			return nil, err
		}
		account.interestRate = state.InterestRate
		account.withdrawnThisMonth = state.WithdrawnThisMonth
		account.anchorYear = state.AnchorYear
		account.anchorMonth = state.AnchorMonth
		account.currency = state.Currency
		account.balance = state.Balance
		account.locked = state.Locked
		return account, nil
	default:
		return nil, fmt.Errorf("cannot restore account %d of kind %q", state.Number, state.Kind)
	}
}
