package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"corebanking/shared"
)

var (
	// MonthlyWithdrawalCap is the total a savings account may withdraw per
	// calendar month, expressed in the reference currency.
	MonthlyWithdrawalCap = decimal.NewFromInt(2000)

	// MinimumRetainedBalance must stay on a savings account after any
	// withdrawal, in the account's current currency.
	MinimumRetainedBalance = decimal.RequireFromString("0.50")

	// DefaultInterestRate is the rate a new savings account advertises.
	// 0.03 means 3%.
	DefaultInterestRate = decimal.RequireFromString("0.03")
)

// SavingsAccount never goes negative and caps how much may be withdrawn
// within one calendar month. The interest rate is advertised only; no
// compounding happens here.
type SavingsAccount struct {
	Account
	interestRate       decimal.Decimal
	withdrawnThisMonth decimal.Decimal
	anchorYear         int
	anchorMonth        time.Month

	now func() time.Time
}

var _ BankAccount = (*SavingsAccount)(nil)

// NewSavingsAccount creates an unlocked savings account with a zero
// balance in the reference currency and the default interest rate.
func NewSavingsAccount(owner Customer, number int64) (*SavingsAccount, error) {
	sa := &SavingsAccount{
		interestRate:       DefaultInterestRate,
		withdrawnThisMonth: decimal.Zero,
		now:                time.Now,
	}
	core, err := newAccount(owner, number, KindSavings, sa)
	if err != nil {
		return nil, err
	}
	sa.Account = core
	sa.anchorYear, sa.anchorMonth = yearMonth(sa.now())
	return sa, nil
}

func (sa *SavingsAccount) InterestRate() decimal.Decimal {
	return sa.interestRate
}

// WithdrawnThisMonth returns what the current calendar month's
// withdrawals add up to, in the account currency.
func (sa *SavingsAccount) WithdrawnThisMonth() decimal.Decimal {
	return sa.withdrawnThisMonth
}

// IsWithdrawalAllowed enforces the minimum retained balance and the
// monthly cap. Entering a new calendar month resets the accumulator
// before the check.
func (sa *SavingsAccount) IsWithdrawalAllowed(amount decimal.Decimal) bool {
	sa.rollOver()
	monthlyCap := shared.Rescale(MonthlyWithdrawalCap, shared.Reference, sa.Currency())
	return sa.Balance().Sub(amount).GreaterThanOrEqual(MinimumRetainedBalance) &&
		sa.withdrawnThisMonth.Add(amount).LessThanOrEqual(monthlyCap)
}

// OnWithdrawn accumulates the withdrawal into the monthly total and
// re-anchors the period.
func (sa *SavingsAccount) OnWithdrawn(amount decimal.Decimal) {
	sa.withdrawnThisMonth = sa.withdrawnThisMonth.Add(amount)
	sa.anchorYear, sa.anchorMonth = yearMonth(sa.now())
}

// rescaleMonetary converts the monthly accumulator when the account
// switches currency. The cap itself is derived from the reference
// constant on every check and needs no rescaling.
func (sa *SavingsAccount) rescaleMonetary(from, to shared.Currency) {
	sa.withdrawnThisMonth = shared.Rescale(sa.withdrawnThisMonth, from, to)
}

func (sa *SavingsAccount) rollOver() {
	year, month := yearMonth(sa.now())
	if year != sa.anchorYear || month != sa.anchorMonth {
		sa.withdrawnThisMonth = decimal.Zero
		sa.anchorYear, sa.anchorMonth = year, month
	}
}

func yearMonth(t time.Time) (int, time.Month) {
	return t.Year(), t.Month()
}

func (sa *SavingsAccount) String() string {
	return fmt.Sprintf("-- SAVINGS ACCOUNT --\n%sInterest rate: %s%%\n",
		sa.Account.String(), sa.interestRate.Mul(decimal.NewFromInt(100)).String())
}
