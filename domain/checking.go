package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"corebanking/shared"
)

// DefaultOverdraftLimit is the overdraft granted when none is specified,
// in the reference currency.
var DefaultOverdraftLimit = decimal.NewFromInt(500)

// CheckingAccount may run a negative balance down to its overdraft limit
// and can take part in transfers on both ends.
type CheckingAccount struct {
	Account
	overdraftLimit decimal.Decimal
}

var _ BankAccount = (*CheckingAccount)(nil)
var _ Transferor = (*CheckingAccount)(nil)

// NewCheckingAccount creates an unlocked checking account with a zero
// balance in the reference currency. The overdraft limit must not be
// negative.
func NewCheckingAccount(owner Customer, number int64, overdraftLimit decimal.Decimal) (*CheckingAccount, error) {
	if overdraftLimit.IsNegative() {
		return nil, fmt.Errorf("%w: overdraft limit %s", ErrInvalidAmount, overdraftLimit.String())
	}
	ca := &CheckingAccount{overdraftLimit: overdraftLimit}
	core, err := newAccount(owner, number, KindChecking, ca)
	if err != nil {
		return nil, err
	}
	ca.Account = core
	return ca, nil
}

// OverdraftLimit returns how far the balance may go negative, in the
// account currency.
func (ca *CheckingAccount) OverdraftLimit() decimal.Decimal {
	return ca.overdraftLimit
}

// SetOverdraftLimit replaces the overdraft limit. Negative limits are
// rejected.
func (ca *CheckingAccount) SetOverdraftLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return fmt.Errorf("%w: overdraft limit %s", ErrInvalidAmount, limit.String())
	}
	ca.overdraftLimit = limit
	return nil
}

// IsWithdrawalAllowed permits a withdrawal as long as the balance stays
// within the overdraft limit.
func (ca *CheckingAccount) IsWithdrawalAllowed(amount decimal.Decimal) bool {
	return ca.Balance().Sub(amount).GreaterThanOrEqual(ca.overdraftLimit.Neg())
}

// OnWithdrawn is a no-op: the checking variant keeps no withdrawal
// bookkeeping.
func (ca *CheckingAccount) OnWithdrawn(amount decimal.Decimal) {}

// rescaleMonetary converts the cached overdraft limit when the account
// switches currency.
func (ca *CheckingAccount) rescaleMonetary(from, to shared.Currency) {
	ca.overdraftLimit = shared.Rescale(ca.overdraftLimit, from, to)
}

// SendTransfer debits the amount for an outgoing transfer. The result is
// the business outcome under the same overdraft rule as a withdrawal;
// errors signal a locked account or invalid parameters.
func (ca *CheckingAccount) SendTransfer(amount decimal.Decimal, payeeName string, payeeNumber int64, payeeRoutingCode int64, memo string) (bool, error) {
	if ca.Locked() {
		return false, fmt.Errorf("%w: account %d", ErrAccountLocked, ca.Number())
	}
	if amount.IsNegative() {
		return false, fmt.Errorf("%w: transfer of %s", ErrInvalidAmount, amount.String())
	}
	if payeeName == "" || memo == "" {
		return false, fmt.Errorf("%w: payee name and memo are required", ErrInvalidArgument)
	}
	if !ca.IsWithdrawalAllowed(amount) {
		return false, nil
	}
	ca.debit(amount)
	return true, nil
}

// ReceiveTransfer credits an incoming transfer. Lock state is deliberately
// not checked: receiving funds cannot harm the owner, and bouncing an
// incoming transfer on a locked account would.
func (ca *CheckingAccount) ReceiveTransfer(amount decimal.Decimal, payerName string, payerNumber int64, payerRoutingCode int64, memo string) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: transfer of %s", ErrInvalidAmount, amount.String())
	}
	if payerName == "" || memo == "" {
		return fmt.Errorf("%w: payer name and memo are required", ErrInvalidArgument)
	}
	ca.credit(amount)
	return nil
}

func (ca *CheckingAccount) String() string {
	return fmt.Sprintf("-- CHECKING ACCOUNT --\n%sOverdraft limit: %s\n",
		ca.Account.String(), ca.overdraftLimit.StringFixed(2))
}
