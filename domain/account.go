package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"corebanking/events"
	"corebanking/shared"
)

// WithdrawalPolicy is the hook pair each account variant supplies to the
// shared withdrawal envelope: the variant decides whether a withdrawal is
// allowed and performs its bookkeeping after one succeeded. The envelope
// (locking, amount validation, balance mutation, notification) stays in
// Account.
type WithdrawalPolicy interface {
	IsWithdrawalAllowed(amount decimal.Decimal) bool
	OnWithdrawn(amount decimal.Decimal)
}

// monetaryRescaler is implemented by variants that cache amounts in the
// account currency (overdraft limit, monthly accumulator) and must rescale
// them on a currency switch before the balance itself is rescaled.
type monetaryRescaler interface {
	rescaleMonetary(from, to shared.Currency)
}

// BankAccount is the contract the bank holds its accounts through. Both
// concrete variants satisfy it via the embedded Account core.
type BankAccount interface {
	Number() int64
	Kind() Kind
	Owner() Customer
	SetOwner(newOwner Customer) error
	Balance() decimal.Decimal
	Currency() shared.Currency
	SetCurrency(newCurrency shared.Currency) error
	Locked() bool
	Lock()
	Unlock()
	Deposit(amount decimal.Decimal) error
	DepositIn(amount decimal.Decimal, currency shared.Currency) error
	Withdraw(amount decimal.Decimal) (bool, error)
	WithdrawIn(amount decimal.Decimal, currency shared.Currency) (bool, error)
	Subscribe(o events.Observer)
	Unsubscribe(o events.Observer)
	FormattedBalance() string
	String() string
}

// Account is the state and behaviour common to every account variant:
// identity, owner, currency, balance, lock flag and the notification
// stream. Variants embed it and plug their rules in through
// WithdrawalPolicy.
type Account struct {
	number   int64
	kind     Kind
	owner    Customer
	currency shared.Currency
	balance  decimal.Decimal
	locked   bool
	stream   *events.Stream
	policy   WithdrawalPolicy
}

// newAccount builds the shared core. Balance starts at zero in the
// reference currency, unlocked. The policy is the variant embedding this
// core.
func newAccount(owner Customer, number int64, kind Kind, policy WithdrawalPolicy) (Account, error) {
	if owner.IsZero() {
		return Account{}, fmt.Errorf("%w: owner must not be absent", ErrInvalidArgument)
	}
	if number < 0 {
		return Account{}, fmt.Errorf("%w: account number must not be negative", ErrInvalidArgument)
	}
	return Account{
		number:   number,
		kind:     kind,
		owner:    owner,
		currency: shared.Reference,
		balance:  decimal.Zero,
		stream:   events.NewStream(),
		policy:   policy,
	}, nil
}

func (a *Account) Number() int64 {
	return a.number
}

func (a *Account) Kind() Kind {
	return a.kind
}

func (a *Account) Owner() Customer {
	return a.owner
}

// SetOwner replaces the account owner. Rejected on a locked account.
func (a *Account) SetOwner(newOwner Customer) error {
	if a.locked {
		return fmt.Errorf("%w: account %d", ErrAccountLocked, a.number)
	}
	if newOwner.IsZero() {
		return fmt.Errorf("%w: owner must not be absent", ErrInvalidArgument)
	}
	old := a.owner
	a.owner = newOwner
	a.stream.Publish(events.OwnerChangedEvent{
		BaseEvent: events.NewBaseEvent(a.number, events.OwnerChangedType),
		OldOwner:  old.String(),
		NewOwner:  newOwner.String(),
	})
	return nil
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) Currency() shared.Currency {
	return a.currency
}

// SetCurrency switches the currency the account is kept in, rescaling the
// balance and any variant-held amounts by the fixed conversion rates. It
// is permitted on a locked account: by itself the switch cannot harm the
// owner.
func (a *Account) SetCurrency(newCurrency shared.Currency) error {
	if !newCurrency.Valid() {
		return fmt.Errorf("%w: unknown currency %q", ErrInvalidArgument, string(newCurrency))
	}
	if newCurrency == a.currency {
		return nil
	}
	old := a.currency
	if rescaler, ok := a.policy.(monetaryRescaler); ok {
		rescaler.rescaleMonetary(old, newCurrency)
	}
	a.balance = shared.Rescale(a.balance, old, newCurrency)
	a.currency = newCurrency
	a.stream.Publish(events.CurrencyChangedEvent{
		BaseEvent:   events.NewBaseEvent(a.number, events.CurrencyChangedType),
		OldCurrency: old,
		NewCurrency: newCurrency,
	})
	return nil
}

func (a *Account) Locked() bool {
	return a.locked
}

// Lock forbids operations that could harm the owner (withdrawals, owner
// changes) until Unlock is called.
func (a *Account) Lock() {
	a.locked = true
	a.stream.Publish(events.LockStateChangedEvent{
		BaseEvent: events.NewBaseEvent(a.number, events.LockStateChangedType),
		Locked:    true,
	})
}

func (a *Account) Unlock() {
	a.locked = false
	a.stream.Publish(events.LockStateChangedEvent{
		BaseEvent: events.NewBaseEvent(a.number, events.LockStateChangedType),
		Locked:    false,
	})
}

// Deposit credits amount to the balance. Deposits are allowed even on a
// locked account.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: deposit of %s", ErrInvalidAmount, amount.String())
	}
	a.credit(amount)
	return nil
}

// DepositIn credits an amount denominated in another currency, converting
// it into the account currency first.
func (a *Account) DepositIn(amount decimal.Decimal, currency shared.Currency) error {
	converted, err := a.toAccountCurrency(amount, currency)
	if err != nil {
		return err
	}
	return a.Deposit(converted)
}

// Withdraw debits amount if the variant allows it. The boolean result
// reports the business outcome; errors signal a locked account or an
// invalid amount. A refused withdrawal leaves all state untouched and
// emits no notification.
func (a *Account) Withdraw(amount decimal.Decimal) (bool, error) {
	if a.locked {
		return false, fmt.Errorf("%w: account %d", ErrAccountLocked, a.number)
	}
	if amount.IsNegative() {
		return false, fmt.Errorf("%w: withdrawal of %s", ErrInvalidAmount, amount.String())
	}
	if !a.policy.IsWithdrawalAllowed(amount) {
		return false, nil
	}
	a.debit(amount)
	a.policy.OnWithdrawn(amount)
	return true, nil
}

// WithdrawIn debits an amount denominated in another currency.
func (a *Account) WithdrawIn(amount decimal.Decimal, currency shared.Currency) (bool, error) {
	converted, err := a.toAccountCurrency(amount, currency)
	if err != nil {
		return false, err
	}
	return a.Withdraw(converted)
}

// Subscribe registers an observer on the account's notification stream.
func (a *Account) Subscribe(o events.Observer) {
	a.stream.Subscribe(o)
}

func (a *Account) Unsubscribe(o events.Observer) {
	a.stream.Unsubscribe(o)
}

// Equal reports whether two accounts are the same account: same concrete
// kind and same number.
func (a *Account) Equal(other BankAccount) bool {
	if other == nil {
		return false
	}
	return a.kind == other.Kind() && a.number == other.Number()
}

// Less orders accounts by number ascending.
func (a *Account) Less(other BankAccount) bool {
	return a.number < other.Number()
}

// FormattedNumber renders the account number padded to ten digits.
func (a *Account) FormattedNumber() string {
	return fmt.Sprintf("%10d", a.number)
}

// FormattedBalance renders the balance with its currency code and two
// decimal places.
func (a *Account) FormattedBalance() string {
	return fmt.Sprintf("%s %10s", a.currency, a.balance.StringFixed(2))
}

func (a *Account) String() string {
	locked := ""
	if a.locked {
		locked = " LOCKED"
	}
	return fmt.Sprintf("Number: %s\nOwner: %s\nBalance: %s%s\n",
		a.FormattedNumber(), a.owner, a.FormattedBalance(), locked)
}

// credit and debit are the only two places the balance changes; both emit
// the balance-changed notification inline.
func (a *Account) credit(amount decimal.Decimal) {
	old := a.balance
	a.balance = a.balance.Add(amount)
	a.publishBalanceChanged(old)
}

func (a *Account) debit(amount decimal.Decimal) {
	old := a.balance
	a.balance = a.balance.Sub(amount)
	a.publishBalanceChanged(old)
}

func (a *Account) publishBalanceChanged(old decimal.Decimal) {
	a.stream.Publish(events.BalanceChangedEvent{
		BaseEvent:  events.NewBaseEvent(a.number, events.BalanceChangedType),
		OldBalance: old,
		NewBalance: a.balance,
		Currency:   a.currency,
	})
}

func (a *Account) toAccountCurrency(amount decimal.Decimal, currency shared.Currency) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %s", ErrInvalidAmount, amount.String())
	}
	if !currency.Valid() {
		return decimal.Decimal{}, fmt.Errorf("%w: unknown currency %q", ErrInvalidArgument, string(currency))
	}
	converted, err := shared.Convert(amount, currency, a.currency)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrInvalidAmount, err)
	}
	return converted, nil
}
