package app

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"corebanking/domain"
	"corebanking/logging"
)

// Bank is the institution-level orchestrator. It owns the account
// collection and the number counter; every mutation of account state goes
// through the accounts' own operations, never past them.
type Bank struct {
	routingCode int64
	lastIssued  int64
	accounts    map[int64]domain.BankAccount
	errlog      logging.ErrorLogger
}

// NewBank creates an empty bank with the given routing code. Recoverable
// business failures (refused withdrawals on locked accounts, failed
// transfer legs) are reported to errlog; pass nil to log them to stderr.
func NewBank(routingCode int64, errlog logging.ErrorLogger) (*Bank, error) {
	if routingCode < 0 {
		return nil, fmt.Errorf("%w: routing code must not be negative", domain.ErrInvalidArgument)
	}
	if errlog == nil {
		errlog = logging.Stderr{}
	}
	return &Bank{
		routingCode: routingCode,
		accounts:    make(map[int64]domain.BankAccount),
		errlog:      errlog,
	}, nil
}

func (b *Bank) RoutingCode() int64 {
	return b.routingCode
}

// CreateAccount allocates the next account number, asks the factory for
// an account of its variant bound to (owner, number), and stores it.
// Numbers are strictly increasing and never reused, even after deletion.
func (b *Bank) CreateAccount(factory domain.Factory, owner domain.Customer) (int64, error) {
	if factory == nil {
		return 0, fmt.Errorf("%w: factory must not be nil", domain.ErrInvalidArgument)
	}
	if owner.IsZero() {
		return 0, fmt.Errorf("%w: owner must not be absent", domain.ErrInvalidArgument)
	}

	number := b.lastIssued + 1
	account, err := factory.Build(owner, number)
	if err != nil {
		return 0, fmt.Errorf("building account %d: %w", number, err)
	}
	b.lastIssued = number
	b.accounts[number] = account

	log.Printf("Account %d (%s) created for %s %s", number, account.Kind(), owner.Name, owner.Surname)
	return number, nil
}

// Account returns the stored account so that front-ends can bind to its
// state and subscribe to its notifications.
func (b *Bank) Account(number int64) (domain.BankAccount, error) {
	account, ok := b.accounts[number]
	if !ok {
		return nil, fmt.Errorf("%w: account %d does not exist", domain.ErrAccountNotFound, number)
	}
	return account, nil
}

// Deposit credits amount to the account with the given number.
func (b *Bank) Deposit(number int64, amount decimal.Decimal) error {
	account, err := b.Account(number)
	if err != nil {
		return err
	}
	return account.Deposit(amount)
}

// Withdraw debits amount from the account with the given number. A
// withdrawal refused by the account — including one refused because the
// account is locked or the amount invalid — is a normal business outcome:
// it is logged and reported as false, not returned as an error. Only an
// unknown account number is an error.
func (b *Bank) Withdraw(number int64, amount decimal.Decimal) (bool, error) {
	account, err := b.Account(number)
	if err != nil {
		return false, err
	}
	ok, err := account.Withdraw(amount)
	if err != nil {
		b.errlog.LogError(fmt.Sprintf("withdrawal of %s from account %d refused: %v", amount.String(), number, err))
		return false, nil
	}
	return ok, nil
}

// DeleteAccount drops the account and reports whether it existed. The
// freed number is never reassigned.
func (b *Bank) DeleteAccount(number int64) bool {
	if _, ok := b.accounts[number]; !ok {
		return false
	}
	delete(b.accounts, number)
	log.Printf("Account %d deleted", number)
	return true
}

// Balance returns the balance of the account with the given number, in
// that account's currency.
func (b *Bank) Balance(number int64) (decimal.Decimal, error) {
	account, err := b.Account(number)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return account.Balance(), nil
}

// Transfer moves amount from one account of this bank to another. Both
// parties must exist (otherwise an error), must be transfer-capable and
// unlocked (otherwise false). If the send leg succeeds but the receive
// leg fails, the amount is deposited back into the sender: the sender
// must never lose funds that never reached the recipient.
func (b *Bank) Transfer(fromNumber, toNumber int64, amount decimal.Decimal, memo string) (bool, error) {
	sender, ok := b.accounts[fromNumber]
	if !ok {
		return false, fmt.Errorf("%w: sender account %d does not exist", domain.ErrAccountNotFound, fromNumber)
	}
	recipient, ok := b.accounts[toNumber]
	if !ok {
		return false, fmt.Errorf("%w: recipient account %d does not exist", domain.ErrAccountNotFound, toNumber)
	}

	sendingParty, ok := sender.(domain.Transferor)
	if !ok {
		return false, nil
	}
	receivingParty, ok := recipient.(domain.Transferor)
	if !ok {
		return false, nil
	}

	if sender.Locked() || recipient.Locked() {
		return false, nil
	}

	transferID := uuid.NewString()

	sent, err := sendingParty.SendTransfer(amount, recipient.Owner().Name, toNumber, b.routingCode, memo)
	if err != nil {
		b.errlog.LogError(fmt.Sprintf("transfer %s: sending %s from account %d failed: %v", transferID, amount.String(), fromNumber, err))
		return false, nil
	}
	if !sent {
		return false, nil
	}

	if err := receivingParty.ReceiveTransfer(amount, sender.Owner().Name, fromNumber, b.routingCode, memo); err != nil {
		// Compensate: the send leg already went through, so the amount
		// goes straight back to the sender. Deposits are permitted even
		// on a locked account, so this cannot fail for a valid amount.
		if depErr := sender.Deposit(amount); depErr != nil {
			b.errlog.LogError(fmt.Sprintf("transfer %s: compensation of %s to account %d failed: %v", transferID, amount.String(), fromNumber, depErr))
		}
		b.errlog.LogError(fmt.Sprintf("transfer %s: account %d could not receive, %s returned to account %d: %v", transferID, toNumber, amount.String(), fromNumber, err))
		return false, nil
	}

	log.Printf("Transfer %s: %s moved from account %d to account %d", transferID, amount.String(), fromNumber, toNumber)
	return true, nil
}

// LockOverdrawnAccounts locks every account whose balance is negative.
// No account is unlocked by this sweep.
func (b *Bank) LockOverdrawnAccounts() {
	for _, number := range b.sortedNumbers() {
		account := b.accounts[number]
		if account.Balance().IsNegative() && !account.Locked() {
			account.Lock()
			log.Printf("Account %d locked: balance %s is overdrawn", number, account.Balance().String())
		}
	}
}

// CustomersWithMinimumBalance lists the owners of every account whose
// balance is at least minimum, in account-number order. An owner appears
// once per qualifying account.
func (b *Bank) CustomersWithMinimumBalance(minimum decimal.Decimal) []domain.Customer {
	owners := make([]domain.Customer, 0)
	for _, number := range b.sortedNumbers() {
		account := b.accounts[number]
		if account.Balance().GreaterThanOrEqual(minimum) {
			owners = append(owners, account.Owner())
		}
	}
	return owners
}

// CustomerBirthdayReport renders one line per distinct customer with name,
// surname and birth date, sorted by name.
func (b *Bank) CustomerBirthdayReport() string {
	unique := make([]domain.Customer, 0)
	for _, number := range b.sortedNumbers() {
		owner := b.accounts[number].Owner()
		seen := false
		for _, c := range unique {
			if c.Equal(owner) {
				seen = true
				break
			}
		}
		if !seen {
			unique = append(unique, owner)
		}
	}
	sort.Slice(unique, func(i, j int) bool {
		if unique[i].Name != unique[j].Name {
			return unique[i].Name < unique[j].Name
		}
		return unique[i].Surname < unique[j].Surname
	})

	var sb strings.Builder
	for _, c := range unique {
		fmt.Fprintf(&sb, "Name: %s %s. Birthday: %s\n", c.Name, c.Surname, c.Birthday.Format("2006-01-02"))
	}
	return sb.String()
}

// FreeAccountNumberGaps lists every number in [1, highest ever issued]
// that no account currently holds, ascending. An empty bank has no gaps.
func (b *Bank) FreeAccountNumberGaps() []int64 {
	gaps := make([]int64, 0)
	if len(b.accounts) == 0 {
		return gaps
	}
	for number := int64(1); number <= b.lastIssued; number++ {
		if _, ok := b.accounts[number]; !ok {
			gaps = append(gaps, number)
		}
	}
	return gaps
}

// AccountNumbers lists all live account numbers ascending.
func (b *Bank) AccountNumbers() []int64 {
	return b.sortedNumbers()
}

// Summary renders one line per account with its number and formatted
// balance, in account-number order.
func (b *Bank) Summary() string {
	var sb strings.Builder
	for _, number := range b.sortedNumbers() {
		account := b.accounts[number]
		fmt.Fprintf(&sb, "Number: %d. Balance: %s\n", number, account.FormattedBalance())
	}
	return sb.String()
}

func (b *Bank) sortedNumbers() []int64 {
	numbers := make([]int64, 0, len(b.accounts))
	for number := range b.accounts {
		numbers = append(numbers, number)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	return numbers
}

// IsNotFound reports whether err is the unknown-account error raised at
// the bank boundary.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrAccountNotFound)
}
