package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"corebanking/shared"
)

func savingsDec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newSavings(t *testing.T) *SavingsAccount {
	t.Helper()
	owner := NewCustomer("Max", "Muster", "Musterweg 1", time.Date(1980, 5, 1, 0, 0, 0, 0, time.UTC))
	account, err := NewSavingsAccount(owner, 1)
	if err != nil {
		t.Fatalf("NewSavingsAccount failed: %v", err)
	}
	return account
}

// frozen pins the account clock to a fixed instant and returns a handle
// for advancing it.
func frozen(account *SavingsAccount, at time.Time) *time.Time {
	current := at
	account.now = func() time.Time { return current }
	account.anchorYear, account.anchorMonth = yearMonth(current)
	return &current
}

func TestSavingsAccount_Defaults(t *testing.T) {
	account := newSavings(t)
	if account.Kind() != KindSavings {
		t.Errorf("expected savings kind, got %s", account.Kind())
	}
	if !account.InterestRate().Equal(DefaultInterestRate) {
		t.Errorf("expected default interest rate, got %s", account.InterestRate())
	}
	if !account.WithdrawnThisMonth().IsZero() {
		t.Errorf("expected zero monthly total, got %s", account.WithdrawnThisMonth())
	}
}

func TestSavingsAccount_MonthlyCap(t *testing.T) {
	account := newSavings(t)
	frozen(account, time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC))
	if err := account.Deposit(savingsDec("2500")); err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}

	ok, err := account.Withdraw(savingsDec("1800"))
	if err != nil || !ok {
		t.Fatalf("expected first withdrawal to succeed, got ok=%v err=%v", ok, err)
	}
	if !account.WithdrawnThisMonth().Equal(savingsDec("1800")) {
		t.Errorf("expected monthly total 1800, got %s", account.WithdrawnThisMonth())
	}

	// 1800 + 300 exceeds the 2000 cap even though the balance allows it.
	ok, err = account.Withdraw(savingsDec("300"))
	if err != nil {
		t.Fatalf("Withdraw failed: %v", err)
	}
	if ok {
		t.Fatal("expected withdrawal over the monthly cap to be refused")
	}
	if !account.Balance().Equal(savingsDec("700")) {
		t.Errorf("a refused withdrawal must not change the balance, got %s", account.Balance())
	}
	if !account.WithdrawnThisMonth().Equal(savingsDec("1800")) {
		t.Errorf("a refused withdrawal must not change the monthly total, got %s", account.WithdrawnThisMonth())
	}
}

func TestSavingsAccount_MinimumRetainedBalance(t *testing.T) {
	account := newSavings(t)
	if err := account.Deposit(savingsDec("100")); err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}

	ok, err := account.Withdraw(savingsDec("99.60"))
	if err != nil {
		t.Fatalf("Withdraw failed: %v", err)
	}
	if ok {
		t.Fatal("expected withdrawal below the retained minimum to be refused")
	}

	// 100 - 99.50 leaves exactly the minimum and must go through.
	ok, err = account.Withdraw(savingsDec("99.50"))
	if err != nil || !ok {
		t.Fatalf("expected withdrawal down to the minimum to succeed, got ok=%v err=%v", ok, err)
	}
	if !account.Balance().Equal(savingsDec("0.50")) {
		t.Errorf("expected balance 0.50, got %s", account.Balance())
	}
}

func TestSavingsAccount_MonthRollover(t *testing.T) {
	account := newSavings(t)
	clock := frozen(account, time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC))
	_ = account.Deposit(savingsDec("5000"))

	if ok, _ := account.Withdraw(savingsDec("1800")); !ok {
		t.Fatal("expected first withdrawal to succeed")
	}
	if ok, _ := account.Withdraw(savingsDec("300")); ok {
		t.Fatal("expected withdrawal over the cap to be refused in January")
	}

	*clock = time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	ok, err := account.Withdraw(savingsDec("300"))
	if err != nil || !ok {
		t.Fatalf("expected a fresh month to reset the cap, got ok=%v err=%v", ok, err)
	}
	if !account.WithdrawnThisMonth().Equal(savingsDec("300")) {
		t.Errorf("expected monthly total 300 after rollover, got %s", account.WithdrawnThisMonth())
	}
}

func TestSavingsAccount_NeverNegative(t *testing.T) {
	account := newSavings(t)
	ok, err := account.Withdraw(savingsDec("1"))
	if err != nil {
		t.Fatalf("Withdraw failed: %v", err)
	}
	if ok {
		t.Fatal("expected withdrawal from an empty savings account to be refused")
	}
}

func TestSavingsAccount_LockedWithdraw(t *testing.T) {
	account := newSavings(t)
	_ = account.Deposit(savingsDec("100"))
	account.Lock()
	_, err := account.Withdraw(savingsDec("10"))
	if !errors.Is(err, ErrAccountLocked) {
		t.Errorf("expected ErrAccountLocked, got %v", err)
	}
}

func TestSavingsAccount_CurrencySwitchRescalesCapBookkeeping(t *testing.T) {
	account := newSavings(t)
	frozen(account, time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC))
	_ = account.Deposit(savingsDec("3000"))
	if ok, _ := account.Withdraw(savingsDec("1000")); !ok {
		t.Fatal("expected withdrawal to succeed")
	}

	if err := account.SetCurrency(shared.BGN); err != nil {
		t.Fatalf("SetCurrency failed: %v", err)
	}

	// 1000 EUR already withdrawn becomes 1955.83 BGN against a cap of
	// 3911.66 BGN, so another 1955.83 BGN is still allowed.
	if !account.WithdrawnThisMonth().Equal(savingsDec("1955.83")) {
		t.Errorf("expected monthly total 1955.83 BGN, got %s", account.WithdrawnThisMonth())
	}
	ok, err := account.Withdraw(savingsDec("1955.83"))
	if err != nil || !ok {
		t.Fatalf("expected remaining headroom in BGN, got ok=%v err=%v", ok, err)
	}
	if ok, _ := account.Withdraw(savingsDec("1")); ok {
		t.Fatal("expected the rescaled cap to be exhausted")
	}
}

func TestSavingsAccount_IsNotTransferCapable(t *testing.T) {
	account := newSavings(t)
	if _, ok := interface{}(account).(Transferor); ok {
		t.Fatal("savings accounts must not take part in transfers")
	}
}
