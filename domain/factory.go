package domain

import "github.com/shopspring/decimal"

// Factory builds an account of one concrete variant bound to an owner and
// a number. The bank goes through a Factory so it never has to know which
// variant it is creating.
type Factory interface {
	Build(owner Customer, number int64) (BankAccount, error)
}

// CheckingFactory builds checking accounts with a fixed overdraft limit.
type CheckingFactory struct {
	OverdraftLimit decimal.Decimal
}

func NewCheckingFactory(overdraftLimit decimal.Decimal) CheckingFactory {
	return CheckingFactory{OverdraftLimit: overdraftLimit}
}

func (f CheckingFactory) Build(owner Customer, number int64) (BankAccount, error) {
	return NewCheckingAccount(owner, number, f.OverdraftLimit)
}

// SavingsFactory builds savings accounts with the default interest rate.
type SavingsFactory struct{}

func (SavingsFactory) Build(owner Customer, number int64) (BankAccount, error) {
	return NewSavingsAccount(owner, number)
}
