package events

import (
	"github.com/shopspring/decimal"

	"corebanking/shared"
)

type BalanceChangedEvent struct {
	BaseEvent
	OldBalance decimal.Decimal `json:"oldBalance"`
	NewBalance decimal.Decimal `json:"newBalance"`
	Currency   shared.Currency `json:"currency"`
}

type LockStateChangedEvent struct {
	BaseEvent
	Locked bool `json:"locked"`
}

// OwnerChangedEvent reports an owner replacement. The owners are carried
// as display strings so the events package stays independent of the
// domain's customer type.
type OwnerChangedEvent struct {
	BaseEvent
	OldOwner string `json:"oldOwner"`
	NewOwner string `json:"newOwner"`
}

type CurrencyChangedEvent struct {
	BaseEvent
	OldCurrency shared.Currency `json:"oldCurrency"`
	NewCurrency shared.Currency `json:"newCurrency"`
}
