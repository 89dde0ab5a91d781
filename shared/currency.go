package shared

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency identifies one of the currencies the bank trades in. Every
// currency carries a fixed conversion rate against the reference currency
// (EUR); rates do not change during the lifetime of the process.
type Currency string

const (
	EUR Currency = "EUR"
	BGN Currency = "BGN"
	LTL Currency = "LTL"
	KM  Currency = "KM"
)

// Reference is the currency all conversion rates are expressed against.
const Reference = EUR

// rateToReference maps a currency to the amount of that currency one unit
// of the reference currency buys.
var rateToReference = map[Currency]decimal.Decimal{
	EUR: decimal.NewFromInt(1),
	BGN: decimal.RequireFromString("1.95583"),
	LTL: decimal.RequireFromString("3.4528"),
	KM:  decimal.RequireFromString("1.95583"),
}

// All lists the supported currencies in a stable order.
func All() []Currency {
	return []Currency{EUR, BGN, LTL, KM}
}

// Parse returns the Currency for a code, or an error for unknown codes.
func Parse(code string) (Currency, error) {
	c := Currency(code)
	if !c.Valid() {
		return "", fmt.Errorf("unknown currency code %q", code)
	}
	return c, nil
}

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	_, ok := rateToReference[c]
	return ok
}

// Rate returns the fixed conversion rate of c against the reference
// currency. It panics on an unknown currency; callers are expected to
// hold only Currency values obtained from the constants or Parse.
func (c Currency) Rate() decimal.Decimal {
	rate, ok := rateToReference[c]
	if !ok {
		panic(fmt.Sprintf("shared: no rate for currency %q", string(c)))
	}
	return rate
}

func (c Currency) String() string {
	return string(c)
}

// Convert converts a non-negative amount denominated in from into to,
// routing through the reference currency. Converting a currency to itself
// returns the amount unchanged. Negative amounts are rejected.
func Convert(amount decimal.Decimal, from, to Currency) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("cannot convert negative amount %s", amount.String())
	}
	return Rescale(amount, from, to), nil
}

// Rescale converts an amount of either sign from one currency to another.
// Currency switches use it to rescale balances, which may legitimately be
// negative on an overdrawn account; everything else should go through
// Convert and its sign check.
func Rescale(amount decimal.Decimal, from, to Currency) decimal.Decimal {
	if from == to {
		return amount
	}
	inReference := amount
	if from != Reference {
		inReference = amount.Div(from.Rate())
	}
	if to == Reference {
		return inReference
	}
	return inReference.Mul(to.Rate())
}
