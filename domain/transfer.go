package domain

import "github.com/shopspring/decimal"

// Transferor is the capability of taking part in a transfer. Only account
// variants implementing it may send or receive; the bank checks for the
// capability at runtime before starting a transfer.
type Transferor interface {
	// SendTransfer debits amount for an outgoing transfer and reports
	// whether the debit was permitted.
	SendTransfer(amount decimal.Decimal, payeeName string, payeeNumber int64, payeeRoutingCode int64, memo string) (bool, error)

	// ReceiveTransfer credits amount from an incoming transfer.
	ReceiveTransfer(amount decimal.Decimal, payerName string, payerNumber int64, payerRoutingCode int64, memo string) error
}
