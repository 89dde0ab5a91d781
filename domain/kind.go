package domain

// Kind enumerates the account variants the bank offers.
type Kind int

const (
	KindChecking Kind = iota
	KindSavings
	// KindFixedDeposit is advertised but not offered yet.
	KindFixedDeposit
)

func (k Kind) String() string {
	switch k {
	case KindChecking:
		return "checking"
	case KindSavings:
		return "savings"
	case KindFixedDeposit:
		return "fixed-deposit"
	default:
		return "unknown"
	}
}

// Promo returns the marketing blurb for the account kind.
func (k Kind) Promo() string {
	switch k {
	case KindChecking:
		return "a generous overdraft"
	case KindSavings:
		return "plenty of interest"
	case KindFixedDeposit:
		return "coming soon..."
	default:
		return ""
	}
}
