package domain

import "fmt"

type DomainError struct {
	message string
}

func NewDomainError(format string, args ...interface{}) *DomainError {
	return &DomainError{message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.message
}

var (
	// ErrInvalidAmount rejects negative monetary values.
	ErrInvalidAmount = NewDomainError("invalid amount")
	// ErrInvalidArgument rejects absent required values (missing owner,
	// empty payee name or memo).
	ErrInvalidArgument = NewDomainError("invalid argument")
	// ErrAccountLocked rejects operations that could harm the owner of a
	// locked account.
	ErrAccountLocked = NewDomainError("account is locked")
	// ErrAccountNotFound is raised at the bank boundary for unknown
	// account numbers.
	ErrAccountNotFound = NewDomainError("account not found")
)
