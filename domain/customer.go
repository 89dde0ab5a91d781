package domain

import (
	"fmt"
	"time"
)

// Customer is the opaque person value owning an account: the bank never
// looks inside beyond display and identity.
type Customer struct {
	Name     string    `json:"name"`
	Surname  string    `json:"surname"`
	Address  string    `json:"address"`
	Birthday time.Time `json:"birthday"`
}

func NewCustomer(name, surname, address string, birthday time.Time) Customer {
	return Customer{Name: name, Surname: surname, Address: address, Birthday: birthday}
}

// IsZero reports whether c is the absent customer. A customer needs at
// least a name to count as present.
func (c Customer) IsZero() bool {
	return c.Name == "" && c.Surname == ""
}

// Equal compares customers by identity: name, surname and birth date.
// The address is mutable and not part of the identity.
func (c Customer) Equal(other Customer) bool {
	return c.Name == other.Name &&
		c.Surname == other.Surname &&
		c.Birthday.Equal(other.Birthday)
}

func (c Customer) String() string {
	return fmt.Sprintf("%s %s, %s", c.Name, c.Surname, c.Address)
}
