package party

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrPersonIsNotConstructed is returned when a zero-value Person is used.
var ErrPersonIsNotConstructed = errs.NewValueIsRequiredError(
	"person must be created via NewPerson constructor")

// Contact is anything an order can be addressed to.
type Contact interface {
	Name() string
	Address() Address
}

// Person is a named recipient with a postal address.
type Person struct {
	name    string
	address Address
	guard   guard.ConstructorGuard
}

var _ Contact = Person{}

// NewPerson creates a Person. The name must not be blank.
func NewPerson(name string, address Address) (Person, error) {
	if strings.TrimSpace(name) == "" {
		return Person{}, errs.NewValueIsRequiredError("name")
	}

	return Person{
		name:    name,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the Person was built by a constructor.
func (p Person) Validate() error {
	return p.guard.Validate(ErrPersonIsNotConstructed)
}

func (p Person) Name() string {
	return p.name
}

func (p Person) Address() Address {
	return p.address
}

func (p Person) String() string {
	return fmt.Sprintf("%s (%s)", p.name, p.address)
}
