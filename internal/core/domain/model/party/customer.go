package party

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a zero-value Customer is used.
var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError(
	"customer must be created via NewCustomer or RestoreCustomer constructors")

// Customer is the party that placed an order. It wraps a Person and adds a
// numeric id and a billing address.
//
// Example:
//
//	gen := party.NewSequenceGenerator(1)
//	home := party.NewAddress("Rua Augusta", "Lisboa", "Portugal", "Lisboa", 10)
//	c, err := party.NewCustomer(gen, "Ana", home, home)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.ID()) // 1
type Customer struct {
	id             int
	person         Person
	billingAddress Address
	guard          guard.ConstructorGuard
}

var _ Contact = (*Customer)(nil)

// NewCustomer creates a Customer numbered by gen.
func NewCustomer(gen CustomerIDGenerator, name string, address, billingAddress Address) (*Customer, error) {
	if gen == nil {
		return nil, errs.NewValueIsRequiredError("customer id generator")
	}

	person, err := NewPerson(name, address)
	if err != nil {
		return nil, err
	}

	return &Customer{
		id:             gen.NextCustomerID(),
		person:         person,
		billingAddress: billingAddress,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer rebuilds a persisted Customer keeping its id.
func RestoreCustomer(id int, name string, address, billingAddress Address) (*Customer, error) {
	c := &Customer{
		billingAddress: billingAddress,
		guard:          guard.NewConstructorGuard(),
	}

	person, personErr := NewPerson(name, address)
	if err := errors.Join(c.setID(id), personErr); err != nil {
		return nil, err
	}
	c.person = person

	return c, nil
}

// Validate reports whether the Customer was built by a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() int {
	return c.id
}

func (c *Customer) Name() string {
	return c.person.Name()
}

func (c *Customer) Address() Address {
	return c.person.Address()
}

func (c *Customer) BillingAddress() Address {
	return c.billingAddress
}

// Person returns the contact part of the customer.
func (c *Customer) Person() Person {
	return c.person
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer(%d, %s)", c.id, c.person.Name())
}

func (c *Customer) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("customer id", id, 1, "max int")
	}
	c.id = id
	return nil
}
