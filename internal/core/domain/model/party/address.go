package party

import "fmt"

// Address is a postal address. Every field is optional: imported documents
// frequently omit parts of it.
type Address struct {
	street  string
	city    string
	country string
	state   string
	number  int
}

// NewAddress creates an Address.
func NewAddress(street, city, country, state string, number int) Address {
	return Address{
		street:  street,
		city:    city,
		country: country,
		state:   state,
		number:  number,
	}
}

func (a Address) Street() string {
	return a.street
}

func (a Address) City() string {
	return a.city
}

func (a Address) Country() string {
	return a.country
}

func (a Address) State() string {
	return a.state
}

func (a Address) Number() int {
	return a.number
}

// IsEmpty reports whether no field is set.
func (a Address) IsEmpty() bool {
	return a == Address{}
}

// String returns "street number, city, state, country".
func (a Address) String() string {
	return fmt.Sprintf("%s %d, %s, %s, %s", a.street, a.number, a.city, a.state, a.country)
}
