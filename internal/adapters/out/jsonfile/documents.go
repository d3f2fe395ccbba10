// Package jsonfile reads order documents and writes order and chart
// documents as JSON files.
//
// Import documents may be JSON or YAML: JSON is parsed as YAML flow syntax.
// Exported documents use the camelCase keys of the import format.
package jsonfile

import (
	"fulfillment/internal/core/domain/model/party"
)

type dateDocument struct {
	Day   int `yaml:"day" json:"day"`
	Month int `yaml:"month" json:"month"`
	Year  int `yaml:"year" json:"year"`
}

type addressDocument struct {
	Street  string `yaml:"street" json:"street"`
	City    string `yaml:"city" json:"city"`
	Country string `yaml:"country" json:"country"`
	State   string `yaml:"state" json:"state"`
	Number  int    `yaml:"number" json:"number"`
}

type personDocument struct {
	Name    string          `yaml:"name" json:"name"`
	Address addressDocument `yaml:"address" json:"address"`
}

type customerDocument struct {
	ID             int             `yaml:"id,omitempty" json:"id"`
	Name           string          `yaml:"name" json:"name"`
	Address        addressDocument `yaml:"address" json:"address"`
	BillingAddress addressDocument `yaml:"billingAddress" json:"billingAddress"`
}

type itemDocument struct {
	Reference   string `yaml:"reference" json:"reference"`
	Description string `yaml:"description" json:"description"`
	// LegacyDescription is the misspelled key older documents carry.
	LegacyDescription string `yaml:"decription" json:"-"`
	Depth             int    `yaml:"depth" json:"depth"`
	Height            int    `yaml:"height" json:"height"`
	Length            int    `yaml:"length" json:"length"`
}

func (d itemDocument) description() string {
	if d.Description != "" {
		return d.Description
	}
	return d.LegacyDescription
}

// orderDocument is the import format.
type orderDocument struct {
	ID          *int              `yaml:"id"`
	Date        *dateDocument     `yaml:"date"`
	Destination *personDocument   `yaml:"destination"`
	Customer    *customerDocument `yaml:"customer"`
	Items       []itemDocument    `yaml:"items"`
}

func addressToDocument(a party.Address) addressDocument {
	return addressDocument{
		Street:  a.Street(),
		City:    a.City(),
		Country: a.Country(),
		State:   a.State(),
		Number:  a.Number(),
	}
}

func (d addressDocument) toDomain() party.Address {
	return party.NewAddress(d.Street, d.City, d.Country, d.State, d.Number)
}

func contactToDocument(c party.Contact) personDocument {
	return personDocument{
		Name:    c.Name(),
		Address: addressToDocument(c.Address()),
	}
}
