package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/party"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

var _ ports.OrderImporter = (*Importer)(nil)

// Importer builds orders from import documents. Customers without an id in
// the document are numbered by the injected generator.
type Importer struct {
	customerIDs party.CustomerIDGenerator
}

// NewImporter creates an Importer numbering new customers with customerIDs.
func NewImporter(customerIDs party.CustomerIDGenerator) *Importer {
	return &Importer{customerIDs: customerIDs}
}

// Import decodes one document and returns the order it describes. The
// order id is required; date, destination and customer are optional.
//
// Decoding failures are reported as *errs.ValueIsInvalidError; invalid
// values keep the error kind of the domain constructor that rejected them.
func (i *Importer) Import(ctx context.Context, document io.Reader) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if document == nil {
		return nil, errs.NewValueIsRequiredError("document")
	}

	var doc orderDocument
	if err := yaml.NewDecoder(document).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errs.NewValueIsRequiredError("document")
		}
		return nil, errs.NewValueIsInvalidErrorWithCause("document", err)
	}

	return i.toOrder(doc)
}

func (i *Importer) toOrder(doc orderDocument) (*order.Order, error) {
	if doc.ID == nil {
		return nil, errs.NewValueIsRequiredError("id")
	}

	o := order.NewOrder()
	if err := o.SetID(*doc.ID); err != nil {
		return nil, err
	}

	if doc.Date != nil {
		if err := o.SetDate(doc.Date.Day, doc.Date.Month, doc.Date.Year); err != nil {
			return nil, err
		}
	}

	if doc.Destination != nil {
		dest, err := party.NewPerson(doc.Destination.Name, doc.Destination.Address.toDomain())
		if err != nil {
			return nil, fmt.Errorf("destination: %w", err)
		}
		if err = o.SetDestination(dest); err != nil {
			return nil, err
		}
	}

	if doc.Customer != nil {
		customer, err := i.customer(*doc.Customer)
		if err != nil {
			return nil, fmt.Errorf("customer: %w", err)
		}
		if err = o.SetCustomer(customer); err != nil {
			return nil, err
		}
	}

	for idx, itemDoc := range doc.Items {
		item, err := packing.NewItem(itemDoc.Reference, itemDoc.description(), itemDoc.Depth, itemDoc.Height, itemDoc.Length)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", idx, err)
		}
		added, err := o.Add(item)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", idx, err)
		}
		if !added {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", idx),
				fmt.Errorf("duplicate reference %q", itemDoc.Reference))
		}
	}

	return o, nil
}

func (i *Importer) customer(doc customerDocument) (*party.Customer, error) {
	address := doc.Address.toDomain()
	billing := doc.BillingAddress.toDomain()
	if doc.ID > 0 {
		return party.RestoreCustomer(doc.ID, doc.Name, address, billing)
	}
	return party.NewCustomer(i.customerIDs, doc.Name, address, billing)
}
