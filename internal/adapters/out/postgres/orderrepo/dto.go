// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored across five tables: orders, order_items, shipments,
// containers and packed_items. Child rows carry a seq column so collections
// come back in the order the aggregate holds them.
package orderrepo

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/party"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Destination and customer are flattened into prefixed columns; an empty
// name means the party was never set.
type OrderDTO struct {
	ID              int        `gorm:"primaryKey;autoIncrement:false"`
	Date            *time.Time `gorm:"type:date"`
	DestinationName string     `gorm:"type:varchar(255);not null;default:''"`
	Destination     AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
	CustomerNumber  *int       `gorm:"index"`
	CustomerName    string     `gorm:"type:varchar(255);not null;default:''"`
	CustomerAddress AddressDTO `gorm:"embedded;embeddedPrefix:customer_address_"`
	BillingAddress  AddressDTO `gorm:"embedded;embeddedPrefix:billing_"`

	Items     []ItemDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Shipments []ShipmentDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is an address embedded in the orders table.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255);not null;default:''"`
	City    string `gorm:"type:varchar(255);not null;default:''"`
	Country string `gorm:"type:varchar(255);not null;default:''"`
	State   string `gorm:"type:varchar(255);not null;default:''"`
	Number  int    `gorm:"not null;default:0"`
}

// ItemDTO is one item ordered.
type ItemDTO struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     int    `gorm:"not null;index"`
	Seq         int    `gorm:"not null"`
	Reference   string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null;default:''"`
	Depth       int    `gorm:"not null"`
	Height      int    `gorm:"not null"`
	Length      int    `gorm:"not null"`
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// ShipmentDTO is one shipment of an order. Status stores shipment.Status.
type ShipmentDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID    int            `gorm:"not null;index"`
	Seq        int            `gorm:"not null"`
	Status     int            `gorm:"not null"`
	Containers []ContainerDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipments.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ContainerDTO is one container of a shipment. Colours are stored as #rrggbb.
type ContainerDTO struct {
	ID         uint            `gorm:"primaryKey"`
	ShipmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Seq        int             `gorm:"not null"`
	Reference  string          `gorm:"type:varchar(255);not null"`
	FillColor  string          `gorm:"type:char(7);not null"`
	EdgeColor  string          `gorm:"type:char(7);not null"`
	Closed     bool            `gorm:"not null"`
	Items      []PackedItemDTO `gorm:"foreignKey:ContainerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for containers.
func (ContainerDTO) TableName() string {
	return "containers"
}

// PackedItemDTO is an item placed in a container. It keeps its own copy of
// the item data, as the domain does.
type PackedItemDTO struct {
	ID          uint   `gorm:"primaryKey"`
	ContainerID uint   `gorm:"not null;index"`
	Seq         int    `gorm:"not null"`
	Reference   string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null;default:''"`
	Depth       int    `gorm:"not null"`
	Height      int    `gorm:"not null"`
	Length      int    `gorm:"not null"`
	X           int    `gorm:"not null"`
	Y           int    `gorm:"not null"`
	Z           int    `gorm:"not null"`
	FillColor   string `gorm:"type:char(7);not null"`
	EdgeColor   string `gorm:"type:char(7);not null"`
}

// TableName specifies the database table name for packed items.
func (PackedItemDTO) TableName() string {
	return "packed_items"
}

// fromDomain converts an order aggregate to its database representation,
// children included.
func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{ID: o.ID()}

	if date, ok := o.Date(); ok {
		dto.Date = &date
	}
	if dest, ok := o.Destination(); ok {
		dto.DestinationName = dest.Name()
		dto.Destination = addressFromDomain(dest.Address())
	}
	if c := o.Customer(); c != nil {
		number := c.ID()
		dto.CustomerNumber = &number
		dto.CustomerName = c.Name()
		dto.CustomerAddress = addressFromDomain(c.Address())
		dto.BillingAddress = addressFromDomain(c.BillingAddress())
	}

	for i, item := range o.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			OrderID:     dto.ID,
			Seq:         i,
			Reference:   item.Reference(),
			Description: item.Description(),
			Depth:       item.Depth(),
			Height:      item.Height(),
			Length:      item.Length(),
		})
	}

	for i, s := range o.Shipments() {
		dto.Shipments = append(dto.Shipments, shipmentFromDomain(dto.ID, i, s))
	}

	return dto
}

func shipmentFromDomain(orderID, seq int, s *shipment.Shipment) ShipmentDTO {
	dto := ShipmentDTO{
		ID:      s.ID().Bytes(),
		OrderID: orderID,
		Seq:     seq,
		Status:  int(s.Status()),
	}

	for i, c := range s.Containers() {
		containerDTO := ContainerDTO{
			ShipmentID: dto.ID,
			Seq:        i,
			Reference:  c.Reference(),
			FillColor:  c.FillColor().String(),
			EdgeColor:  c.EdgeColor().String(),
			Closed:     c.IsClosed(),
		}
		for j, p := range c.PackedItems() {
			item := p.Item()
			containerDTO.Items = append(containerDTO.Items, PackedItemDTO{
				Seq:         j,
				Reference:   item.Reference(),
				Description: item.Description(),
				Depth:       item.Depth(),
				Height:      item.Height(),
				Length:      item.Length(),
				X:           p.Position().X(),
				Y:           p.Position().Y(),
				Z:           p.Position().Z(),
				FillColor:   p.FillColor().String(),
				EdgeColor:   p.EdgeColor().String(),
			})
		}
		dto.Containers = append(dto.Containers, containerDTO)
	}

	return dto
}

func addressFromDomain(a party.Address) AddressDTO {
	return AddressDTO{
		Street:  a.Street(),
		City:    a.City(),
		Country: a.Country(),
		State:   a.State(),
		Number:  a.Number(),
	}
}

func (a AddressDTO) toDomain() party.Address {
	return party.NewAddress(a.Street, a.City, a.Country, a.State, a.Number)
}

// toDomain converts a database DTO to an order aggregate using the Restore
// constructors, so persisted rows go through the same invariants as new data.
// Children must be preloaded in seq order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	var date time.Time
	if dto.Date != nil {
		date = *dto.Date
	}

	var destination *party.Person
	if dto.DestinationName != "" {
		person, err := party.NewPerson(dto.DestinationName, dto.Destination.toDomain())
		if err != nil {
			return nil, err
		}
		destination = &person
	}

	var customer *party.Customer
	if dto.CustomerNumber != nil {
		c, err := party.RestoreCustomer(*dto.CustomerNumber, dto.CustomerName,
			dto.CustomerAddress.toDomain(), dto.BillingAddress.toDomain())
		if err != nil {
			return nil, err
		}
		customer = c
	}

	items := make([]*packing.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := packing.NewItem(itemDTO.Reference, itemDTO.Description, itemDTO.Depth, itemDTO.Height, itemDTO.Length)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	shipments := make([]*shipment.Shipment, 0, len(dto.Shipments))
	for _, shipmentDTO := range dto.Shipments {
		s, err := shipmentToDomain(shipmentDTO)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return order.RestoreOrder(dto.ID, date, destination, customer, items, shipments)
}

func shipmentToDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	containers := make([]*packing.Container, 0, len(dto.Containers))
	for _, containerDTO := range dto.Containers {
		c, containerErr := containerToDomain(containerDTO)
		if containerErr != nil {
			return nil, containerErr
		}
		containers = append(containers, c)
	}

	return shipment.RestoreShipment(id, shipment.Status(dto.Status), containers)
}

func containerToDomain(dto ContainerDTO) (*packing.Container, error) {
	fill, fillErr := kernel.ColorFromHex(dto.FillColor)
	edge, edgeErr := kernel.ColorFromHex(dto.EdgeColor)
	if err := errors.Join(fillErr, edgeErr); err != nil {
		return nil, err
	}

	items := make([]packing.PackedItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		p, err := packedItemToDomain(itemDTO)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}

	return packing.RestoreContainer(dto.Reference, fill, edge, items, dto.Closed)
}

func packedItemToDomain(dto PackedItemDTO) (packing.PackedItem, error) {
	item, err := packing.NewItem(dto.Reference, dto.Description, dto.Depth, dto.Height, dto.Length)
	if err != nil {
		return packing.PackedItem{}, err
	}

	pos, posErr := kernel.NewPosition(dto.X, dto.Y, dto.Z)
	fill, fillErr := kernel.ColorFromHex(dto.FillColor)
	edge, edgeErr := kernel.ColorFromHex(dto.EdgeColor)
	if err = errors.Join(posErr, fillErr, edgeErr); err != nil {
		return packing.PackedItem{}, err
	}

	return packing.NewPackedItem(item, pos, fill, edge)
}
