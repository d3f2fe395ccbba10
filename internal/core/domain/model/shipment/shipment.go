package shipment

import (
	"errors"
	"fmt"
	"slices"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// CostPerContainer is the shipping rate charged for each container.
const CostPerContainer = 31.25

// ErrShipmentIsNotConstructed is returned when a zero-value Shipment is used.
var ErrShipmentIsNotConstructed = errs.NewValueIsRequiredError(
	"shipment must be created via NewShipment or RestoreShipment constructors")

// Shipment is a batch of sealed containers moving through the Status
// lifecycle. Containers are unique by reference.
//
// Shipment is not safe for concurrent use; it is owned by an order and
// guarded by the order's lock.
type Shipment struct {
	// id identifies the shipment within and across orders
	id kernel.UUID

	// status is the current lifecycle state
	status Status

	// containers holds sealed containers in insertion order
	containers []*packing.Container

	guard guard.ConstructorGuard
}

// Summary holds the figures reported for a shipment.
type Summary struct {
	ID         string
	Status     Status
	Containers int
	Items      int
	Cost       float64
}

// NewShipment creates an empty shipment awaiting treatment.
//
// Example:
//
//	s, err := shipment.NewShipment(kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	_ = s.ChangeStatus(shipment.InTreatment)
func NewShipment(id kernel.UUID) (*Shipment, error) {
	s := &Shipment{
		status: AwaitsTreatment,
		guard:  guard.NewConstructorGuard(),
	}

	if err := s.setID(id); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rebuilds a persisted shipment.
//
// Business Rules:
//   - status must be valid
//   - containers must be closed and unique by reference
//   - CLOSED, SHIPPED and RECEIVED shipments hold at least one container
func RestoreShipment(id kernel.UUID, status Status, containers []*packing.Container) (*Shipment, error) {
	s := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setStatus(status),
		s.setContainers(containers),
	); err != nil {
		return nil, err
	}

	if len(s.containers) == 0 && (status == Closed || status.IsDelivered()) {
		return nil, errs.NewOrderStateError(id.String(), fmt.Sprintf("%s shipment has no containers", status))
	}

	return s, nil
}

// ID returns the shipment identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Status returns the current status.
func (s *Shipment) Status() Status {
	return s.status
}

// IsEqual compares shipments by ID.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ChangeStatus moves the shipment to next.
//
// The transition must be in the Status table. Moving to CLOSED additionally
// requires at least one container and runs Validate on every container; the
// first failure is returned unwrapped. On any error the status is unchanged.
//
// Returns:
//   - nil on success
//   - *errs.OrderStateError for an illegal transition or an empty shipment
//   - *errs.ContainerError or *errs.PositionError from container validation
func (s *Shipment) ChangeStatus(next Status) error {
	if err := s.status.CanTransitionTo(next); err != nil {
		return s.withReference(err)
	}

	if next == Closed {
		if len(s.containers) == 0 {
			return errs.NewOrderStateError(s.id.String(), "cannot close a shipment without containers")
		}
		if err := s.validateContainers(); err != nil {
			return err
		}
	}

	s.status = next
	return nil
}

// AddContainer appends a sealed container.
//
// Returns:
//   - true, nil: the container was added
//   - false, nil: a container with the same reference is already present
//   - false, *errs.OrderStateError: the status is not IN_TREATMENT (checked first)
//   - false, *errs.ContainerError: the container is nil or still open
func (s *Shipment) AddContainer(c *packing.Container) (bool, error) {
	if err := s.checkEditable(); err != nil {
		return false, err
	}
	if err := validateContainerArg(c); err != nil {
		return false, err
	}
	if !c.IsClosed() {
		return false, errs.NewContainerError(c.Reference(), "container must be closed before it is added to a shipment")
	}

	if s.ExistsContainer(c.Reference()) {
		return false, nil
	}

	s.containers = append(s.containers, c)
	return true, nil
}

// RemoveContainer removes the container with the same reference as c.
// A missing container returns false, nil. The status rule of AddContainer
// applies.
func (s *Shipment) RemoveContainer(c *packing.Container) (bool, error) {
	if err := s.checkEditable(); err != nil {
		return false, err
	}
	if err := validateContainerArg(c); err != nil {
		return false, err
	}
	return s.removeContainer(c.Reference()), nil
}

// RemoveContainerByReference is RemoveContainer for callers that only know
// the container reference.
func (s *Shipment) RemoveContainerByReference(reference string) (bool, error) {
	if err := s.checkEditable(); err != nil {
		return false, err
	}
	return s.removeContainer(reference), nil
}

// ExistsContainer reports whether a container with the reference is present.
func (s *Shipment) ExistsContainer(reference string) bool {
	return s.indexOf(reference) >= 0
}

// FindContainer returns the container with the given reference.
func (s *Shipment) FindContainer(reference string) (*packing.Container, bool) {
	idx := s.indexOf(reference)
	if idx < 0 {
		return nil, false
	}
	return s.containers[idx], true
}

// Containers returns the containers in insertion order. The slice is a copy;
// the containers are shared and meant for reading.
func (s *Shipment) Containers() []*packing.Container {
	return slices.Clone(s.containers)
}

func (s *Shipment) NumberOfContainers() int {
	return len(s.containers)
}

// ContainsItem reports whether any container holds a packed item with the reference.
func (s *Shipment) ContainsItem(reference string) bool {
	for _, c := range s.containers {
		if c.ContainsItem(reference) {
			return true
		}
	}
	return false
}

// Validate checks construction and validates every container, returning
// the first container error unwrapped.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	if err := s.guard.Validate(ErrShipmentIsNotConstructed); err != nil {
		return err
	}
	return s.validateContainers()
}

// Cost is CostPerContainer times the number of containers, whatever the status.
func (s *Shipment) Cost() float64 {
	return CostPerContainer * float64(len(s.containers))
}

// Summary reports the shipment figures.
func (s *Shipment) Summary() Summary {
	items := 0
	for _, c := range s.containers {
		items += c.NumberOfItems()
	}

	return Summary{
		ID:         s.id.String(),
		Status:     s.status,
		Containers: len(s.containers),
		Items:      items,
		Cost:       s.Cost(),
	}
}

func (s *Shipment) String() string {
	return fmt.Sprintf("Shipment(%s, %s, %d containers)", s.id, s.status, len(s.containers))
}

func (s *Shipment) checkEditable() error {
	if !s.status.IsEditable() {
		return errs.NewOrderStateError(s.id.String(),
			fmt.Sprintf("containers can only change while %s, status is %s", InTreatment, s.status))
	}
	return nil
}

func (s *Shipment) validateContainers() error {
	for _, c := range s.containers {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Shipment) removeContainer(reference string) bool {
	idx := s.indexOf(reference)
	if idx < 0 {
		return false
	}
	s.containers = slices.Delete(s.containers, idx, idx+1)
	return true
}

func (s *Shipment) withReference(err error) error {
	var stateErr *errs.OrderStateError
	if errors.As(err, &stateErr) && stateErr.Reference == "" {
		stateErr.Reference = s.id.String()
	}
	return err
}

func (s *Shipment) indexOf(reference string) int {
	return slices.IndexFunc(s.containers, func(c *packing.Container) bool {
		return c.Reference() == reference
	})
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setContainers(containers []*packing.Container) error {
	for _, c := range containers {
		if err := validateContainerArg(c); err != nil {
			return err
		}
		if !c.IsClosed() {
			return errs.NewContainerError(c.Reference(), "shipment holds an open container")
		}
		if slices.ContainsFunc(s.containers, func(other *packing.Container) bool {
			return other.Reference() == c.Reference()
		}) {
			return errs.NewContainerError(c.Reference(), "container is listed twice")
		}
		s.containers = append(s.containers, c)
	}
	return nil
}

func validateContainerArg(c *packing.Container) error {
	if c == nil {
		return errs.NewContainerError("", "container is required")
	}
	if err := c.Validate(); errors.Is(err, packing.ErrContainerIsNotConstructed) {
		return errs.NewContainerErrorWithCause("", "container is required", err)
	}
	return nil
}
