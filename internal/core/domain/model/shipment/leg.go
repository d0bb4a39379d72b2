package shipment

import (
	"errors"
	"fmt"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrShipmentLegIsNotConstructed is returned when a ShipmentLeg was not
// created through NewShipmentLeg or RestoreShipmentLeg.
var ErrShipmentLegIsNotConstructed = errors.New("ShipmentLeg must be created via NewShipmentLeg constructor")

// ShipmentLeg is one point-to-point segment of a multi-warehouse route.
// Legs are ordered by their 1-based sequence and are mutated only through the
// owning Shipment aggregate.
type ShipmentLeg struct {
	id       kernel.UUID
	sequence int

	fromWarehouseID kernel.UUID
	toWarehouseID   kernel.UUID

	status LegStatus

	scheduledDepartureDate *time.Time
	actualDepartureDate    *time.Time
	scheduledArrivalDate   *time.Time
	actualArrivalDate      *time.Time
	unloadedDate           *time.Time

	distance *decimal.Decimal

	isConstructed bool
}

// NewShipmentLeg creates a leg in LegPending status. The sequence is persisted
// as given by the caller; contiguity is not validated server-side.
func NewShipmentLeg(
	id kernel.UUID,
	sequence int,
	fromWarehouseID, toWarehouseID kernel.UUID,
	scheduledDeparture, scheduledArrival *time.Time,
	distance *decimal.Decimal,
) (*ShipmentLeg, error) {
	if err := errors.Join(id.Validate(), fromWarehouseID.Validate(), toWarehouseID.Validate()); err != nil {
		return nil, err
	}
	if sequence <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("leg sequence",
			fmt.Errorf("%d is not greater than 0", sequence))
	}

	return &ShipmentLeg{
		id:                     id,
		sequence:               sequence,
		fromWarehouseID:        fromWarehouseID,
		toWarehouseID:          toWarehouseID,
		status:                 LegPending,
		scheduledDepartureDate: scheduledDeparture,
		scheduledArrivalDate:   scheduledArrival,
		distance:               distance,
		isConstructed:          true,
	}, nil
}

// RestoreShipmentLeg reconstructs a leg from persistence.
func RestoreShipmentLeg(
	id kernel.UUID,
	sequence int,
	fromWarehouseID, toWarehouseID kernel.UUID,
	status LegStatus,
	scheduledDeparture, actualDeparture, scheduledArrival, actualArrival, unloaded *time.Time,
	distance *decimal.Decimal,
) (*ShipmentLeg, error) {
	leg, err := NewShipmentLeg(id, sequence, fromWarehouseID, toWarehouseID,
		scheduledDeparture, scheduledArrival, distance)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	leg.status = status
	leg.actualDepartureDate = actualDeparture
	leg.actualArrivalDate = actualArrival
	leg.unloadedDate = unloaded
	return leg, nil
}

// Validate ensures the leg was created through a constructor.
func (l *ShipmentLeg) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrShipmentLegIsNotConstructed
	}
	return nil
}

// ID returns the leg's unique identifier.
func (l *ShipmentLeg) ID() kernel.UUID {
	return l.id
}

// Sequence returns the leg's 1-based position in the route.
func (l *ShipmentLeg) Sequence() int {
	return l.sequence
}

// FromWarehouseID returns the leg's starting warehouse.
func (l *ShipmentLeg) FromWarehouseID() kernel.UUID {
	return l.fromWarehouseID
}

// ToWarehouseID returns the leg's destination warehouse.
func (l *ShipmentLeg) ToWarehouseID() kernel.UUID {
	return l.toWarehouseID
}

// Status returns the leg's current lifecycle state.
func (l *ShipmentLeg) Status() LegStatus {
	return l.status
}

// ScheduledDepartureDate returns the planned departure, if any.
func (l *ShipmentLeg) ScheduledDepartureDate() *time.Time {
	return l.scheduledDepartureDate
}

// ActualDepartureDate returns when the leg actually started, if it has.
func (l *ShipmentLeg) ActualDepartureDate() *time.Time {
	return l.actualDepartureDate
}

// ScheduledArrivalDate returns the planned arrival, if any.
func (l *ShipmentLeg) ScheduledArrivalDate() *time.Time {
	return l.scheduledArrivalDate
}

// ActualArrivalDate returns when the leg actually arrived, if it has.
func (l *ShipmentLeg) ActualArrivalDate() *time.Time {
	return l.actualArrivalDate
}

// UnloadedDate returns when the leg's goods were unloaded, if they were.
func (l *ShipmentLeg) UnloadedDate() *time.Time {
	return l.unloadedDate
}

// Distance returns the leg's distance, if known.
func (l *ShipmentLeg) Distance() *decimal.Decimal {
	return l.distance
}

// transitionTo advances the leg state machine and stamps the state's
// timestamp exactly once. Same-state transitions are no-ops.
func (l *ShipmentLeg) transitionTo(next LegStatus, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if l.status == next {
		return nil
	}
	if !l.status.CanTransitionTo(next) {
		return errs.NewInvalidStateError("shipment leg", l.id.String(),
			l.status.String(), "transition to "+next.String())
	}

	l.status = next
	l.stampFor(next, now)
	return nil
}

// stampFor records the per-state timestamp, if it was not recorded before.
func (l *ShipmentLeg) stampFor(status LegStatus, now time.Time) {
	switch status {
	case LegInTransit:
		if l.actualDepartureDate == nil {
			l.actualDepartureDate = &now
		}
	case LegArrived:
		if l.actualArrivalDate == nil {
			l.actualArrivalDate = &now
		}
	case LegUnloaded:
		if l.unloadedDate == nil {
			l.unloadedDate = &now
		}
	}
}
