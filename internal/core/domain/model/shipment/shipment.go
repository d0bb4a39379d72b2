package shipment

import (
	"errors"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrNoItems is returned when attempting to create a shipment without order lines.
	ErrNoItems = errs.NewValueIsRequiredError("shipment items")

	// ErrTrackingNumberIsRequired is returned when the tracking number is empty.
	ErrTrackingNumberIsRequired = errs.NewValueIsRequiredError("tracking number")
)

// Shipment is the aggregate root for one freight movement. It exclusively owns
// its order lines (items) and route legs; stock records, queue entries, and
// ledger transactions reference it by id only.
//
// The aggregate enforces:
//   - the lifecycle transition table (see Status), with per-state timestamps
//     stamped exactly once
//   - the linear leg state machine, including the completion cascade
//     (leg N completed advances leg N+1, or delivers the shipment)
//   - settlement preconditions (delivered, driver assigned)
//
// Transitions never fire separately-committed side effects: every cascading
// update mutates this aggregate in memory and is persisted by the caller in
// one transaction.
type Shipment struct {
	id             kernel.UUID
	trackingNumber string

	originWarehouseID      kernel.UUID
	destinationWarehouseID *kernel.UUID
	driverID               *kernel.UUID

	status Status

	destinationAddress string
	recipientName      string
	recipientPhone     string

	totalValue  decimal.Decimal
	totalWeight decimal.Decimal

	// Financial fields stay nil until settlement.
	driverPayment *decimal.Decimal
	fuelCost      *decimal.Decimal
	otherExpenses *decimal.Decimal
	companyProfit *decimal.Decimal

	scheduledPickupDate   *time.Time
	actualPickupDate      *time.Time
	scheduledDeliveryDate *time.Time
	actualDeliveryDate    *time.Time

	isMultiLeg bool

	items []*ShipmentItem
	legs  []*ShipmentLeg

	isConstructed bool
}

// NewShipment creates a shipment in Pending status. Totals are computed from
// the items: totalValue is the sum of line totals, totalWeight is the sum of
// quantities (one unit weighs one weight unit; products carry no weight
// field). The shipment is multi-leg iff legs are supplied.
func NewShipment(
	id kernel.UUID,
	trackingNumber string,
	originWarehouseID kernel.UUID,
	destinationWarehouseID *kernel.UUID,
	items []*ShipmentItem,
	legs []*ShipmentLeg,
) (*Shipment, error) {
	if err := errors.Join(id.Validate(), originWarehouseID.Validate()); err != nil {
		return nil, err
	}
	if trackingNumber == "" {
		return nil, ErrTrackingNumberIsRequired
	}
	if destinationWarehouseID != nil {
		if err := destinationWarehouseID.Validate(); err != nil {
			return nil, err
		}
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	totalValue := decimal.Zero
	totalWeight := decimal.Zero
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		totalValue = totalValue.Add(item.TotalPrice())
		totalWeight = totalWeight.Add(decimal.NewFromInt(int64(item.Quantity())))
	}

	for _, leg := range legs {
		if err := leg.Validate(); err != nil {
			return nil, err
		}
	}

	return &Shipment{
		id:                     id,
		trackingNumber:         trackingNumber,
		originWarehouseID:      originWarehouseID,
		destinationWarehouseID: destinationWarehouseID,
		status:                 StatusPending,
		totalValue:             totalValue,
		totalWeight:            totalWeight,
		isMultiLeg:             len(legs) > 0,
		items:                  items,
		legs:                   legs,
		isConstructed:          true,
	}, nil
}

// Snapshot carries every persisted shipment field for RestoreShipment.
type Snapshot struct {
	ID                     kernel.UUID
	TrackingNumber         string
	OriginWarehouseID      kernel.UUID
	DestinationWarehouseID *kernel.UUID
	DriverID               *kernel.UUID
	Status                 Status
	DestinationAddress     string
	RecipientName          string
	RecipientPhone         string
	TotalValue             decimal.Decimal
	TotalWeight            decimal.Decimal
	DriverPayment          *decimal.Decimal
	FuelCost               *decimal.Decimal
	OtherExpenses          *decimal.Decimal
	CompanyProfit          *decimal.Decimal
	ScheduledPickupDate    *time.Time
	ActualPickupDate       *time.Time
	ScheduledDeliveryDate  *time.Time
	ActualDeliveryDate     *time.Time
	IsMultiLeg             bool
	Items                  []*ShipmentItem
	Legs                   []*ShipmentLeg
}

// RestoreShipment reconstructs a shipment aggregate from persistence.
func RestoreShipment(s Snapshot) (*Shipment, error) {
	shp, err := NewShipment(s.ID, s.TrackingNumber, s.OriginWarehouseID,
		s.DestinationWarehouseID, s.Items, s.Legs)
	if err != nil {
		return nil, err
	}
	if err = s.Status.Validate(); err != nil {
		return nil, err
	}
	if s.DriverID != nil {
		if err = s.DriverID.Validate(); err != nil {
			return nil, err
		}
	}

	shp.driverID = s.DriverID
	shp.status = s.Status
	shp.destinationAddress = s.DestinationAddress
	shp.recipientName = s.RecipientName
	shp.recipientPhone = s.RecipientPhone
	shp.totalValue = s.TotalValue
	shp.totalWeight = s.TotalWeight
	shp.driverPayment = s.DriverPayment
	shp.fuelCost = s.FuelCost
	shp.otherExpenses = s.OtherExpenses
	shp.companyProfit = s.CompanyProfit
	shp.scheduledPickupDate = s.ScheduledPickupDate
	shp.actualPickupDate = s.ActualPickupDate
	shp.scheduledDeliveryDate = s.ScheduledDeliveryDate
	shp.actualDeliveryDate = s.ActualDeliveryDate
	shp.isMultiLeg = s.IsMultiLeg
	return shp, nil
}

// Validate ensures the shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// SetRecipient records the delivery address and recipient contact details.
func (s *Shipment) SetRecipient(address, name, phone string) {
	s.destinationAddress = address
	s.recipientName = name
	s.recipientPhone = phone
}

// SetSchedule records the planned pickup and delivery dates.
func (s *Shipment) SetSchedule(pickup, delivery *time.Time) {
	s.scheduledPickupDate = pickup
	s.scheduledDeliveryDate = delivery
}

// AssignDriver sets the transporting driver. Availability of the driver is the
// caller's concern; the shipment only rejects assignment in terminal states.
func (s *Shipment) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if s.status.IsTerminal() {
		return errs.NewInvalidStateError("shipment", s.id.String(),
			s.status.String(), "assign driver")
	}

	s.driverID = &driverID
	return nil
}

// ChangeStatus moves the shipment through the lifecycle transition table.
//
// Side effects on entering a state (each stamped at most once):
//   - Loading: actualPickupDate
//   - Delivered: actualDeliveryDate
//   - InTransit on a multi-leg shipment: leg #1 advances from pending to
//     in_transit with its departure stamped
//
// A same-state transition is an idempotent no-op.
func (s *Shipment) ChangeStatus(next Status, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s.status == next {
		return nil
	}
	if !s.status.CanTransitionTo(next) {
		return errs.NewInvalidStateError("shipment", s.id.String(),
			s.status.String(), "transition to "+next.String())
	}

	if err := s.applyStatusEffects(next, now); err != nil {
		return err
	}
	s.status = next
	return nil
}

// ForceStatus sets the status without consulting the transition table. This is
// the deliberately unchecked escape hatch behind the status-override endpoint;
// timestamps are still stamped once.
func (s *Shipment) ForceStatus(next Status, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s.status == next {
		return nil
	}

	if err := s.applyStatusEffects(next, now); err != nil {
		return err
	}
	s.status = next
	return nil
}

func (s *Shipment) applyStatusEffects(next Status, now time.Time) error {
	switch next {
	case StatusLoading:
		if s.actualPickupDate == nil {
			s.actualPickupDate = &now
		}
	case StatusDelivered:
		if s.actualDeliveryDate == nil {
			s.actualDeliveryDate = &now
		}
	case StatusInTransit:
		if s.isMultiLeg {
			if first := s.FindLeg(1); first != nil && first.Status() == LegPending {
				if err := first.transitionTo(LegInTransit, now); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// ChangeLegStatus advances the leg with the given sequence, including the
// completion cascade: completing leg N advances a pending leg N+1 to
// in_transit, and completing the last leg delivers the whole shipment. The
// cascade mutates only this aggregate, so one Update persists it atomically.
func (s *Shipment) ChangeLegStatus(sequence int, next LegStatus, now time.Time) error {
	leg := s.FindLeg(sequence)
	if leg == nil {
		return errs.NewObjectNotFoundError("shipment leg", sequence)
	}

	if err := leg.transitionTo(next, now); err != nil {
		return err
	}

	if next != LegCompleted {
		return nil
	}

	if nextLeg := s.FindLeg(sequence + 1); nextLeg != nil {
		if nextLeg.Status() == LegPending {
			return nextLeg.transitionTo(LegInTransit, now)
		}
		return nil
	}

	// Last leg completed: the shipment is delivered.
	return s.ChangeStatus(StatusDelivered, now)
}

// FindLeg returns the leg with the given sequence, or nil.
func (s *Shipment) FindLeg(sequence int) *ShipmentLeg {
	for _, leg := range s.legs {
		if leg.Sequence() == sequence {
			return leg
		}
	}
	return nil
}

// Settle records the computed settlement figures. Legal only once the
// shipment is delivered and has an assigned driver.
func (s *Shipment) Settle(driverPayment, fuelCost, otherExpenses, companyProfit decimal.Decimal) error {
	if s.status != StatusDelivered {
		return errs.NewInvalidStateError("shipment", s.id.String(),
			s.status.String(), "settle")
	}
	if s.driverID == nil {
		return errs.ErrMissingDriver
	}

	s.driverPayment = &driverPayment
	s.fuelCost = &fuelCost
	s.otherExpenses = &otherExpenses
	s.companyProfit = &companyProfit
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingNumber returns the human-readable tracking number.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// OriginWarehouseID returns the warehouse the shipment departs from.
func (s *Shipment) OriginWarehouseID() kernel.UUID {
	return s.originWarehouseID
}

// DestinationWarehouseID returns the final warehouse, or nil for address-only
// deliveries and routes resolved leg-by-leg.
func (s *Shipment) DestinationWarehouseID() *kernel.UUID {
	return s.destinationWarehouseID
}

// DriverID returns the assigned driver, or nil.
func (s *Shipment) DriverID() *kernel.UUID {
	return s.driverID
}

// Status returns the shipment's current lifecycle state.
func (s *Shipment) Status() Status {
	return s.status
}

// DestinationAddress returns the free-form delivery address, if any.
func (s *Shipment) DestinationAddress() string {
	return s.destinationAddress
}

// RecipientName returns the recipient contact name, if any.
func (s *Shipment) RecipientName() string {
	return s.recipientName
}

// RecipientPhone returns the recipient contact phone, if any.
func (s *Shipment) RecipientPhone() string {
	return s.recipientPhone
}

// TotalValue returns the summed value of all order lines.
func (s *Shipment) TotalValue() decimal.Decimal {
	return s.totalValue
}

// TotalWeight returns the summed quantity of all order lines.
func (s *Shipment) TotalWeight() decimal.Decimal {
	return s.totalWeight
}

// DriverPayment returns the settled driver payment, or nil before settlement.
func (s *Shipment) DriverPayment() *decimal.Decimal {
	return s.driverPayment
}

// FuelCost returns the settled fuel cost, or nil before settlement.
func (s *Shipment) FuelCost() *decimal.Decimal {
	return s.fuelCost
}

// OtherExpenses returns the settled other expenses, or nil before settlement.
func (s *Shipment) OtherExpenses() *decimal.Decimal {
	return s.otherExpenses
}

// CompanyProfit returns the settled company profit, or nil before settlement.
func (s *Shipment) CompanyProfit() *decimal.Decimal {
	return s.companyProfit
}

// ScheduledPickupDate returns the planned pickup date, if any.
func (s *Shipment) ScheduledPickupDate() *time.Time {
	return s.scheduledPickupDate
}

// ActualPickupDate returns when loading actually started, if it has.
func (s *Shipment) ActualPickupDate() *time.Time {
	return s.actualPickupDate
}

// ScheduledDeliveryDate returns the planned delivery date, if any.
func (s *Shipment) ScheduledDeliveryDate() *time.Time {
	return s.scheduledDeliveryDate
}

// ActualDeliveryDate returns when the shipment was delivered, if it has been.
func (s *Shipment) ActualDeliveryDate() *time.Time {
	return s.actualDeliveryDate
}

// IsMultiLeg reports whether the shipment routes through ordered legs.
func (s *Shipment) IsMultiLeg() bool {
	return s.isMultiLeg
}

// Items returns the shipment's order lines.
func (s *Shipment) Items() []*ShipmentItem {
	return s.items
}

// Legs returns the shipment's route legs in storage order.
func (s *Shipment) Legs() []*ShipmentLeg {
	return s.legs
}
