package queries

import (
	"errors"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves one shipment with its items and legs, looked up
// either by id or by tracking number.
type GetShipmentQuery struct {
	shipmentID     *kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetShipmentQueryByID creates a lookup by shipment id.
func NewGetShipmentQueryByID(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		shipmentID: &shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewGetShipmentQueryByTrackingNumber creates a lookup by tracking number.
func NewGetShipmentQueryByTrackingNumber(trackingNumber string) (GetShipmentQuery, error) {
	if trackingNumber == "" {
		return GetShipmentQuery{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	return GetShipmentQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the id to look up, nil for tracking number lookups.
func (q GetShipmentQuery) ShipmentID() *kernel.UUID {
	return q.shipmentID
}

// TrackingNumber returns the tracking number to look up, empty for id lookups.
func (q GetShipmentQuery) TrackingNumber() string {
	return q.trackingNumber
}

// ShipmentItemResponse is one order line in the shipment read model.
type ShipmentItemResponse struct {
	ID         kernel.UUID
	ProductID  kernel.UUID
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// ShipmentLegResponse is one route leg in the shipment read model.
type ShipmentLegResponse struct {
	ID                 kernel.UUID
	Sequence           int
	FromWarehouseID    kernel.UUID
	ToWarehouseID      kernel.UUID
	Status             shipment.LegStatus
	ScheduledDeparture *time.Time
	ActualDeparture    *time.Time
	ScheduledArrival   *time.Time
	ActualArrival      *time.Time
	UnloadedDate       *time.Time
	Distance           *decimal.Decimal
}

// GetShipmentQueryResponse is the full shipment read model.
type GetShipmentQueryResponse struct {
	ID                    kernel.UUID
	TrackingNumber        string
	Status                shipment.Status
	OriginID              kernel.UUID
	DestinationID         *kernel.UUID
	DriverID              *kernel.UUID
	DestinationAddress    string
	RecipientName         string
	RecipientPhone        string
	TotalValue            decimal.Decimal
	TotalWeight           decimal.Decimal
	DriverPayment         *decimal.Decimal
	FuelCost              *decimal.Decimal
	OtherExpenses         *decimal.Decimal
	CompanyProfit         *decimal.Decimal
	ScheduledPickupDate   *time.Time
	ActualPickupDate      *time.Time
	ScheduledDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	IsMultiLeg            bool
	Items                 []ShipmentItemResponse
	Legs                  []ShipmentLegResponse
}
