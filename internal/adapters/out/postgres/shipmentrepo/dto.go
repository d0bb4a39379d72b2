// Package shipmentrepo implements the repository pattern for the shipment
// aggregate, handling the conversion between the aggregate root with its
// items and legs and their relational representation.
package shipmentrepo

import (
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Items and legs are owned rows cascading on delete.
type ShipmentDTO struct {
	ID                     uuid.UUID           `gorm:"type:uuid;primaryKey"`
	TrackingNumber         string              `gorm:"type:varchar(64);not null;uniqueIndex"`
	Status                 int                 `gorm:"type:int;not null;index"`
	OriginWarehouseID      uuid.UUID           `gorm:"type:uuid;not null;index"`
	DestinationWarehouseID *uuid.UUID          `gorm:"type:uuid;index"`
	DriverID               *uuid.UUID          `gorm:"type:uuid;index"`
	DestinationAddress     string              `gorm:"type:varchar(512)"`
	RecipientName          string              `gorm:"type:varchar(255)"`
	RecipientPhone         string              `gorm:"type:varchar(64)"`
	TotalValue             decimal.Decimal     `gorm:"type:decimal(14,2);not null"`
	TotalWeight            decimal.Decimal     `gorm:"type:decimal(14,2);not null"`
	DriverPayment          *decimal.Decimal    `gorm:"type:decimal(14,2)"`
	FuelCost               *decimal.Decimal    `gorm:"type:decimal(14,2)"`
	OtherExpenses          *decimal.Decimal    `gorm:"type:decimal(14,2)"`
	CompanyProfit          *decimal.Decimal    `gorm:"type:decimal(14,2)"`
	ScheduledPickupDate    *time.Time          `gorm:"type:timestamptz"`
	ActualPickupDate       *time.Time          `gorm:"type:timestamptz"`
	ScheduledDeliveryDate  *time.Time          `gorm:"type:timestamptz"`
	ActualDeliveryDate     *time.Time          `gorm:"type:timestamptz"`
	IsMultiLeg             bool                `gorm:"not null"`
	Items                  []ShipmentItemDTO   `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	Legs                   []ShipmentLegDTO    `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	CreatedAt              time.Time           `gorm:"type:timestamptz;not null"`
	UpdatedAt              time.Time           `gorm:"type:timestamptz;not null"`
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ShipmentItemDTO represents one order line of a shipment.
type ShipmentItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"type:int;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName overrides GORM's default naming to use "shipment_items".
func (ShipmentItemDTO) TableName() string {
	return "shipment_items"
}

// ShipmentLegDTO represents one route segment of a multi-leg shipment.
type ShipmentLegDTO struct {
	ID                     uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ShipmentID             uuid.UUID        `gorm:"type:uuid;not null;index"`
	Sequence               int              `gorm:"type:int;not null"`
	FromWarehouseID        uuid.UUID        `gorm:"type:uuid;not null"`
	ToWarehouseID          uuid.UUID        `gorm:"type:uuid;not null"`
	Status                 int              `gorm:"type:int;not null"`
	ScheduledDepartureDate *time.Time       `gorm:"type:timestamptz"`
	ActualDepartureDate    *time.Time       `gorm:"type:timestamptz"`
	ScheduledArrivalDate   *time.Time       `gorm:"type:timestamptz"`
	ActualArrivalDate      *time.Time       `gorm:"type:timestamptz"`
	UnloadedDate           *time.Time       `gorm:"type:timestamptz"`
	Distance               *decimal.Decimal `gorm:"type:decimal(14,2)"`
}

// TableName overrides GORM's default naming to use "shipment_legs".
func (ShipmentLegDTO) TableName() string {
	return "shipment_legs"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	shipmentID := aggregate.ID().Bytes()

	items := make([]ShipmentItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ShipmentItemDTO{
			ID:         item.ID().Bytes(),
			ShipmentID: shipmentID,
			ProductID:  item.ProductID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
		})
	}

	legs := make([]ShipmentLegDTO, 0, len(aggregate.Legs()))
	for _, leg := range aggregate.Legs() {
		legs = append(legs, ShipmentLegDTO{
			ID:                     leg.ID().Bytes(),
			ShipmentID:             shipmentID,
			Sequence:               leg.Sequence(),
			FromWarehouseID:        leg.FromWarehouseID().Bytes(),
			ToWarehouseID:          leg.ToWarehouseID().Bytes(),
			Status:                 int(leg.Status()),
			ScheduledDepartureDate: leg.ScheduledDepartureDate(),
			ActualDepartureDate:    leg.ActualDepartureDate(),
			ScheduledArrivalDate:   leg.ScheduledArrivalDate(),
			ActualArrivalDate:      leg.ActualArrivalDate(),
			UnloadedDate:           leg.UnloadedDate(),
			Distance:               leg.Distance(),
		})
	}

	return ShipmentDTO{
		ID:                     shipmentID,
		TrackingNumber:         aggregate.TrackingNumber(),
		Status:                 int(aggregate.Status()),
		OriginWarehouseID:      aggregate.OriginWarehouseID().Bytes(),
		DestinationWarehouseID: optionalID(aggregate.DestinationWarehouseID()),
		DriverID:               optionalID(aggregate.DriverID()),
		DestinationAddress:     aggregate.DestinationAddress(),
		RecipientName:          aggregate.RecipientName(),
		RecipientPhone:         aggregate.RecipientPhone(),
		TotalValue:             aggregate.TotalValue(),
		TotalWeight:            aggregate.TotalWeight(),
		DriverPayment:          aggregate.DriverPayment(),
		FuelCost:               aggregate.FuelCost(),
		OtherExpenses:          aggregate.OtherExpenses(),
		CompanyProfit:          aggregate.CompanyProfit(),
		ScheduledPickupDate:    aggregate.ScheduledPickupDate(),
		ActualPickupDate:       aggregate.ActualPickupDate(),
		ScheduledDeliveryDate:  aggregate.ScheduledDeliveryDate(),
		ActualDeliveryDate:     aggregate.ActualDeliveryDate(),
		IsMultiLeg:             aggregate.IsMultiLeg(),
		Items:                  items,
		Legs:                   legs,
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	originID, err := kernel.UUIDFromBytes(dto.OriginWarehouseID[:])
	if err != nil {
		return nil, err
	}
	destinationID, err := optionalDomainID(dto.DestinationWarehouseID)
	if err != nil {
		return nil, err
	}
	driverID, err := optionalDomainID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	items := make([]*shipment.ShipmentItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	legs := make([]*shipment.ShipmentLeg, 0, len(dto.Legs))
	for _, legDTO := range dto.Legs {
		leg, legErr := legToDomain(legDTO)
		if legErr != nil {
			return nil, legErr
		}
		legs = append(legs, leg)
	}

	return shipment.RestoreShipment(shipment.Snapshot{
		ID:                     id,
		TrackingNumber:         dto.TrackingNumber,
		OriginWarehouseID:      originID,
		DestinationWarehouseID: destinationID,
		DriverID:               driverID,
		Status:                 shipment.Status(dto.Status),
		DestinationAddress:     dto.DestinationAddress,
		RecipientName:          dto.RecipientName,
		RecipientPhone:         dto.RecipientPhone,
		TotalValue:             dto.TotalValue,
		TotalWeight:            dto.TotalWeight,
		DriverPayment:          dto.DriverPayment,
		FuelCost:               dto.FuelCost,
		OtherExpenses:          dto.OtherExpenses,
		CompanyProfit:          dto.CompanyProfit,
		ScheduledPickupDate:    dto.ScheduledPickupDate,
		ActualPickupDate:       dto.ActualPickupDate,
		ScheduledDeliveryDate:  dto.ScheduledDeliveryDate,
		ActualDeliveryDate:     dto.ActualDeliveryDate,
		IsMultiLeg:             dto.IsMultiLeg,
		Items:                  items,
		Legs:                   legs,
	})
}

func itemToDomain(dto ShipmentItemDTO) (*shipment.ShipmentItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipmentItem(id, productID, dto.Quantity, dto.UnitPrice, dto.TotalPrice)
}

func legToDomain(dto ShipmentLegDTO) (*shipment.ShipmentLeg, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	fromID, err := kernel.UUIDFromBytes(dto.FromWarehouseID[:])
	if err != nil {
		return nil, err
	}
	toID, err := kernel.UUIDFromBytes(dto.ToWarehouseID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipmentLeg(
		id,
		dto.Sequence,
		fromID,
		toID,
		shipment.LegStatus(dto.Status),
		dto.ScheduledDepartureDate,
		dto.ActualDepartureDate,
		dto.ScheduledArrivalDate,
		dto.ActualArrivalDate,
		dto.UnloadedDate,
		dto.Distance,
	)
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalDomainID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
