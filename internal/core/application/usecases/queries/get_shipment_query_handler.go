package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves one shipment with its items and legs.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single shipment lookups.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFound when no shipment
// matches.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	resp, err := h.loadShipment(ctx, query)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	resp.Items, err = h.loadItems(ctx, resp.ID)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	resp.Legs, err = h.loadLegs(ctx, resp.ID)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return resp, nil
}

func (h GetShipmentQueryHandler) loadShipment(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	base := `
		SELECT
			id,
			tracking_number,
			status,
			origin_warehouse_id,
			destination_warehouse_id,
			driver_id,
			destination_address,
			recipient_name,
			recipient_phone,
			total_value,
			total_weight,
			driver_payment,
			fuel_cost,
			other_expenses,
			company_profit,
			scheduled_pickup_date,
			actual_pickup_date,
			scheduled_delivery_date,
			actual_delivery_date,
			is_multi_leg
		FROM shipments`

	var row *sql.Row
	if shipmentID := query.ShipmentID(); shipmentID != nil {
		row = h.db.WithContext(ctx).Raw(base+` WHERE id = ?`, shipmentID.String()).Row()
	} else {
		row = h.db.WithContext(ctx).Raw(base+` WHERE tracking_number = ?`, query.TrackingNumber()).Row()
	}

	var resp GetShipmentQueryResponse
	var id, originID uuid.UUID
	var destinationID, driverID uuid.NullUUID
	var status int
	var driverPayment, fuelCost, otherExpenses, companyProfit decimal.NullDecimal
	var scheduledPickup, actualPickup, scheduledDelivery, actualDelivery sql.NullTime

	err := row.Scan(
		&id,
		&resp.TrackingNumber,
		&status,
		&originID,
		&destinationID,
		&driverID,
		&resp.DestinationAddress,
		&resp.RecipientName,
		&resp.RecipientPhone,
		&resp.TotalValue,
		&resp.TotalWeight,
		&driverPayment,
		&fuelCost,
		&otherExpenses,
		&companyProfit,
		&scheduledPickup,
		&actualPickup,
		&scheduledDelivery,
		&actualDelivery,
		&resp.IsMultiLeg,
	)
	if errors.Is(err, sql.ErrNoRows) {
		if shipmentID := query.ShipmentID(); shipmentID != nil {
			return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipmentID", shipmentID)
		}
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("trackingNumber", query.TrackingNumber())
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	resp.OriginID, err = kernel.UUIDFromBytes(originID[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	resp.DestinationID, err = optionalUUID(destinationID)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	resp.DriverID, err = optionalUUID(driverID)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	resp.Status = shipment.Status(status)
	resp.DriverPayment = optionalDecimal(driverPayment)
	resp.FuelCost = optionalDecimal(fuelCost)
	resp.OtherExpenses = optionalDecimal(otherExpenses)
	resp.CompanyProfit = optionalDecimal(companyProfit)
	resp.ScheduledPickupDate = optionalTime(scheduledPickup)
	resp.ActualPickupDate = optionalTime(actualPickup)
	resp.ScheduledDeliveryDate = optionalTime(scheduledDelivery)
	resp.ActualDeliveryDate = optionalTime(actualDelivery)

	return resp, nil
}

func (h GetShipmentQueryHandler) loadItems(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]ShipmentItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			unit_price,
			total_price
		FROM shipment_items
		WHERE shipment_id = ?
		ORDER BY id
	`, shipmentID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ShipmentItemResponse, 0)
	for rows.Next() {
		var item ShipmentItemResponse
		var id, productID uuid.UUID

		err = rows.Scan(&id, &productID, &item.Quantity, &item.UnitPrice, &item.TotalPrice)
		if err != nil {
			return nil, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		item.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetShipmentQueryHandler) loadLegs(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]ShipmentLegResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sequence,
			from_warehouse_id,
			to_warehouse_id,
			status,
			scheduled_departure_date,
			actual_departure_date,
			scheduled_arrival_date,
			actual_arrival_date,
			unloaded_date,
			distance
		FROM shipment_legs
		WHERE shipment_id = ?
		ORDER BY sequence
	`, shipmentID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	legs := make([]ShipmentLegResponse, 0)
	for rows.Next() {
		var leg ShipmentLegResponse
		var id, fromID, toID uuid.UUID
		var status int
		var scheduledDeparture, actualDeparture, scheduledArrival, actualArrival, unloaded sql.NullTime
		var distance decimal.NullDecimal

		err = rows.Scan(
			&id,
			&leg.Sequence,
			&fromID,
			&toID,
			&status,
			&scheduledDeparture,
			&actualDeparture,
			&scheduledArrival,
			&actualArrival,
			&unloaded,
			&distance,
		)
		if err != nil {
			return nil, err
		}

		leg.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		leg.FromWarehouseID, err = kernel.UUIDFromBytes(fromID[:])
		if err != nil {
			return nil, err
		}
		leg.ToWarehouseID, err = kernel.UUIDFromBytes(toID[:])
		if err != nil {
			return nil, err
		}
		leg.Status = shipment.LegStatus(status)
		leg.ScheduledDeparture = optionalTime(scheduledDeparture)
		leg.ActualDeparture = optionalTime(actualDeparture)
		leg.ScheduledArrival = optionalTime(scheduledArrival)
		leg.ActualArrival = optionalTime(actualArrival)
		leg.UnloadedDate = optionalTime(unloaded)
		leg.Distance = optionalDecimal(distance)
		legs = append(legs, leg)
	}

	return legs, rows.Err()
}
