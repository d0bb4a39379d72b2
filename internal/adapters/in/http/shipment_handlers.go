package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/commands"
	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/queries"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type shipmentItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type shipmentLegRequest struct {
	Sequence           int              `json:"sequence"`
	FromWarehouseID    string           `json:"fromWarehouseId"`
	ToWarehouseID      string           `json:"toWarehouseId"`
	ScheduledDeparture *time.Time       `json:"scheduledDeparture"`
	ScheduledArrival   *time.Time       `json:"scheduledArrival"`
	Distance           *decimal.Decimal `json:"distance"`
}

type createShipmentRequest struct {
	OriginWarehouseID      string                `json:"originWarehouseId"`
	DestinationWarehouseID string                `json:"destinationWarehouseId"`
	DriverID               string                `json:"driverId"`
	Items                  []shipmentItemRequest `json:"items"`
	Legs                   []shipmentLegRequest  `json:"legs"`
	DestinationAddress     string                `json:"destinationAddress"`
	RecipientName          string                `json:"recipientName"`
	RecipientPhone         string                `json:"recipientPhone"`
	ScheduledPickupDate    *time.Time            `json:"scheduledPickupDate"`
	ScheduledDeliveryDate  *time.Time            `json:"scheduledDeliveryDate"`
}

type assignDriverRequest struct {
	DriverID string `json:"driverId"`
}

type updateShipmentStatusRequest struct {
	Status string `json:"status"`
	Force  bool   `json:"force"`
}

type updateLegStatusRequest struct {
	Status string `json:"status"`
}

type unloadShipmentRequest struct {
	WarehouseID string `json:"warehouseId"`
}

type settleShipmentRequest struct {
	FuelCost      decimal.Decimal `json:"fuelCost"`
	OtherExpenses decimal.Decimal `json:"otherExpenses"`
}

type shipmentSummaryResponse struct {
	ID             string          `json:"id"`
	TrackingNumber string          `json:"trackingNumber"`
	Status         string          `json:"status"`
	OriginID       string          `json:"originId"`
	DestinationID  *string         `json:"destinationId"`
	DriverID       *string         `json:"driverId"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	TotalWeight    decimal.Decimal `json:"totalWeight"`
	IsMultiLeg     bool            `json:"isMultiLeg"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type shipmentItemResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"productId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type shipmentLegResponse struct {
	ID                 string           `json:"id"`
	Sequence           int              `json:"sequence"`
	FromWarehouseID    string           `json:"fromWarehouseId"`
	ToWarehouseID      string           `json:"toWarehouseId"`
	Status             string           `json:"status"`
	ScheduledDeparture *time.Time       `json:"scheduledDeparture"`
	ActualDeparture    *time.Time       `json:"actualDeparture"`
	ScheduledArrival   *time.Time       `json:"scheduledArrival"`
	ActualArrival      *time.Time       `json:"actualArrival"`
	UnloadedDate       *time.Time       `json:"unloadedDate"`
	Distance           *decimal.Decimal `json:"distance"`
}

type shipmentResponse struct {
	ID                    string                 `json:"id"`
	TrackingNumber        string                 `json:"trackingNumber"`
	Status                string                 `json:"status"`
	OriginID              string                 `json:"originId"`
	DestinationID         *string                `json:"destinationId"`
	DriverID              *string                `json:"driverId"`
	DestinationAddress    string                 `json:"destinationAddress"`
	RecipientName         string                 `json:"recipientName"`
	RecipientPhone        string                 `json:"recipientPhone"`
	TotalValue            decimal.Decimal        `json:"totalValue"`
	TotalWeight           decimal.Decimal        `json:"totalWeight"`
	DriverPayment         *decimal.Decimal       `json:"driverPayment"`
	FuelCost              *decimal.Decimal       `json:"fuelCost"`
	OtherExpenses         *decimal.Decimal       `json:"otherExpenses"`
	CompanyProfit         *decimal.Decimal       `json:"companyProfit"`
	ScheduledPickupDate   *time.Time             `json:"scheduledPickupDate"`
	ActualPickupDate      *time.Time             `json:"actualPickupDate"`
	ScheduledDeliveryDate *time.Time             `json:"scheduledDeliveryDate"`
	ActualDeliveryDate    *time.Time             `json:"actualDeliveryDate"`
	IsMultiLeg            bool                   `json:"isMultiLeg"`
	Items                 []shipmentItemResponse `json:"items"`
	Legs                  []shipmentLegResponse  `json:"legs"`
}

func (s *Server) handleCreateShipment(ctx echo.Context) error {
	var req createShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	shipmentID := kernel.NewUUID()

	originID, err := parseRequiredUUID(req.OriginWarehouseID, "originWarehouseId")
	if err != nil {
		return respondError(ctx, err)
	}
	destinationID, err := parseOptionalUUID(req.DestinationWarehouseID, "destinationWarehouseId")
	if err != nil {
		return respondError(ctx, err)
	}
	driverID, err := parseOptionalUUID(req.DriverID, "driverId")
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.ShipmentItemInput, len(req.Items))
	for i, item := range req.Items {
		productID, itemErr := parseRequiredUUID(item.ProductID, "items.productId")
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		items[i] = commands.ShipmentItemInput{ProductID: productID, Quantity: item.Quantity}
	}

	legs := make([]commands.ShipmentLegInput, len(req.Legs))
	for i, leg := range req.Legs {
		fromID, legErr := parseRequiredUUID(leg.FromWarehouseID, "legs.fromWarehouseId")
		if legErr != nil {
			return respondError(ctx, legErr)
		}
		toID, legErr := parseRequiredUUID(leg.ToWarehouseID, "legs.toWarehouseId")
		if legErr != nil {
			return respondError(ctx, legErr)
		}
		legs[i] = commands.ShipmentLegInput{
			Sequence:           leg.Sequence,
			FromWarehouseID:    fromID,
			ToWarehouseID:      toID,
			ScheduledDeparture: leg.ScheduledDeparture,
			ScheduledArrival:   leg.ScheduledArrival,
			Distance:           leg.Distance,
		}
	}

	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID, originID, destinationID, driverID, items, legs)
	if err != nil {
		return respondError(ctx, err)
	}
	cmd.SetRecipient(req.DestinationAddress, req.RecipientName, req.RecipientPhone)
	cmd.SetSchedule(req.ScheduledPickupDate, req.ScheduledDeliveryDate)

	if err := s.commands.CreateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: shipmentID.String()})
}

func (s *Server) handleGetShipments(ctx echo.Context) error {
	var statusFilter *shipment.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := shipment.ParseStatus(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	driverID, err := parseOptionalUUID(ctx.QueryParam("driverId"), "driverId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetShipmentsQuery(statusFilter, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	shipments, err := s.queries.GetShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]shipmentSummaryResponse, len(shipments))
	for i, item := range shipments {
		response[i] = shipmentSummaryResponse{
			ID:             item.ID.String(),
			TrackingNumber: item.TrackingNumber,
			Status:         item.Status.String(),
			OriginID:       item.OriginID.String(),
			DestinationID:  optionalUUIDString(item.DestinationID),
			DriverID:       optionalUUIDString(item.DriverID),
			TotalValue:     item.TotalValue,
			TotalWeight:    item.TotalWeight,
			IsMultiLeg:     item.IsMultiLeg,
			CreatedAt:      item.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) handleGetShipment(ctx echo.Context) error {
	shipmentID, err := parseUUIDParam(ctx, "shipmentId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetShipmentQueryByID(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.respondShipment(ctx, query)
}

func (s *Server) handleGetShipmentByTrackingNumber(ctx echo.Context) error {
	query, err := queries.NewGetShipmentQueryByTrackingNumber(ctx.Param("trackingNumber"))
	if err != nil {
		return respondError(ctx, err)
	}

	return s.respondShipment(ctx, query)
}

func (s *Server) respondShipment(ctx echo.Context, query queries.GetShipmentQuery) error {
	result, err := s.queries.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]shipmentItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = shipmentItemResponse{
			ID:         item.ID.String(),
			ProductID:  item.ProductID.String(),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		}
	}

	legs := make([]shipmentLegResponse, len(result.Legs))
	for i, leg := range result.Legs {
		legs[i] = shipmentLegResponse{
			ID:                 leg.ID.String(),
			Sequence:           leg.Sequence,
			FromWarehouseID:    leg.FromWarehouseID.String(),
			ToWarehouseID:      leg.ToWarehouseID.String(),
			Status:             leg.Status.String(),
			ScheduledDeparture: leg.ScheduledDeparture,
			ActualDeparture:    leg.ActualDeparture,
			ScheduledArrival:   leg.ScheduledArrival,
			ActualArrival:      leg.ActualArrival,
			UnloadedDate:       leg.UnloadedDate,
			Distance:           leg.Distance,
		}
	}

	return ctx.JSON(http.StatusOK, shipmentResponse{
		ID:                    result.ID.String(),
		TrackingNumber:        result.TrackingNumber,
		Status:                result.Status.String(),
		OriginID:              result.OriginID.String(),
		DestinationID:         optionalUUIDString(result.DestinationID),
		DriverID:              optionalUUIDString(result.DriverID),
		DestinationAddress:    result.DestinationAddress,
		RecipientName:         result.RecipientName,
		RecipientPhone:        result.RecipientPhone,
		TotalValue:            result.TotalValue,
		TotalWeight:           result.TotalWeight,
		DriverPayment:         result.DriverPayment,
		FuelCost:              result.FuelCost,
		OtherExpenses:         result.OtherExpenses,
		CompanyProfit:         result.CompanyProfit,
		ScheduledPickupDate:   result.ScheduledPickupDate,
		ActualPickupDate:      result.ActualPickupDate,
		ScheduledDeliveryDate: result.ScheduledDeliveryDate,
		ActualDeliveryDate:    result.ActualDeliveryDate,
		IsMultiLeg:            result.IsMultiLeg,
		Items:                 items,
		Legs:                  legs,
	})
}

func (s *Server) handleAssignDriver(ctx echo.Context) error {
	shipmentID, err := parseUUIDParam(ctx, "shipmentId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req assignDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID, err := parseRequiredUUID(req.DriverID, "driverId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(shipmentID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleUpdateShipmentStatus(ctx echo.Context) error {
	shipmentID, err := parseUUIDParam(ctx, "shipmentId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateShipmentStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := shipment.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, status, req.Force)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.UpdateShipmentStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleUpdateLegStatus(ctx echo.Context) error {
	shipmentID, err := parseUUIDParam(ctx, "shipmentId")
	if err != nil {
		return respondError(ctx, err)
	}

	sequence, err := strconv.Atoi(ctx.Param("sequence"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("sequence", err))
	}

	var req updateLegStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := shipment.ParseLegStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateLegStatusCommand(shipmentID, sequence, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.UpdateLegStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleUnloadShipment(ctx echo.Context) error {
	shipmentID, err := parseUUIDParam(ctx, "shipmentId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req unloadShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	warehouseID, err := parseRequiredUUID(req.WarehouseID, "warehouseId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUnloadShipmentCommand(shipmentID, warehouseID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.UnloadShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleSettleShipment(ctx echo.Context) error {
	shipmentID, err := parseUUIDParam(ctx, "shipmentId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req settleShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSettleShipmentCommand(shipmentID, req.FuelCost, req.OtherExpenses)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.SettleShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
