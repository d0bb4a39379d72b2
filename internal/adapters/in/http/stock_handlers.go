package http

import (
	"net/http"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/commands"
	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/queries"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type receiveStockRequest struct {
	ProductID   string `json:"productId"`
	WarehouseID string `json:"warehouseId"`
	Quantity    int    `json:"quantity"`
}

type adjustStockRequest struct {
	Action      string `json:"action"`
	ProductID   string `json:"productId"`
	WarehouseID string `json:"warehouseId"`
	Quantity    int    `json:"quantity"`
}

type stockLevelResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	SKU         string `json:"sku"`
	WarehouseID string `json:"warehouseId"`
	Quantity    int    `json:"quantity"`
	Reserved    int    `json:"reserved"`
	Available   int    `json:"available"`
}

type lowStockResponse struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	SKU         string `json:"sku"`
	WarehouseID string `json:"warehouseId"`
	Available   int    `json:"available"`
	Threshold   int    `json:"threshold"`
}

func parseStockAction(raw string) (commands.StockAction, error) {
	switch raw {
	case "reserve":
		return commands.StockActionReserve, nil
	case "release":
		return commands.StockActionRelease, nil
	case "consume":
		return commands.StockActionConsume, nil
	default:
		return commands.StockActionUnknown, errs.NewValueIsInvalidError("action")
	}
}

func (s *Server) handleReceiveStock(ctx echo.Context) error {
	var req receiveStockRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := parseRequiredUUID(req.ProductID, "productId")
	if err != nil {
		return respondError(ctx, err)
	}
	warehouseID, err := parseRequiredUUID(req.WarehouseID, "warehouseId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReceiveStockCommand(productID, warehouseID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.ReceiveStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleAdjustStock(ctx echo.Context) error {
	var req adjustStockRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	action, err := parseStockAction(req.Action)
	if err != nil {
		return respondError(ctx, err)
	}
	productID, err := parseRequiredUUID(req.ProductID, "productId")
	if err != nil {
		return respondError(ctx, err)
	}
	warehouseID, err := parseRequiredUUID(req.WarehouseID, "warehouseId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdjustStockCommand(action, productID, warehouseID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.AdjustStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetStockLevels(ctx echo.Context) error {
	warehouseID, err := parseOptionalUUID(ctx.QueryParam("warehouseId"), "warehouseId")
	if err != nil {
		return respondError(ctx, err)
	}
	productID, err := parseOptionalUUID(ctx.QueryParam("productId"), "productId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetStockLevelsQuery(warehouseID, productID)
	if err != nil {
		return respondError(ctx, err)
	}

	levels, err := s.queries.GetStockLevels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]stockLevelResponse, len(levels))
	for i, level := range levels {
		response[i] = stockLevelResponse{
			ID:          level.ID.String(),
			ProductID:   level.ProductID.String(),
			ProductName: level.ProductName,
			SKU:         level.SKU,
			WarehouseID: level.WarehouseID.String(),
			Quantity:    level.Quantity,
			Reserved:    level.Reserved,
			Available:   level.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) handleGetLowStock(ctx echo.Context) error {
	warehouseID, err := parseOptionalUUID(ctx.QueryParam("warehouseId"), "warehouseId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetLowStockQuery(warehouseID)
	if err != nil {
		return respondError(ctx, err)
	}

	depleted, err := s.queries.GetLowStock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]lowStockResponse, len(depleted))
	for i, entry := range depleted {
		response[i] = lowStockResponse{
			ProductID:   entry.ProductID.String(),
			ProductName: entry.ProductName,
			SKU:         entry.SKU,
			WarehouseID: entry.WarehouseID.String(),
			Available:   entry.Available,
			Threshold:   entry.Threshold,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
