package http

import (
	"net/http"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/commands"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createWarehouseRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

type updateWarehouseRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Location *string `json:"location"`
	Capacity *int    `json:"capacity"`
	IsActive *bool   `json:"isActive"`
}

func (s *Server) handleCreateWarehouse(ctx echo.Context) error {
	var req createWarehouseRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	warehouseID := kernel.NewUUID()

	cmd, err := commands.NewCreateWarehouseCommand(
		warehouseID, req.Code, req.Name, req.Address, req.Location, req.Capacity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.CreateWarehouse.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: warehouseID.String()})
}

func (s *Server) handleUpdateWarehouse(ctx echo.Context) error {
	warehouseID, err := parseUUIDParam(ctx, "warehouseId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateWarehouseRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateWarehouseCommand(warehouseID)
	if err != nil {
		return respondError(ctx, err)
	}
	cmd.SetNameAndAddress(req.Name, req.Address, req.Location)
	cmd.SetCapacity(req.Capacity)
	cmd.SetActive(req.IsActive)

	if err := s.commands.UpdateWarehouse.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
