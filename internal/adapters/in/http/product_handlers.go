package http

import (
	"net/http"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/commands"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type createProductRequest struct {
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

type updateProductRequest struct {
	Description       *string          `json:"description"`
	Category          *string          `json:"category"`
	Unit              *string          `json:"unit"`
	UnitPrice         *decimal.Decimal `json:"unitPrice"`
	LowStockThreshold *int             `json:"lowStockThreshold"`
	IsActive          *bool            `json:"isActive"`
}

func (s *Server) handleCreateProduct(ctx echo.Context) error {
	var req createProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateProductCommand(productID, req.SKU, req.Name, req.UnitPrice)
	if err != nil {
		return respondError(ctx, err)
	}
	cmd.SetDetails(req.Description, req.Category, req.Unit, req.LowStockThreshold)

	if err := s.commands.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: productID.String()})
}

func (s *Server) handleUpdateProduct(ctx echo.Context) error {
	productID, err := parseUUIDParam(ctx, "productId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(productID)
	if err != nil {
		return respondError(ctx, err)
	}
	cmd.SetDetails(req.Description, req.Category, req.Unit)
	cmd.SetUnitPrice(req.UnitPrice)
	cmd.SetLowStockThreshold(req.LowStockThreshold)
	cmd.SetActive(req.IsActive)

	if err := s.commands.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
