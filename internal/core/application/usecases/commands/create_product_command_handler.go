package commands

import (
	"context"
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/product"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
)

// CreateProductCommandHandler registers a new product. The SKU is the unique
// business key; a duplicate is rejected before insert.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	existing, err := productRepo.GetBySKU(ctx, cmd.SKU())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewDuplicateEntryError("product", cmd.SKU())
	}

	prd, err := product.NewProduct(cmd.ProductID(), cmd.SKU(), cmd.Name(), cmd.UnitPrice())
	if err != nil {
		return err
	}
	prd.SetDetails(cmd.Description(), cmd.Category(), cmd.Unit())
	prd.SetLowStockThreshold(cmd.LowStockThreshold())

	if err = productRepo.Add(ctx, prd); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
