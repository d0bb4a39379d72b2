package commands

import (
	"context"
)

// UpdateProductCommandHandler applies a partial product update.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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
	prd, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if cmd.Description() != nil || cmd.Category() != nil || cmd.Unit() != nil {
		description := prd.Description()
		category := prd.Category()
		unit := prd.Unit()
		if cmd.Description() != nil {
			description = *cmd.Description()
		}
		if cmd.Category() != nil {
			category = *cmd.Category()
		}
		if cmd.Unit() != nil {
			unit = *cmd.Unit()
		}
		prd.SetDetails(description, category, unit)
	}

	if unitPrice := cmd.UnitPrice(); unitPrice != nil {
		if err = prd.SetUnitPrice(*unitPrice); err != nil {
			return err
		}
	}

	if threshold := cmd.LowStockThreshold(); threshold != nil {
		prd.SetLowStockThreshold(*threshold)
	}

	if active := cmd.IsActive(); active != nil {
		if *active {
			prd.Activate()
		} else {
			prd.Deactivate()
		}
	}

	if err = productRepo.Update(ctx, prd); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
