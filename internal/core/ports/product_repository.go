package ports

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetBySKU retrieves a product by the unique SKU.
	GetBySKU(ctx context.Context, sku string) (*product.Product, error)

	// GetAllActive retrieves every product that is not soft-deleted.
	GetAllActive(ctx context.Context) ([]*product.Product, error)
}
