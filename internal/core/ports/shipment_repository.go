package ports

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. A shipment is always loaded and stored whole, items and legs
// included.
type ShipmentRepository interface {
	// Add persists a new shipment with its items and legs.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment, including leg
	// transitions and settlement fields.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment by its tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error)

	// GetAllByStatus retrieves shipments in the given lifecycle state.
	GetAllByStatus(ctx context.Context, status shipment.Status) ([]*shipment.Shipment, error)

	// GetAllByDriver retrieves shipments assigned to the given driver.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*shipment.Shipment, error)
}
