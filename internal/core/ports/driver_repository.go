package ports

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/driver"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver, balance included.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByLicenseNumber retrieves a driver by the unique license number.
	GetByLicenseNumber(ctx context.Context, licenseNumber string) (*driver.Driver, error)

	// GetAllByStatus retrieves drivers in the given lifecycle state.
	GetAllByStatus(ctx context.Context, status driver.Status) ([]*driver.Driver, error)
}
