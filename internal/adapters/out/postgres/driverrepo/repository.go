package driverrepo

import (
	"context"
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/driver"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver, balance included.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLicenseNumber retrieves a driver by the unique license number.
func (r *GormDriverRepository) GetByLicenseNumber(
	ctx context.Context,
	licenseNumber string,
) (*driver.Driver, error) {
	if licenseNumber == "" {
		return nil, errs.NewValueIsRequiredError("licenseNumber")
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "license_number = ?", licenseNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", licenseNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByStatus retrieves drivers in the given lifecycle state.
func (r *GormDriverRepository) GetAllByStatus(
	ctx context.Context,
	status driver.Status,
) ([]*driver.Driver, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}
