package shipmentrepo

import (
	"context"
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment with its items and legs.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
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

// Update saves an existing shipment, including leg and item state.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// FullSaveAssociations keeps item and leg rows in step with the aggregate.
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID with its items and legs.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves a shipment by its tracking number.
func (r *GormShipmentRepository) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber string,
) (*shipment.Shipment, error) {
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	var dto ShipmentDTO
	err := r.preloaded(ctx).First(&dto, "tracking_number = ?", trackingNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", trackingNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByStatus retrieves shipments in the given lifecycle state.
func (r *GormShipmentRepository) GetAllByStatus(
	ctx context.Context,
	status shipment.Status,
) ([]*shipment.Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	if err := r.preloaded(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByDriver retrieves shipments assigned to the given driver.
func (r *GormShipmentRepository) GetAllByDriver(
	ctx context.Context,
	driverID kernel.UUID,
) ([]*shipment.Shipment, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	if err := r.preloaded(ctx).Find(&dtos, "driver_id = ?", driverID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func (r *GormShipmentRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items").
		Preload("Legs", func(db *gorm.DB) *gorm.DB {
			return db.Order("shipment_legs.sequence ASC")
		})
}

func toDomainSlice(dtos []ShipmentDTO) ([]*shipment.Shipment, error) {
	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		shp, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, shp)
	}
	return shipments, nil
}
