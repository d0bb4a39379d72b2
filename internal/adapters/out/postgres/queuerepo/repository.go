package queuerepo

import (
	"context"
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/queue"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// queueOrder sorts entries the way the dock serves them.
const queueOrder = "priority DESC, arrival_time ASC"

// GormQueueRepository implements QueueRepository using GORM.
type GormQueueRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormQueueRepository creates a new GORM queue entry repository.
func NewGormQueueRepository(db *gorm.DB, tracker aggregateTracker) *GormQueueRepository {
	return &GormQueueRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new queue entry to the database.
func (r *GormQueueRepository) Add(ctx context.Context, aggregate *queue.QueueEntry) error {
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

// Update saves an existing queue entry to the database.
func (r *GormQueueRepository) Update(ctx context.Context, aggregate *queue.QueueEntry) error {
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

// Get retrieves a queue entry by ID.
func (r *GormQueueRepository) Get(ctx context.Context, id kernel.UUID) (*queue.QueueEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QueueEntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("queue entry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetNextWaiting retrieves the highest-priority waiting entry at a
// warehouse, ties broken by earliest arrival.
func (r *GormQueueRepository) GetNextWaiting(
	ctx context.Context,
	warehouseID kernel.UUID,
) (*queue.QueueEntry, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	var dto QueueEntryDTO
	err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND status = ?", warehouseID.Bytes(), int(queue.StatusWaiting)).
		Order(queueOrder).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("queue entry", warehouseID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetWaitingByShipment retrieves the waiting entry for a (warehouse,
// shipment) pair, used to reject duplicate enqueues.
func (r *GormQueueRepository) GetWaitingByShipment(
	ctx context.Context,
	warehouseID, shipmentID kernel.UUID,
) (*queue.QueueEntry, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto QueueEntryDTO
	err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND shipment_id = ? AND status = ?",
			warehouseID.Bytes(), shipmentID.Bytes(), int(queue.StatusWaiting)).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("queue entry", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByWarehouse retrieves a warehouse's entries in queue order,
// optionally filtered by status (pass nil for all).
func (r *GormQueueRepository) GetAllByWarehouse(
	ctx context.Context,
	warehouseID kernel.UUID,
	status *queue.Status,
) ([]*queue.QueueEntry, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Where("warehouse_id = ?", warehouseID.Bytes())
	if status != nil {
		if err := status.Validate(); err != nil {
			return nil, err
		}
		tx = tx.Where("status = ?", int(*status))
	}

	var dtos []QueueEntryDTO
	if err := tx.Order(queueOrder).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetLoadingByWarehouse retrieves the entries currently occupying a
// warehouse's dock.
func (r *GormQueueRepository) GetLoadingByWarehouse(
	ctx context.Context,
	warehouseID kernel.UUID,
) ([]*queue.QueueEntry, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	var dtos []QueueEntryDTO
	err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND status = ?", warehouseID.Bytes(), int(queue.StatusLoading)).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []QueueEntryDTO) ([]*queue.QueueEntry, error) {
	entries := make([]*queue.QueueEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
