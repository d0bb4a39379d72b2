// Package queuerepo implements the repository pattern for dock queue
// entries, handling the conversion between domain entities and their
// database representation.
package queuerepo

import (
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/queue"

	"github.com/google/uuid"
)

// QueueEntryDTO represents the database structure for persisting queue
// entries. Queue order is derived from priority and arrival time, never
// stored.
type QueueEntryDTO struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WarehouseID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShipmentID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID                uuid.UUID  `gorm:"type:uuid;not null"`
	Status                  int        `gorm:"type:int;not null;index"`
	Priority                int        `gorm:"type:int;not null"`
	ArrivalTime             time.Time  `gorm:"type:timestamptz;not null"`
	StartLoadingTime        *time.Time `gorm:"type:timestamptz"`
	FinishLoadingTime       *time.Time `gorm:"type:timestamptz"`
	EstimatedLoadingMinutes int        `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "queue_entries".
func (QueueEntryDTO) TableName() string {
	return "queue_entries"
}

func fromDomain(entry *queue.QueueEntry) QueueEntryDTO {
	return QueueEntryDTO{
		ID:                      entry.ID().Bytes(),
		WarehouseID:             entry.WarehouseID().Bytes(),
		ShipmentID:              entry.ShipmentID().Bytes(),
		DriverID:                entry.DriverID().Bytes(),
		Status:                  int(entry.Status()),
		Priority:                entry.Priority(),
		ArrivalTime:             entry.ArrivalTime(),
		StartLoadingTime:        entry.StartLoadingTime(),
		FinishLoadingTime:       entry.FinishLoadingTime(),
		EstimatedLoadingMinutes: entry.EstimatedLoadingMinutes(),
	}
}

func toDomain(dto QueueEntryDTO) (*queue.QueueEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return queue.RestoreQueueEntry(
		id,
		warehouseID,
		shipmentID,
		driverID,
		queue.Status(dto.Status),
		dto.Priority,
		dto.ArrivalTime,
		dto.StartLoadingTime,
		dto.FinishLoadingTime,
		dto.EstimatedLoadingMinutes,
	)
}
