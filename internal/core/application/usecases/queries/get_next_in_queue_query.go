package queries

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var ErrGetNextInQueueQueryIsNotConstructed = errors.New(
	"GetNextInQueueQuery must be created via NewGetNextInQueueQuery constructor",
)

// GetNextInQueueQuery retrieves the waiting entry that will be admitted to
// the dock next: highest priority, earliest arrival on ties.
type GetNextInQueueQuery struct {
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNextInQueueQuery creates a query for the next waiting entry.
func NewGetNextInQueueQuery(warehouseID kernel.UUID) (GetNextInQueueQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetNextInQueueQuery{}, err
	}

	return GetNextInQueueQuery{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNextInQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetNextInQueueQueryIsNotConstructed)
}

// WarehouseID returns the warehouse whose queue head is requested.
func (q GetNextInQueueQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}
