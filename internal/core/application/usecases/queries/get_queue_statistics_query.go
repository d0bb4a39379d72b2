package queries

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var ErrGetQueueStatisticsQueryIsNotConstructed = errors.New(
	"GetQueueStatisticsQuery must be created via NewGetQueueStatisticsQuery constructor",
)

// GetQueueStatisticsQuery retrieves dock throughput figures for one
// warehouse: how many entries sit in each state and how long completed
// entries waited and loaded on average.
type GetQueueStatisticsQuery struct {
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetQueueStatisticsQuery creates a query for dock statistics.
func NewGetQueueStatisticsQuery(warehouseID kernel.UUID) (GetQueueStatisticsQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetQueueStatisticsQuery{}, err
	}

	return GetQueueStatisticsQuery{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetQueueStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetQueueStatisticsQueryIsNotConstructed)
}

// WarehouseID returns the warehouse the statistics cover.
func (q GetQueueStatisticsQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}

// GetQueueStatisticsQueryResponse is the dock statistics read model.
// Averages cover completed entries only, in minutes rounded to two decimal
// places; both are zero when nothing has completed yet.
type GetQueueStatisticsQueryResponse struct {
	WarehouseID           kernel.UUID
	WaitingCount          int
	LoadingCount          int
	CompletedCount        int
	AverageWaitMinutes    float64
	AverageLoadingMinutes float64
}
