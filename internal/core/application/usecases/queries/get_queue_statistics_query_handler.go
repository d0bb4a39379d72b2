package queries

import (
	"context"
	"database/sql"
	"math"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/queue"

	"gorm.io/gorm"
)

// GetQueueStatisticsQueryHandler computes dock throughput figures for one
// warehouse in a single aggregate query.
type GetQueueStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetQueueStatisticsQueryHandler creates a handler for dock statistics.
func NewGetQueueStatisticsQueryHandler(db *gorm.DB) GetQueueStatisticsQueryHandler {
	return GetQueueStatisticsQueryHandler{db: db}
}

// Handle executes the aggregation. Wait time runs from arrival to dock
// admission, loading time from admission to completion; only completed
// entries carry both stamps and enter the averages.
func (h GetQueueStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetQueueStatisticsQuery,
) (GetQueueStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQueueStatisticsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?) AS waiting_count,
			COUNT(*) FILTER (WHERE status = ?) AS loading_count,
			COUNT(*) FILTER (WHERE status = ?) AS completed_count,
			AVG(EXTRACT(EPOCH FROM (start_loading_time - arrival_time)) / 60)
				FILTER (WHERE status = ? AND start_loading_time IS NOT NULL) AS avg_wait_minutes,
			AVG(EXTRACT(EPOCH FROM (finish_loading_time - start_loading_time)) / 60)
				FILTER (WHERE status = ? AND start_loading_time IS NOT NULL
					AND finish_loading_time IS NOT NULL) AS avg_loading_minutes
		FROM queue_entries
		WHERE warehouse_id = ?
	`, queue.StatusWaiting, queue.StatusLoading, queue.StatusCompleted,
		queue.StatusCompleted, queue.StatusCompleted,
		query.WarehouseID().String()).Row()

	var resp GetQueueStatisticsQueryResponse
	var avgWait, avgLoading sql.NullFloat64

	err := row.Scan(
		&resp.WaitingCount,
		&resp.LoadingCount,
		&resp.CompletedCount,
		&avgWait,
		&avgLoading,
	)
	if err != nil {
		return GetQueueStatisticsQueryResponse{}, err
	}

	resp.WarehouseID = query.WarehouseID()
	if avgWait.Valid {
		resp.AverageWaitMinutes = roundMinutes(avgWait.Float64)
	}
	if avgLoading.Valid {
		resp.AverageLoadingMinutes = roundMinutes(avgLoading.Float64)
	}

	return resp, nil
}

func roundMinutes(minutes float64) float64 {
	return math.Round(minutes*100) / 100
}
