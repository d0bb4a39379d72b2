package http

import (
	"net/http"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/commands"
	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/queries"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/queue"

	"github.com/labstack/echo/v4"
)

type enqueueShipmentRequest struct {
	WarehouseID             string `json:"warehouseId"`
	ShipmentID              string `json:"shipmentId"`
	DriverID                string `json:"driverId"`
	Priority                int    `json:"priority"`
	EstimatedLoadingMinutes int    `json:"estimatedLoadingMinutes"`
}

type reprioritizeRequest struct {
	Priority int `json:"priority"`
}

type queueEntryResponse struct {
	ID                      string     `json:"id"`
	WarehouseID             string     `json:"warehouseId"`
	ShipmentID              string     `json:"shipmentId"`
	DriverID                string     `json:"driverId"`
	Status                  string     `json:"status"`
	Priority                int        `json:"priority"`
	ArrivalTime             time.Time  `json:"arrivalTime"`
	StartLoadingTime        *time.Time `json:"startLoadingTime"`
	FinishLoadingTime       *time.Time `json:"finishLoadingTime"`
	EstimatedLoadingMinutes int        `json:"estimatedLoadingMinutes"`
}

type queueStatisticsResponse struct {
	WarehouseID           string  `json:"warehouseId"`
	WaitingCount          int     `json:"waitingCount"`
	LoadingCount          int     `json:"loadingCount"`
	CompletedCount        int     `json:"completedCount"`
	AverageWaitMinutes    float64 `json:"averageWaitMinutes"`
	AverageLoadingMinutes float64 `json:"averageLoadingMinutes"`
}

func toQueueEntryResponse(entry queries.QueueEntryResponse) queueEntryResponse {
	return queueEntryResponse{
		ID:                      entry.ID.String(),
		WarehouseID:             entry.WarehouseID.String(),
		ShipmentID:              entry.ShipmentID.String(),
		DriverID:                entry.DriverID.String(),
		Status:                  entry.Status.String(),
		Priority:                entry.Priority,
		ArrivalTime:             entry.ArrivalTime,
		StartLoadingTime:        entry.StartLoadingTime,
		FinishLoadingTime:       entry.FinishLoadingTime,
		EstimatedLoadingMinutes: entry.EstimatedLoadingMinutes,
	}
}

func (s *Server) handleEnqueueShipment(ctx echo.Context) error {
	var req enqueueShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	warehouseID, err := parseRequiredUUID(req.WarehouseID, "warehouseId")
	if err != nil {
		return respondError(ctx, err)
	}
	shipmentID, err := parseRequiredUUID(req.ShipmentID, "shipmentId")
	if err != nil {
		return respondError(ctx, err)
	}
	driverID, err := parseRequiredUUID(req.DriverID, "driverId")
	if err != nil {
		return respondError(ctx, err)
	}

	entryID := kernel.NewUUID()

	cmd, err := commands.NewEnqueueShipmentCommand(
		entryID, warehouseID, shipmentID, driverID, req.Priority, req.EstimatedLoadingMinutes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.EnqueueShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: entryID.String()})
}

func (s *Server) handleStartLoading(ctx echo.Context) error {
	entryID, err := parseUUIDParam(ctx, "entryId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartLoadingCommand(entryID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.StartLoading.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleFinishLoading(ctx echo.Context) error {
	entryID, err := parseUUIDParam(ctx, "entryId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewFinishLoadingCommand(entryID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.FinishLoading.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleCancelQueueEntry(ctx echo.Context) error {
	entryID, err := parseUUIDParam(ctx, "entryId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelQueueEntryCommand(entryID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.CancelQueueEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleReprioritizeQueueEntry(ctx echo.Context) error {
	entryID, err := parseUUIDParam(ctx, "entryId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req reprioritizeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewReprioritizeQueueEntryCommand(entryID, req.Priority)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.ReprioritizeQueueEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetWarehouseQueue(ctx echo.Context) error {
	warehouseID, err := parseUUIDParam(ctx, "warehouseId")
	if err != nil {
		return respondError(ctx, err)
	}

	var statusFilter *queue.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, parseErr := queue.ParseStatus(raw)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetWarehouseQueueQuery(warehouseID, statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.queries.GetWarehouseQueue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]queueEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = toQueueEntryResponse(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) handleGetNextInQueue(ctx echo.Context) error {
	warehouseID, err := parseUUIDParam(ctx, "warehouseId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetNextInQueueQuery(warehouseID)
	if err != nil {
		return respondError(ctx, err)
	}

	entry, err := s.queries.GetNextInQueue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toQueueEntryResponse(entry))
}

func (s *Server) handleGetQueueStatistics(ctx echo.Context) error {
	warehouseID, err := parseUUIDParam(ctx, "warehouseId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetQueueStatisticsQuery(warehouseID)
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.queries.GetQueueStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queueStatisticsResponse{
		WarehouseID:           stats.WarehouseID.String(),
		WaitingCount:          stats.WaitingCount,
		LoadingCount:          stats.LoadingCount,
		CompletedCount:        stats.CompletedCount,
		AverageWaitMinutes:    stats.AverageWaitMinutes,
		AverageLoadingMinutes: stats.AverageLoadingMinutes,
	})
}
