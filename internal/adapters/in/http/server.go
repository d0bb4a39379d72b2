// Package http exposes the application's command and query use cases as a
// JSON API. Each handler binds a request body or path parameters, builds a
// command or query through its constructor, dispatches it to the matching
// application handler, and maps domain errors to HTTP statuses.
package http

import (
	"errors"
	"net/http"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/commands"
	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/queries"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CommandHandlers groups the write-side use cases the server exposes.
type CommandHandlers struct {
	CreateWarehouse commands.CreateWarehouseCommandHandler
	UpdateWarehouse commands.UpdateWarehouseCommandHandler
	CreateProduct   commands.CreateProductCommandHandler
	UpdateProduct   commands.UpdateProductCommandHandler

	ReceiveStock commands.ReceiveStockCommandHandler
	AdjustStock  commands.AdjustStockCommandHandler

	CreateShipment       commands.CreateShipmentCommandHandler
	AssignDriver         commands.AssignDriverCommandHandler
	UpdateShipmentStatus commands.UpdateShipmentStatusCommandHandler
	UpdateLegStatus      commands.UpdateLegStatusCommandHandler
	UnloadShipment       commands.UnloadShipmentCommandHandler
	SettleShipment       commands.SettleShipmentCommandHandler

	EnqueueShipment        commands.EnqueueShipmentCommandHandler
	StartLoading           commands.StartLoadingCommandHandler
	FinishLoading          commands.FinishLoadingCommandHandler
	CancelQueueEntry       commands.CancelQueueEntryCommandHandler
	ReprioritizeQueueEntry commands.ReprioritizeQueueEntryCommandHandler

	CreateDriver      commands.CreateDriverCommandHandler
	UpdateDriver      commands.UpdateDriverCommandHandler
	CreateTransaction commands.CreateTransactionCommandHandler
}

// QueryHandlers groups the read-side use cases the server exposes.
type QueryHandlers struct {
	GetShipments          queries.GetShipmentsQueryHandler
	GetShipment           queries.GetShipmentQueryHandler
	GetWarehouseQueue     queries.GetWarehouseQueueQueryHandler
	GetNextInQueue        queries.GetNextInQueueQueryHandler
	GetQueueStatistics    queries.GetQueueStatisticsQueryHandler
	GetDriverBalance      queries.GetDriverBalanceQueryHandler
	GetDriverTransactions queries.GetDriverTransactionsQueryHandler
	GetStockLevels        queries.GetStockLevelsQueryHandler
	GetLowStock           queries.GetLowStockQueryHandler
	GetFinancialReport    queries.GetFinancialReportQueryHandler
}

// Server handles HTTP requests by coordinating between request DTOs and the
// application's command and query handlers.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes mounts all API routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/warehouses", s.handleCreateWarehouse)
	api.PATCH("/warehouses/:warehouseId", s.handleUpdateWarehouse)
	api.GET("/warehouses/:warehouseId/queue", s.handleGetWarehouseQueue)
	api.GET("/warehouses/:warehouseId/queue/next", s.handleGetNextInQueue)
	api.GET("/warehouses/:warehouseId/queue/statistics", s.handleGetQueueStatistics)

	api.POST("/products", s.handleCreateProduct)
	api.PATCH("/products/:productId", s.handleUpdateProduct)

	api.POST("/stock/receipts", s.handleReceiveStock)
	api.POST("/stock/adjustments", s.handleAdjustStock)
	api.GET("/stock/levels", s.handleGetStockLevels)
	api.GET("/stock/low", s.handleGetLowStock)

	api.POST("/shipments", s.handleCreateShipment)
	api.GET("/shipments", s.handleGetShipments)
	api.GET("/shipments/:shipmentId", s.handleGetShipment)
	api.GET("/shipments/tracking/:trackingNumber", s.handleGetShipmentByTrackingNumber)
	api.POST("/shipments/:shipmentId/driver", s.handleAssignDriver)
	api.PATCH("/shipments/:shipmentId/status", s.handleUpdateShipmentStatus)
	api.PATCH("/shipments/:shipmentId/legs/:sequence", s.handleUpdateLegStatus)
	api.POST("/shipments/:shipmentId/unload", s.handleUnloadShipment)
	api.POST("/shipments/:shipmentId/settlement", s.handleSettleShipment)

	api.POST("/queue/entries", s.handleEnqueueShipment)
	api.POST("/queue/entries/:entryId/start", s.handleStartLoading)
	api.POST("/queue/entries/:entryId/finish", s.handleFinishLoading)
	api.DELETE("/queue/entries/:entryId", s.handleCancelQueueEntry)
	api.PATCH("/queue/entries/:entryId/priority", s.handleReprioritizeQueueEntry)

	api.POST("/drivers", s.handleCreateDriver)
	api.PATCH("/drivers/:driverId", s.handleUpdateDriver)
	api.GET("/drivers/:driverId/balance", s.handleGetDriverBalance)
	api.GET("/drivers/:driverId/transactions", s.handleGetDriverTransactions)

	api.POST("/transactions", s.handleCreateTransaction)

	api.GET("/reports/financial", s.handleGetFinancialReport)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type idResponse struct {
	ID string `json:"id"`
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError translates domain errors into HTTP statuses. Anything not
// recognized as a client error is reported as an internal error.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrDuplicateEntry),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrInsufficientBalance),
		errors.Is(err, errs.ErrDriverUnavailable),
		errors.Is(err, errs.ErrMissingDriver):
		status = http.StatusConflict
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: err.Error()})
}

func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return id, nil
}

func parseRequiredUUID(value, name string) (kernel.UUID, error) {
	if value == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}

	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return id, nil
}

func parseOptionalUUID(value, name string) (*kernel.UUID, error) {
	if value == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return &id, nil
}

func optionalUUIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}

	s := id.String()
	return &s
}
