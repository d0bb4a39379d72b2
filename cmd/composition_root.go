package cmd

import (
	"log/slog"

	httpadapter "github.com/young8Programmer/NexusLogistics/internal/adapters/in/http"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres"
	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/commands"
	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/queries"
	"github.com/young8Programmer/NexusLogistics/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateWarehouseCommandHandler() commands.CreateWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWarehouseCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateWarehouseCommandHandler() commands.UpdateWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateWarehouseCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateReceiveStockCommandHandler() commands.ReceiveStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReceiveStockCommandHandler(f)
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustStockCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.AssignDriverUoWFactory = FuncAssignDriverUoWFactory(func() commands.AssignDriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	var f commands.ShipmentStatusUoWFactory = FuncShipmentStatusUoWFactory(func() commands.ShipmentStatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateLegStatusCommandHandler() commands.UpdateLegStatusCommandHandler {
	var f commands.ShipmentStatusUoWFactory = FuncShipmentStatusUoWFactory(func() commands.ShipmentStatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateLegStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUnloadShipmentCommandHandler() commands.UnloadShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnloadShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateSettleShipmentCommandHandler() commands.SettleShipmentCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettleShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateEnqueueShipmentCommandHandler() commands.EnqueueShipmentCommandHandler {
	var f commands.QueueUoWFactory = FuncQueueUoWFactory(func() commands.QueueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEnqueueShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateStartLoadingCommandHandler() commands.StartLoadingCommandHandler {
	var f commands.QueueUoWFactory = FuncQueueUoWFactory(func() commands.QueueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartLoadingCommandHandler(f)
}

func (c *CompositionRoot) CreateFinishLoadingCommandHandler() commands.FinishLoadingCommandHandler {
	var f commands.QueueUoWFactory = FuncQueueUoWFactory(func() commands.QueueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinishLoadingCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelQueueEntryCommandHandler() commands.CancelQueueEntryCommandHandler {
	var f commands.QueueUoWFactory = FuncQueueUoWFactory(func() commands.QueueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelQueueEntryCommandHandler(f)
}

func (c *CompositionRoot) CreateReprioritizeQueueEntryCommandHandler() commands.ReprioritizeQueueEntryCommandHandler {
	var f commands.QueueUoWFactory = FuncQueueUoWFactory(func() commands.QueueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReprioritizeQueueEntryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDriverCommandHandler() commands.UpdateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTransactionCommandHandler() commands.CreateTransactionCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTransactionCommandHandler(f)
}

func (c *CompositionRoot) CreateGetShipmentsQueryHandler() queries.GetShipmentsQueryHandler {
	return queries.NewGetShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWarehouseQueueQueryHandler() queries.GetWarehouseQueueQueryHandler {
	return queries.NewGetWarehouseQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNextInQueueQueryHandler() queries.GetNextInQueueQueryHandler {
	return queries.NewGetNextInQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetQueueStatisticsQueryHandler() queries.GetQueueStatisticsQueryHandler {
	return queries.NewGetQueueStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverBalanceQueryHandler() queries.GetDriverBalanceQueryHandler {
	return queries.NewGetDriverBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverTransactionsQueryHandler() queries.GetDriverTransactionsQueryHandler {
	return queries.NewGetDriverTransactionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockLevelsQueryHandler() queries.GetStockLevelsQueryHandler {
	return queries.NewGetStockLevelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockQueryHandler() queries.GetLowStockQueryHandler {
	return queries.NewGetLowStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFinancialReportQueryHandler() queries.GetFinancialReportQueryHandler {
	return queries.NewGetFinancialReportQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the echo server.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.CommandHandlers{
			CreateWarehouse: c.CreateCreateWarehouseCommandHandler(),
			UpdateWarehouse: c.CreateUpdateWarehouseCommandHandler(),
			CreateProduct:   c.CreateCreateProductCommandHandler(),
			UpdateProduct:   c.CreateUpdateProductCommandHandler(),

			ReceiveStock: c.CreateReceiveStockCommandHandler(),
			AdjustStock:  c.CreateAdjustStockCommandHandler(),

			CreateShipment:       c.CreateCreateShipmentCommandHandler(),
			AssignDriver:         c.CreateAssignDriverCommandHandler(),
			UpdateShipmentStatus: c.CreateUpdateShipmentStatusCommandHandler(),
			UpdateLegStatus:      c.CreateUpdateLegStatusCommandHandler(),
			UnloadShipment:       c.CreateUnloadShipmentCommandHandler(),
			SettleShipment:       c.CreateSettleShipmentCommandHandler(),

			EnqueueShipment:        c.CreateEnqueueShipmentCommandHandler(),
			StartLoading:           c.CreateStartLoadingCommandHandler(),
			FinishLoading:          c.CreateFinishLoadingCommandHandler(),
			CancelQueueEntry:       c.CreateCancelQueueEntryCommandHandler(),
			ReprioritizeQueueEntry: c.CreateReprioritizeQueueEntryCommandHandler(),

			CreateDriver:      c.CreateCreateDriverCommandHandler(),
			UpdateDriver:      c.CreateUpdateDriverCommandHandler(),
			CreateTransaction: c.CreateCreateTransactionCommandHandler(),
		},
		httpadapter.QueryHandlers{
			GetShipments:          c.CreateGetShipmentsQueryHandler(),
			GetShipment:           c.CreateGetShipmentQueryHandler(),
			GetWarehouseQueue:     c.CreateGetWarehouseQueueQueryHandler(),
			GetNextInQueue:        c.CreateGetNextInQueueQueryHandler(),
			GetQueueStatistics:    c.CreateGetQueueStatisticsQueryHandler(),
			GetDriverBalance:      c.CreateGetDriverBalanceQueryHandler(),
			GetDriverTransactions: c.CreateGetDriverTransactionsQueryHandler(),
			GetStockLevels:        c.CreateGetStockLevelsQueryHandler(),
			GetLowStock:           c.CreateGetLowStockQueryHandler(),
			GetFinancialReport:    c.CreateGetFinancialReportQueryHandler(),
		},
	)
}

// CreateJobManager wires the background jobs onto the same unit of work
// factory and command handlers the API uses.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.uowFactory, c.CreateStartLoadingCommandHandler(), logger)
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncShipmentStatusUoWFactory func() commands.ShipmentStatusUoW

func (f FuncShipmentStatusUoWFactory) Create() commands.ShipmentStatusUoW {
	return f()
}

type FuncAssignDriverUoWFactory func() commands.AssignDriverUoW

func (f FuncAssignDriverUoWFactory) Create() commands.AssignDriverUoW {
	return f()
}

type FuncQueueUoWFactory func() commands.QueueUoW

func (f FuncQueueUoWFactory) Create() commands.QueueUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
