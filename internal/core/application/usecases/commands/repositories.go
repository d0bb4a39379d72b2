// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composite that covers the aggregates
// it touches, so tests mock exactly what the handler uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// QueueRepoFactory provides access to the queue repository within a transaction.
	QueueRepoFactory interface {
		QueueRepository() ports.QueueRepository
	}

	// LedgerRepoFactory provides access to the ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// WarehouseRepoFactory provides access to the warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// StockUoW manages transactions for stock mutations. Product and
	// warehouse repositories are present for existence checks.
	StockUoW interface {
		TxManager
		StockRepoFactory
		ProductRepoFactory
		WarehouseRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// ShipmentUoW manages transactions for shipment creation and unloading,
	// which reserve and move stock alongside the shipment itself.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		StockRepoFactory
		ProductRepoFactory
		WarehouseRepoFactory
		DriverRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// ShipmentStatusUoW manages transactions for status and leg transitions,
	// which touch the shipment aggregate only.
	ShipmentStatusUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentStatusUoWFactory creates new shipment status unit of work instances.
	ShipmentStatusUoWFactory interface {
		Create() ShipmentStatusUoW
	}

	// AssignDriverUoW manages transactions for driver assignment, which
	// updates both the shipment and the driver.
	AssignDriverUoW interface {
		TxManager
		ShipmentRepoFactory
		DriverRepoFactory
	}

	// AssignDriverUoWFactory creates new driver assignment unit of work instances.
	AssignDriverUoWFactory interface {
		Create() AssignDriverUoW
	}

	// QueueUoW manages transactions for dock queue operations, which flip
	// shipment and driver statuses in step with the entry.
	QueueUoW interface {
		TxManager
		QueueRepoFactory
		ShipmentRepoFactory
		DriverRepoFactory
		WarehouseRepoFactory
	}

	// QueueUoWFactory creates new queue unit of work instances.
	QueueUoWFactory interface {
		Create() QueueUoW
	}

	// LedgerUoW manages transactions for ledger postings, which move the
	// driver balance and may read or update the related shipment.
	LedgerUoW interface {
		TxManager
		LedgerRepoFactory
		DriverRepoFactory
		ShipmentRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// WarehouseUoW manages transactions for warehouse-only operations.
	WarehouseUoW interface {
		TxManager
		WarehouseRepoFactory
	}

	// WarehouseUoWFactory creates new warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}
)
