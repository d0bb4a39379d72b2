package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// StockRepository returns a StockRepository bound to the current transaction.
	StockRepository() StockRepository

	// ShipmentRepository returns a ShipmentRepository bound to the current transaction.
	ShipmentRepository() ShipmentRepository

	// QueueRepository returns a QueueRepository bound to the current transaction.
	QueueRepository() QueueRepository

	// LedgerRepository returns a LedgerRepository bound to the current transaction.
	LedgerRepository() LedgerRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// WarehouseRepository returns a WarehouseRepository bound to the current transaction.
	WarehouseRepository() WarehouseRepository

	// ProductRepository returns a ProductRepository bound to the current transaction.
	ProductRepository() ProductRepository
}
