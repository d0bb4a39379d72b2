// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The unit of work maintains a list of aggregates affected by a
// business transaction and coordinates writing out changes atomically.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.ShipmentRepository().Add(ctx, shipment); err != nil {
//	    return err
//	}
//	if err := uow.StockRepository().Update(ctx, record); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns one transaction; concurrent operations must
// use separate instances created through the factory.
package postgres

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/driverrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/ledgerrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/productrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/queuerepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/shipmentrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/stockrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/warehouserepo"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Useful for implementing patterns like event sourcing or the outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided connection is reused by every created instance.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repositories obtained from the unit of
// work execute within the current transaction when one is active, otherwise
// directly against the main connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin on an instance
// with an open transaction is a no-op; nested transactions are never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// StockRepository provides stock record persistence within the unit of work.
func (uow *GormUnitOfWork) StockRepository() ports.StockRepository {
	return stockrepo.NewGormStockRepository(uow.conn(), uow)
}

// ShipmentRepository provides shipment persistence within the unit of work.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

// QueueRepository provides queue entry persistence within the unit of work.
func (uow *GormUnitOfWork) QueueRepository() ports.QueueRepository {
	return queuerepo.NewGormQueueRepository(uow.conn(), uow)
}

// LedgerRepository provides ledger transaction persistence within the unit of work.
func (uow *GormUnitOfWork) LedgerRepository() ports.LedgerRepository {
	return ledgerrepo.NewGormLedgerRepository(uow.conn(), uow)
}

// DriverRepository provides driver persistence within the unit of work.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn(), uow)
}

// WarehouseRepository provides warehouse persistence within the unit of work.
func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepository(uow.conn(), uow)
}

// ProductRepository provides product persistence within the unit of work.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on Add and Update; the
// tracked aggregates enable post-commit processing such as domain event
// publishing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
