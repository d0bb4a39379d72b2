package postgres

import (
	"gorm.io/gorm"

	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/driverrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/ledgerrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/productrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/queuerepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/shipmentrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/stockrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/warehouserepo"
)

// MigrateSchema creates or updates the tables for every persisted aggregate.
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&warehouserepo.WarehouseDTO{},
		&productrepo.ProductDTO{},
		&stockrepo.StockRecordDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentItemDTO{},
		&shipmentrepo.ShipmentLegDTO{},
		&queuerepo.QueueEntryDTO{},
		&driverrepo.DriverDTO{},
		&ledgerrepo.TransactionDTO{},
	)
}
