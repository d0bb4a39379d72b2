package ports

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for financial ledger
// entries. The ledger is append-only: there is no update method.
type LedgerRepository interface {
	// Add persists a new ledger entry.
	Add(ctx context.Context, aggregate *ledger.Transaction) error

	// Get retrieves a ledger entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ledger.Transaction, error)

	// GetAllByDriver retrieves a driver's entries newest first, optionally
	// filtered by type (pass nil for all). A limit of 0 means no limit.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID, transactionType *ledger.TransactionType, limit int) ([]*ledger.Transaction, error)

	// GetAllByShipment retrieves the entries posted for a shipment.
	GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*ledger.Transaction, error)
}
