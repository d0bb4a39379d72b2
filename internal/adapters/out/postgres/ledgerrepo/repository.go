package ledgerrepo

import (
	"context"
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLedgerRepository creates a new GORM ledger transaction repository.
func NewGormLedgerRepository(db *gorm.DB, tracker aggregateTracker) *GormLedgerRepository {
	return &GormLedgerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new transaction to the ledger.
func (r *GormLedgerRepository) Add(ctx context.Context, aggregate *ledger.Transaction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a transaction by ID.
func (r *GormLedgerRepository) Get(ctx context.Context, id kernel.UUID) (*ledger.Transaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransactionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transaction", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByDriver retrieves a driver's transactions newest first, optionally
// filtered by type (pass nil for all). A limit of 0 means no limit.
func (r *GormLedgerRepository) GetAllByDriver(
	ctx context.Context,
	driverID kernel.UUID,
	transactionType *ledger.TransactionType,
	limit int,
) ([]*ledger.Transaction, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, errs.NewValueIsInvalidError("limit")
	}

	tx := r.db.WithContext(ctx).Where("driver_id = ?", driverID.Bytes())
	if transactionType != nil {
		if err := transactionType.Validate(); err != nil {
			return nil, err
		}
		tx = tx.Where("transaction_type = ?", int(*transactionType))
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var dtos []TransactionDTO
	if err := tx.Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByShipment retrieves the transactions posted for a shipment.
func (r *GormLedgerRepository) GetAllByShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*ledger.Transaction, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []TransactionDTO) ([]*ledger.Transaction, error) {
	transactions := make([]*ledger.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		txn, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, nil
}
