package stockrepo

import (
	"context"
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/stock"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockRepository creates a new GORM stock record repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock record to the database.
func (r *GormStockRepository) Add(ctx context.Context, aggregate *stock.StockRecord) error {
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

// Update saves an existing stock record to the database.
func (r *GormStockRepository) Update(ctx context.Context, aggregate *stock.StockRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a stock record by ID.
func (r *GormStockRepository) Get(ctx context.Context, id kernel.UUID) (*stock.StockRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock record", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByProductAndWarehouse retrieves the record for a (product, warehouse)
// pair. At most one record exists per pair.
func (r *GormStockRepository) GetByProductAndWarehouse(
	ctx context.Context,
	productID, warehouseID kernel.UUID,
) (*stock.StockRecord, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	var dto StockRecordDTO
	err := r.db.WithContext(ctx).
		First(&dto, "product_id = ? AND warehouse_id = ?", productID.Bytes(), warehouseID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock record", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByWarehouse retrieves every stock record held at a warehouse.
func (r *GormStockRepository) GetAllByWarehouse(
	ctx context.Context,
	warehouseID kernel.UUID,
) ([]*stock.StockRecord, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StockRecordDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "warehouse_id = ?", warehouseID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByProduct retrieves a product's stock records across warehouses.
func (r *GormStockRepository) GetAllByProduct(
	ctx context.Context,
	productID kernel.UUID,
) ([]*stock.StockRecord, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StockRecordDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "product_id = ?", productID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []StockRecordDTO) ([]*stock.StockRecord, error) {
	records := make([]*stock.StockRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
