// Package productrepo implements the repository pattern for product
// aggregates.
package productrepo

import (
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SKU               string          `gorm:"column:sku;type:varchar(64);not null;uniqueIndex"`
	Name              string          `gorm:"type:varchar(255);not null"`
	Description       string          `gorm:"type:varchar(1024)"`
	Category          string          `gorm:"type:varchar(255)"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Unit              string          `gorm:"type:varchar(32);not null"`
	LowStockThreshold int             `gorm:"type:int;not null"`
	IsActive          bool            `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:                p.ID().Bytes(),
		SKU:               p.SKU(),
		Name:              p.Name(),
		Description:       p.Description(),
		Category:          p.Category(),
		UnitPrice:         p.UnitPrice(),
		Unit:              p.Unit(),
		LowStockThreshold: p.LowStockThreshold(),
		IsActive:          p.IsActive(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.SKU,
		dto.Name,
		dto.Description,
		dto.Category,
		dto.UnitPrice,
		dto.Unit,
		dto.LowStockThreshold,
		dto.IsActive,
	)
}
