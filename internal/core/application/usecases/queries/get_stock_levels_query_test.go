package queries_test

import (
	"testing"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/queries"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStockLevelsQuery_WarehouseFilter(t *testing.T) {
	warehouseID := kernel.NewUUID()

	query, err := queries.NewGetStockLevelsQuery(&warehouseID, nil)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.WarehouseID())
	assert.Equal(t, warehouseID, *query.WarehouseID())
	assert.Nil(t, query.ProductID())
}

func TestNewGetStockLevelsQuery_BothFilters(t *testing.T) {
	warehouseID := kernel.NewUUID()
	productID := kernel.NewUUID()

	query, err := queries.NewGetStockLevelsQuery(&warehouseID, &productID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetStockLevelsQuery_NoFilter(t *testing.T) {
	_, err := queries.NewGetStockLevelsQuery(nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrStockFilterIsRequired)
}

func TestNewGetStockLevelsQuery_EmptyWarehouseID(t *testing.T) {
	_, err := queries.NewGetStockLevelsQuery(&kernel.UUID{}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetStockLevelsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStockLevelsQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStockLevelsQueryIsNotConstructed)
}

func TestNewGetLowStockQuery_Valid(t *testing.T) {
	warehouseID := kernel.NewUUID()

	query, err := queries.NewGetLowStockQuery(&warehouseID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.WarehouseID())
	assert.Equal(t, warehouseID, *query.WarehouseID())
}

func TestNewGetLowStockQuery_NetworkWide(t *testing.T) {
	query, err := queries.NewGetLowStockQuery(nil)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.WarehouseID())
}

func TestGetLowStockQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetLowStockQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetLowStockQueryIsNotConstructed)
}
