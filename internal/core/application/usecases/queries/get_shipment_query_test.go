package queries_test

import (
	"testing"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/queries"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentQueryByID_Valid(t *testing.T) {
	shipmentID := kernel.NewUUID()

	query, err := queries.NewGetShipmentQueryByID(shipmentID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.ShipmentID())
	assert.Equal(t, shipmentID, *query.ShipmentID())
	assert.Empty(t, query.TrackingNumber())
}

func TestNewGetShipmentQueryByID_EmptyID(t *testing.T) {
	_, err := queries.NewGetShipmentQueryByID(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetShipmentQueryByTrackingNumber_Valid(t *testing.T) {
	query, err := queries.NewGetShipmentQueryByTrackingNumber("TRK-20260830-ABCD1234")

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.ShipmentID())
	assert.Equal(t, "TRK-20260830-ABCD1234", query.TrackingNumber())
}

func TestNewGetShipmentQueryByTrackingNumber_Empty(t *testing.T) {
	_, err := queries.NewGetShipmentQueryByTrackingNumber("")

	require.Error(t, err)
}

func TestGetShipmentQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentQueryIsNotConstructed)
}
