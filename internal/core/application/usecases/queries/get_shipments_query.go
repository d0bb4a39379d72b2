// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models built from raw SQL, bypassing the
// aggregates entirely.
package queries

import (
	"errors"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetShipmentsQueryIsNotConstructed = errors.New(
	"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
)

// GetShipmentsQuery retrieves shipment summaries, optionally narrowed to one
// lifecycle status, one driver, or both. Nil filters mean no filtering.
//
// Example:
//
//	status := shipment.StatusInTransit
//	query := NewGetShipmentsQuery(&status, nil)
//	shipments, err := handler.Handle(ctx, query)
type GetShipmentsQuery struct {
	status   *shipment.Status
	driverID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a query for shipment summaries.
func NewGetShipmentsQuery(status *shipment.Status, driverID *kernel.UUID) (GetShipmentsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetShipmentsQuery{}, err
		}
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return GetShipmentsQuery{}, err
		}
	}

	return GetShipmentsQuery{
		status:   status,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetShipmentsQuery) Status() *shipment.Status {
	return q.status
}

// DriverID returns the optional driver filter.
func (q GetShipmentsQuery) DriverID() *kernel.UUID {
	return q.driverID
}

// GetShipmentsQueryResponse is one shipment summary row.
type GetShipmentsQueryResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Status         shipment.Status
	OriginID       kernel.UUID
	DestinationID  *kernel.UUID
	DriverID       *kernel.UUID
	TotalValue     decimal.Decimal
	TotalWeight    decimal.Decimal
	IsMultiLeg     bool
	CreatedAt      time.Time
}
