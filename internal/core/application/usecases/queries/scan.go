package queries

import (
	"database/sql"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Scan helpers for nullable columns shared by the query handlers.

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}

	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func optionalDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	return &d.Decimal
}

func optionalTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
