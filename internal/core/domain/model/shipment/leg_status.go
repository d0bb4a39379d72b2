package shipment

import (
	"fmt"

	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
)

// LegStatus represents the lifecycle state of a single shipment leg.
//
// The machine is strictly linear:
//
//	LegPending ──> LegInTransit ──> LegArrived ──> LegUnloaded ──> LegCompleted
//
// Same-state transitions are idempotent no-ops; skipping a state is rejected.
type LegStatus int

const (
	// LegStatusUnknown represents an invalid or undefined leg status.
	LegStatusUnknown LegStatus = iota

	// LegPending means the leg has not started yet.
	LegPending

	// LegInTransit means the truck is driving this leg.
	LegInTransit

	// LegArrived means the truck reached the leg's destination warehouse.
	LegArrived

	// LegUnloaded means goods were unloaded at the destination warehouse.
	LegUnloaded

	// LegCompleted closes the leg and triggers advancement of the next leg
	// (or delivery of the shipment when this was the last leg).
	LegCompleted
)

func getLegStatusStrings() map[LegStatus]string {
	return map[LegStatus]string{
		LegStatusUnknown: "unknown",
		LegPending:       "pending",
		LegInTransit:     "in_transit",
		LegArrived:       "arrived",
		LegUnloaded:      "unloaded",
		LegCompleted:     "completed",
	}
}

// legSuccessor returns the only legal next state for each leg status.
func legSuccessor() map[LegStatus]LegStatus {
	return map[LegStatus]LegStatus{
		LegPending:   LegInTransit,
		LegInTransit: LegArrived,
		LegArrived:   LegUnloaded,
		LegUnloaded:  LegCompleted,
	}
}

// ParseLegStatus converts the wire representation to a LegStatus.
func ParseLegStatus(s string) (LegStatus, error) {
	for status, str := range getLegStatusStrings() {
		if str == s && status != LegStatusUnknown {
			return status, nil
		}
	}
	return LegStatusUnknown, errs.NewValueIsInvalidErrorWithCause("leg status",
		fmt.Errorf("%q is not a valid leg status", s))
}

// Validate checks if the LegStatus value is one of the defined states.
func (s LegStatus) Validate() error {
	if s < LegPending || s > LegCompleted {
		return errs.NewValueIsInvalidErrorWithCause("leg status",
			fmt.Errorf("%d is not a valid leg status", s))
	}
	return nil
}

// String returns the wire representation of the leg status.
func (s LegStatus) String() string {
	if str, ok := getLegStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether the linear leg machine allows moving to next.
func (s LegStatus) CanTransitionTo(next LegStatus) bool {
	if s == next {
		return true
	}
	return legSuccessor()[s] == next
}
