package shipment

import (
	"fmt"

	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Pending ──> Queued ──> Loading ──> InTransit ──┬──> Delivered
//	   ^           │                      │  ^     │
//	   └───────────┘                      v  │     │
//	 (queue cancellation)            AtWarehouse ──┘
//
// Cancelled is reachable from every non-terminal state. Delivered and
// Cancelled are terminal. Transitions are driven by other components (queue
// scheduler, leg completion), not chosen directly by users; the force-status
// escape hatch bypasses the table.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status: stock reserved, not yet queued at a dock.
	StatusPending

	// StatusQueued means the shipment holds a waiting dock queue entry.
	StatusQueued

	// StatusLoading means the shipment is being physically loaded at the dock.
	StatusLoading

	// StatusInTransit means the shipment has left the origin warehouse.
	StatusInTransit

	// StatusAtWarehouse means the shipment is paused at an intermediate warehouse.
	StatusAtWarehouse

	// StatusDelivered is the terminal success state; settlement becomes legal.
	StatusDelivered

	// StatusCancelled is the terminal abort state, reachable from any non-terminal state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "unknown",
		StatusPending:     "pending",
		StatusQueued:      "queued",
		StatusLoading:     "loading",
		StatusInTransit:   "in_transit",
		StatusAtWarehouse: "at_warehouse",
		StatusDelivered:   "delivered",
		StatusCancelled:   "cancelled",
	}
}

// statusTransitions is the enforced transition table. Same-state transitions
// are always allowed as idempotent no-ops and are not listed.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:     {StatusQueued, StatusCancelled},
		StatusQueued:      {StatusLoading, StatusPending, StatusCancelled},
		StatusLoading:     {StatusInTransit, StatusCancelled},
		StatusInTransit:   {StatusAtWarehouse, StatusDelivered, StatusCancelled},
		StatusAtWarehouse: {StatusInTransit, StatusDelivered, StatusCancelled},
		StatusDelivered:   {},
		StatusCancelled:   {},
	}
}

// ParseStatus converts the wire representation (e.g. "in_transit") to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("shipment status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipment status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the transition table allows moving to next.
// Same-state transitions are allowed (idempotent no-op).
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
