package queue

import (
	"fmt"

	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
)

// Status represents a queue entry's position in the dock workflow.
type Status int

const (
	// StatusUnknown is the zero value and is never valid.
	StatusUnknown Status = iota

	// StatusWaiting means the entry is in line for the dock.
	StatusWaiting

	// StatusLoading means the entry currently occupies the dock.
	StatusLoading

	// StatusCompleted means loading finished. Terminal.
	StatusCompleted

	// StatusCancelled means the entry left the queue without loading. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusWaiting:   "waiting",
		StatusLoading:   "loading",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusWaiting:   {StatusLoading, StatusCancelled},
		StatusLoading:   {StatusCompleted, StatusCancelled},
		StatusCompleted: {},
		StatusCancelled: {},
	}
}

// ParseStatus converts a wire representation into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("queue status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined workflow states.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("queue status",
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
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the workflow allows moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
