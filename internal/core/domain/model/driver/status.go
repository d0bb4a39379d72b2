package driver

import (
	"fmt"

	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
)

// Status reflects where in the shipment lifecycle a driver currently is.
// Lifecycle handlers set it unconditionally; there is no transition table.
type Status int

const (
	// StatusUnknown is the zero value and is never valid.
	StatusUnknown Status = iota

	// StatusAvailable means the driver can take a new shipment.
	StatusAvailable

	// StatusOnRoute means the driver is transporting a shipment.
	StatusOnRoute

	// StatusLoading means the driver is at a dock being loaded.
	StatusLoading

	// StatusUnloading means the driver is at a warehouse being unloaded.
	StatusUnloading

	// StatusOffDuty means the driver is not working.
	StatusOffDuty
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusAvailable: "available",
		StatusOnRoute:   "on_route",
		StatusLoading:   "loading",
		StatusUnloading: "unloading",
		StatusOffDuty:   "off_duty",
	}
}

// ParseStatus converts a wire representation into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("driver status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the status is one of the defined states.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusOffDuty {
		return errs.NewValueIsInvalidErrorWithCause("driver status",
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
