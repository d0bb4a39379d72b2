package ledger

import (
	"fmt"

	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
)

// TransactionStatus reflects whether a ledger entry counts toward the
// reconciled balance. Entries are posted completed; the other states exist
// for imports and manual corrections.
type TransactionStatus int

const (
	// StatusUnknown is the zero value and is never valid.
	StatusUnknown TransactionStatus = iota

	// StatusPending means the entry is recorded but not yet effective.
	StatusPending

	// StatusCompleted means the entry is effective and counted.
	StatusCompleted

	// StatusFailed means the entry never took effect.
	StatusFailed

	// StatusCancelled means the entry was voided after recording.
	StatusCancelled
)

func getStatusStrings() map[TransactionStatus]string {
	return map[TransactionStatus]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusCompleted: "completed",
		StatusFailed:    "failed",
		StatusCancelled: "cancelled",
	}
}

// ParseTransactionStatus converts a wire representation into a TransactionStatus.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("transaction status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the status is one of the defined states.
func (s TransactionStatus) Validate() error {
	if s <= StatusUnknown || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("transaction status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s TransactionStatus) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
