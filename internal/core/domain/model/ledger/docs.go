// Package ledger contains the append-only financial ledger entry. A
// Transaction snapshots the driver balance it was posted against and is
// immutable once created; correcting a mistake means posting a compensating
// entry, never editing history.
package ledger
