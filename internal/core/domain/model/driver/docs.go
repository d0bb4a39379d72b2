// Package driver contains the Driver aggregate. A driver carries the single
// mutable running balance the ledger posts against; the status mirrors the
// driver's position in the shipment lifecycle and is set by lifecycle events
// rather than managed independently.
package driver
