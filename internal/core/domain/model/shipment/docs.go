// Package shipment implements the shipment aggregate: the shipment lifecycle
// state machine, the owned shipment items (price-snapshotted order lines), and
// the ordered legs of multi-warehouse routes with their own state machine.
//
// The aggregate is the single writer for both state machines. Cascading
// transitions (completing a leg advancing the next leg, or delivering the
// shipment after the last leg) happen inside one aggregate method so the
// caller can persist them in one transaction.
package shipment
