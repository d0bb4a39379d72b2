// Package queue contains the QueueEntry aggregate: one shipment's claim on
// one warehouse's loading dock. Entries are ordered by priority (higher
// first), ties broken by earliest arrival time. An entry is never deleted,
// only transitioned to a terminal state.
package queue
