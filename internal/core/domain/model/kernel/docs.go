// Package kernel contains shared value objects used across the domain model:
// the UUID identifier wrapper and the generators for human-readable business
// references (tracking numbers, transaction references).
//
// Everything in this package is immutable and safe for concurrent use.
package kernel
