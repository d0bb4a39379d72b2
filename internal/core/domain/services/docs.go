// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the freight system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - SettlementCalculator: A domain service for splitting a delivered
//     shipment's value into driver payment, expenses and company profit
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
