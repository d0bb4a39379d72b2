// Package stock implements the per-(product, warehouse) stock ledger.
//
// A StockRecord tracks the on-hand quantity and the quantity reserved for open
// shipments. The available quantity is always derived as quantity minus
// reservedQuantity and is recomputed by every mutation; it is never set
// independently. Records are created lazily when stock first arrives at a
// warehouse and are never deleted, only zeroed.
package stock
