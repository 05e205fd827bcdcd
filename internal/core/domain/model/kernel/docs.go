// Package kernel provides core domain primitives shared by the order and
// shipment models.
//
// The package includes:
//   - Money: A value object for non-negative monetary amounts (order totals, shipment costs)
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
