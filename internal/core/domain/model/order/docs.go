// Package order contains the Order aggregate and its supporting types.
//
// An Order is a soft-deleted record with a unique human-facing number and an
// optional reference to one Shipment. The reference is unidirectional and
// many-to-one-or-none: an order points at most at one shipment, while several
// orders may point at the same shipment. Because of that sharing, nothing in
// this package ever cascades a deletion across the association - soft-deleting
// an order leaves its shipment untouched, and the shipment reference is only
// modified through the explicit AttachShipment/DetachShipment operations.
package order
