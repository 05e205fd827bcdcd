// Package shipment contains the Shipment aggregate and its supporting enums.
//
// A Shipment is a soft-deleted record identified by a unique tracking code.
// It may be referenced by several orders at once, so its order back-reference
// is informational rather than an ownership relation. The aggregate only
// offers the unsafe soft-delete primitive; the safe path (detach the order's
// reference first, then delete) lives in the order coordination layer.
package shipment
