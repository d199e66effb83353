// Package regulate turns reconciliation discrepancies into corrective
// withdrawals.
//
// Policy applies the business cascade: when M3 over-reports stock
// relative to Reflex, the surplus is assigned to depots per category
// and sub-type (picking depot first for A01 with the remainder on the
// reserve depot, SMS depot for A06, downgrade depot for DES/DEF).
// Allocator then distributes each per-depot total across the detailed
// M3 lines, largest line first, emitting one Action per line touched
// and an explicit fulfillment status per group.
package regulate
