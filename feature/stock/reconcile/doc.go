// Package reconcile matches the categorized Reflex and M3 snapshots.
//
// Two key regimes exist because lot tracking is not universal. Lines
// carrying a lot are matched exactly on (sku, lot, category); lines
// without one are aggregated and matched on (sku, category). A line
// with a lot never participates in the lot-absent flow and vice versa,
// so the flows partition the input and nothing is counted twice.
//
// Build produces the wide comparison (one quantity column per target
// depot plus total and ecart); FindReliquat is its structural
// complement, surfacing the M3 lines the join would leave unmatched.
package reconcile
