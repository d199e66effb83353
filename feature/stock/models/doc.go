// Package models defines the value records flowing through a stock
// reconciliation run: standardized snapshot lines for the Reflex ledger
// and the M3 warehouse system, the wide per-depot comparison rows, the
// reliquat rows, the regulation rows, and the terminal corrective Action
// in M3's stock-correction schema.
//
// All records are derived by pure transformation of the input snapshots
// and are never mutated after creation; nothing here outlives one run.
package models
