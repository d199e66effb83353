// Package snapshot handles the tabular edges of a reconciliation run.
//
// On the way in it standardizes the raw Reflex and M3 snapshots:
// column-exact header resolution, whitespace trimming, lot sentinel
// normalization ("", "None", "nan", "NaN", "N/A" mean no lot), the M3
// SKU preference (WMS identifier over M3 identifier when non-empty),
// and quantity coercion where malformed values become zero instead of
// failing the run. On the way out it builds the run workbook with the
// correspondence, reliquat, regulation, action and purchase-order
// sheets.
//
// Snapshots are staged as xlsx objects in the storage bucket; excelize
// does the reading and writing, the storage client the transport.
package snapshot
