// Package stock implements the stock reconciliation feature.
//
// It reconciles two sources of truth for the same physical inventory:
//  1. Reflex: the retail ledger, one quantity per SKU/lot.
//  2. M3: the warehouse system, stock spread across depots and locations.
//
// A run standardizes both snapshots, categorizes every line through the
// configured rules, builds the wide correspondence under the dual
// lot-present/lot-absent key regimes, isolates the reliquat (warehouse
// stock with no retail counterpart), applies the regulation cascade to
// warehouse surpluses and allocates the decided withdrawals onto
// concrete M3 stock lines as corrective actions.
//
// # Components
//
//   - Service: Orchestrates snapshot fetching, the pipeline and the
//     run workbook upload; caches the latest report.
//   - Handler: Exposes HTTP endpoints to trigger runs and read reports.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /stock/reconcile : Run the pipeline against the staged snapshots.
//   - GET  /stock/report    : Latest run report.
//   - GET  /stock/actions   : Corrective actions of the latest run.
package stock
