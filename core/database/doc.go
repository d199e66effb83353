// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to properly configure MySQL
// connections to the upstream stock sources (the Reflex and M3 views the
// extraction step pulls snapshots from).
//
// # Connect
//
// The Connect function establishes a connection based on the application
// configuration. MySQL is the production driver; an in-memory SQLite mode
// exists for tests.
//
// # Schema Inspection
//
// GetTableColumns and RequireColumns verify that a source table or view
// exposes the column-exact schema the extraction expects. A missing
// column aborts the extraction instead of producing a truncated snapshot.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	err = database.RequireColumns(db, "m3_stock", "SKU", "WMS", "Depot")
package database
