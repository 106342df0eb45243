// Package database handles database connections and schema inspection.
//
// It wraps GORM to open the database that may hold the reference set when it
// is not kept in a file. MySQL is the production driver; SQLite serves local
// setups and tests.
//
// # Schema Inspection
//
// GetTableColumns and RequireColumns verify that the reference table exposes
// the expected columns before any rows are read, so a misconfigured table is
// reported as a setup error instead of an empty reference set.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	err = database.RequireColumns(db, "mnp_reference", "group_name", "number")
package database
