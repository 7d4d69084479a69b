// Package database provides SQLite database connectivity for Insteon Link.
//
// This package manages:
//   - Database connection with WAL mode for concurrent access
//   - Schema bootstrap (CREATE TABLE IF NOT EXISTS, additive-only)
//   - Connection pooling and lifecycle management
//   - STRICT mode enforcement for type safety
//
// Security Considerations:
//   - All queries use parameterised statements (no SQL injection)
//   - Database file permissions are set to 0600 (owner read/write only)
//
// Performance Characteristics:
//   - WAL mode allows concurrent reads during writes
//   - Busy timeout prevents lock contention errors
//   - Connection pooling reduces overhead
//
// Usage:
//
//	db, err := database.Open(cfg.Database)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	if err := db.Bootstrap(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Schema Strategy:
//
// The schema is intentionally small: Insteon Link persists device
// identity only. Property state lives on the devices themselves and is
// read over the powerline, so the database never stores mask values.
// Future columns must be NULLABLE or carry DEFAULT values so existing
// databases upgrade without a migration step.
package database
