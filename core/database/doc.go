// Package database manages the relational store connection.
//
// Connect opens a GORM handle for the configured driver: MySQL in normal
// operation, SQLite for tests (":memory:" gives a throwaway database).
// The underlying sql.DB pool is capped at Config.MaxOpenConns connections
// shared across all concurrent requests, and the MySQL DSN carries
// connection and I/O timeouts so store calls are always bounded.
package database
