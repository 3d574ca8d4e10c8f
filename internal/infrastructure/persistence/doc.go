// Package persistence provides database repository implementations.
// It uses GORM to store signing key metadata in SQLite or PostgreSQL.
package persistence
