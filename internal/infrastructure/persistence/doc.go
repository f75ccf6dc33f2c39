// Package persistence provides the database repository implementations of RMS.
// It uses GORM as the ORM layer over MySQL, PostgreSQL or SQLite, keeps the
// models in the models subpackage and maps misses to the domain not found
// errors. Repositories join the transaction bound to the context by the
// Transactor.
package persistence
