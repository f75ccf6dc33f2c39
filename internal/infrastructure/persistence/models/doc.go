// Package models contains the GORM database models of the RMS tables.
// Models are kept apart from the domain entities and convert with ToDomain
// and FromDomain.
package models
