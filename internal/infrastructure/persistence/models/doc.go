// Package models contains GORM database models for the infrastructure layer.
// Models are kept apart from domain entities and converted with ToDomain/FromDomain.
package models
