// Package storage keeps loans and payments for the API and loads seed data
// from YAML files.
package storage
