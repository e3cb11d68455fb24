// Package main provides the seed command for populating the database with
// initial data. Seeders run individually or together, each pass wrapped in a
// single transaction.
package main

import (
	"context"
	"database/sql"
	"fmt"
)

// Seeder defines the interface for database seeders.
// Each seeder populates one domain's initial data.
type Seeder interface {
	// Name returns the unique identifier for this seeder.
	Name() string

	// Description returns a human-readable description of what this seeder does.
	Description() string

	// Seed executes the seeding logic within the provided transaction.
	Seed(ctx context.Context, tx *sql.Tx) error
}

// seeders holds every registered seeder in registration order, which is also
// the order -all and -list use.
var seeders []Seeder

// registerSeeder adds a seeder to the registry.
// Seeders self-register via init() functions.
func registerSeeder(s Seeder) {
	seeders = append(seeders, s)
}

// listSeeders returns all registered seeders in registration order.
func listSeeders() []Seeder {
	return seeders
}

// runSeeder executes a single seeder by name within a transaction.
// Returns an error if the seeder is not found or if seeding fails.
func runSeeder(ctx context.Context, db *sql.DB, name string) error {
	for _, s := range seeders {
		if s.Name() == name {
			return inTransaction(ctx, db, s)
		}
	}
	return fmt.Errorf("seeder not found: %s", name)
}

// runAllSeeders executes every registered seeder, each in its own
// transaction, stopping at the first failure.
func runAllSeeders(ctx context.Context, db *sql.DB) error {
	for _, s := range seeders {
		if err := inTransaction(ctx, db, s); err != nil {
			return err
		}
	}
	return nil
}

func inTransaction(ctx context.Context, db *sql.DB, s Seeder) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := s.Seed(ctx, tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("seed %s: %w", s.Name(), err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
