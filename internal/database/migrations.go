package database

import "fmt"

// migration is a named schema step. Statements are produced per dialect so
// the binary carries its own schema instead of shipping .sql files.
type migration struct {
	name      string
	statement func(Dialect) string
}

var migrations = []migration{
	{
		name:      "001_create_app_state",
		statement: func(d Dialect) string { return d.CreateStateTableQuery() },
	},
}

// RunMigrations executes all pending migrations in order
func (db *DB) RunMigrations() error {
	// Create migrations table if it doesn't exist
	if _, err := db.Exec(db.Dialect.CreateMigrationsTableQuery()); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		hasRun, err := db.hasMigrationRun(m.name)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if hasRun {
			continue
		}

		if _, err := db.Exec(m.statement(db.Dialect)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", m.name, err)
		}

		if err := db.recordMigration(m.name); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", m.name, err)
		}
	}

	return nil
}

// hasMigrationRun checks if a migration has already been executed
func (db *DB) hasMigrationRun(name string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM migrations WHERE name = ?"
	err := db.QueryRow(query, name).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// recordMigration marks a migration as completed
func (db *DB) recordMigration(name string) error {
	query := "INSERT INTO migrations (name) VALUES (?)"
	_, err := db.Exec(query, name)
	return err
}
