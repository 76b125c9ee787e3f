package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// MigrationResult reports the schema version before and after a run.
type MigrationResult struct {
	PreVersion  uint
	PostVersion uint
}

// RunSQLiteMigrations brings the local database at dbPath up to date. It uses
// its own connection because closing the migrator closes the database.
func RunSQLiteMigrations(dbPath string) (MigrationResult, error) {
	migrateDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return MigrationResult{}, fmt.Errorf("create sqlite driver: %w", err)
	}

	return runMigrations(driver, "sqlite", "migrations/sqlite")
}

// RunPostgresMigrations brings the remote database behind dsn up to date.
func RunPostgresMigrations(dsn string) (MigrationResult, error) {
	migrateDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := postgres.WithInstance(migrateDB, &postgres.Config{})
	if err != nil {
		return MigrationResult{}, fmt.Errorf("create postgres driver: %w", err)
	}

	return runMigrations(driver, "postgres", "migrations/postgres")
}

func runMigrations(driver database.Driver, databaseName, dir string) (MigrationResult, error) {
	d, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, databaseName, driver)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	var result MigrationResult
	result.PreVersion, err = currentVersion(m)
	if err != nil {
		return result, err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return result, fmt.Errorf("run migrations: %w", err)
	}

	result.PostVersion, err = currentVersion(m)
	return result, err
}

func currentVersion(m *migrate.Migrate) (uint, error) {
	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read migration version: %w", err)
	}
	return version, nil
}
