package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/porquinho-server/internal/config"
	"github.com/carson-networks/porquinho-server/internal/storage/sqlconfig"
)

// Storage holds both tiers. Remote is nil when no postgres address is
// configured; Local is always present.
type Storage struct {
	Remote sqlconfig.IRecordTable
	Local  sqlconfig.IRecordTable

	databases []*sql.DB
}

// NewStorage opens the local SQLite tier, migrating it on the way, and the
// remote Postgres tier when configured. The remote schema is managed by
// scripts/db_migrations.
func NewStorage(env *config.Config) (*Storage, error) {
	store := &Storage{}

	if _, err := RunSQLiteMigrations(env.SQLitePath); err != nil {
		return nil, fmt.Errorf("migrate local database: %w", err)
	}

	localDB, err := sql.Open("sqlite", env.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	localDB.SetMaxOpenConns(1)
	store.databases = append(store.databases, localDB)
	store.Local = sqlconfig.NewSQLiteRecordTable(localDB)

	if env.PostgresEnabled() {
		remoteDB, err := sql.Open("postgres", env.PostgresDSN())
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("open remote database: %w", err)
		}
		store.databases = append(store.databases, remoteDB)
		store.Remote = sqlconfig.NewPostgresRecordTable(remoteDB)
		logrus.WithField("address", env.PostgresAddress).Info("Storage.NewStorage.remoteEnabled")
	} else {
		logrus.Info("Storage.NewStorage.localOnly")
	}

	return store, nil
}

func (s *Storage) HasRemote() bool {
	return s.Remote != nil
}

func (s *Storage) Close() error {
	var errs []error
	for _, db := range s.databases {
		errs = append(errs, db.Close())
	}
	return errors.Join(errs...)
}
