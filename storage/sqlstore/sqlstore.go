// Package sqlstore is the database/sql backend of storage.KV.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"weather-client/storage"
)

// SQL keeps values in a single kv table. Both the pure Go sqlite driver and MySQL
// are registered.
type SQL struct {
	db     *sql.DB
	upsert string
}

var _ storage.KV = (*SQL)(nil)

const createTable = `CREATE TABLE IF NOT EXISTS kv (
	k VARCHAR(191) PRIMARY KEY,
	v TEXT NOT NULL,
	updated_at VARCHAR(32) NOT NULL
)`

var upserts = map[string]string{
	"sqlite": `INSERT INTO kv(k, v, updated_at) VALUES(?,?,?)
		ON CONFLICT(k) DO UPDATE SET v = excluded.v, updated_at = excluded.updated_at`,
	"mysql": `INSERT INTO kv(k, v, updated_at) VALUES(?,?,?)
		ON DUPLICATE KEY UPDATE v = VALUES(v), updated_at = VALUES(updated_at)`,
}

// NewSQL opens (or creates) the database and applies the schema
func NewSQL(driver, dsn string) (*SQL, error) {
	upsert, ok := upserts[driver]
	if !ok {
		return nil, fmt.Errorf("storage: unsupported sql driver %q", driver)
	}
	if dsn == "" {
		return nil, fmt.Errorf("storage: %s backend needs a DSN", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	switch driver {
	case "sqlite":
		// A single writer keeps sqlite from returning SQLITE_BUSY
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			log.Println("warning: could not set WAL mode:", err)
		}
	case "mysql":
		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}

	return &SQL{db: db, upsert: upsert}, nil
}

func (s *SQL) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, s.upsert, key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *SQL) Close() error {
	return s.db.Close()
}
