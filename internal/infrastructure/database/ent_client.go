package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/eslsoft/lingobot/internal/infrastructure/config"
	entdb "github.com/eslsoft/lingobot/internal/infrastructure/database/ent"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const pingTimeout = 5 * time.Second

// NewEntClient opens an ent.Client on the configured database. The returned
// cleanup closes the underlying pool.
func NewEntClient(cfg *config.Config) (*entdb.Client, func(), error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, err
	}
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, nil, err
	}

	db, dia, err := openDB(driver, dsn)
	if err != nil {
		return nil, nil, err
	}

	client := entdb.NewClient(entdb.Driver(entsql.OpenDB(dia, db)))
	if cfg.Database.LogSQL {
		client = client.Debug()
	}
	return client, func() { _ = client.Close() }, nil
}

func openDB(driver, dsn string) (*sql.DB, string, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("open %s database: %w", driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	var dia string
	switch driver {
	case "postgres":
		dia = dialect.Postgres
	case "sqlite3":
		dia = dialect.SQLite
		// go-sqlite3 opens one connection per pool slot; a single shared
		// connection avoids SQLITE_BUSY under concurrent webhook handlers.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
			db.Close()
			return nil, "", fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	default:
		db.Close()
		return nil, "", fmt.Errorf("unsupported database driver %q", driver)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("ping %s database: %w", driver, err)
	}
	return db, dia, nil
}
