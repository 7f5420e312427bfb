package kvstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

type backend struct {
	sqlDriver    string
	gooseDialect string
	dir          string
	dialect      Dialect
}

var backends = map[string]backend{
	"sqlite": {sqlDriver: "sqlite", gooseDialect: "sqlite3", dir: "migrations/sqlite", dialect: SQLite},
	"pgx":    {sqlDriver: "pgx", gooseDialect: "postgres", dir: "migrations/postgres", dialect: Postgres},
}

// RunMigrations applies the embedded migrations for driver to db.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	b, ok := backends[driver]
	if !ok {
		return fmt.Errorf("unsupported store driver %q", driver)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(b.gooseDialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, b.dir)
}

// Open connects to the store named by driver ("sqlite" or "pgx") and dsn,
// and brings its schema up to date.
func Open(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	b, ok := backends[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	db, err := sql.Open(b.sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", driver, err)
	}

	if b.sqlDriver == "sqlite" {
		// One writer at a time keeps SQLite from returning SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s store: %w", driver, err)
	}

	return NewSQLStore(db, b.dialect), nil
}
