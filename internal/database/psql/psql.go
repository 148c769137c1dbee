package psql

import (
	"fmt"
	"log/slog"

	"shopapi/internal/database/psql/migrations"
	"shopapi/pkg/lib/logger/sl"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

type Storage struct {
	log *slog.Logger
	db  *sqlx.DB
}

// New connects to postgres and applies the embedded migrations.
func New(log *slog.Logger, connStr string) (*Storage, error) {
	const op = "database.psql.New"
	opLog := log.With("op", op)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		opLog.Error("Error connect to database", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := Migrate(db); err != nil {
		opLog.Error("Error applying migrations", sl.Err(err))
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		log: log,
		db:  db,
	}, nil
}

func NewWithParams(log *slog.Logger, db *sqlx.DB) *Storage {
	return &Storage{
		log: log,
		db:  db,
	}
}

func Migrate(db *sqlx.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db.DB, ".")
}

func (s *Storage) Close() error {
	return s.db.Close()
}
