// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"piemarker/internal/model"
)

// pingTimeout bounds the liveness probe made when a database is opened.
const pingTimeout = 5 * time.Second

const createTable = `CREATE TABLE IF NOT EXISTS markers (
	id TEXT PRIMARY KEY,
	created_at BIGINT NOT NULL,
	body TEXT NOT NULL
)`

// dialect holds what differs between the SQL backends.
type dialect struct {
	name        string
	placeholder func(n int) string
}

var (
	sqliteDialect = dialect{
		name:        DriverSQLite,
		placeholder: func(int) string { return "?" },
	}
	postgresDialect = dialect{
		name:        DriverPostgres,
		placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
	}
)

// SQL stores definitions as JSON documents in a single table.
type SQL struct {
	db      *sql.DB
	dialect dialect
	log     *slog.Logger
}

// OpenSQLite opens a pure Go SQLite database. Access goes through one
// connection so writers never hit SQLITE_BUSY.
func OpenSQLite(ctx context.Context, dsn string) (s *SQL, err error) {

	var db *sql.DB
	if db, err = sql.Open("sqlite", dsn); err != nil {
		return nil, fmt.Errorf("%s: %w", "failed to open sqlite", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err = db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return newSQL(ctx, db, sqliteDialect)
}

// OpenPostgres connects through pgx. dsn is a pgx connection string or URL.
func OpenPostgres(ctx context.Context, dsn string) (s *SQL, err error) {

	var config *pgx.ConnConfig
	if config, err = pgx.ParseConfig(dsn); err != nil {
		return nil, fmt.Errorf("%s: %w", "invalid postgres dsn", err)
	}
	return newSQL(ctx, stdlib.OpenDB(*config), postgresDialect)
}

func newSQL(ctx context.Context, db *sql.DB, d dialect) (s *SQL, err error) {

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", "failed to connect to "+d.name, err)
	}
	if _, err = db.ExecContext(ctx, createTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", "failed to create markers table", err)
	}

	s = &SQL{db: db, dialect: d, log: slog.Default().With(slog.String("module", "store"), slog.String("driver", d.name))}
	s.log.Debug("store opened")
	return s, nil
}

func (s *SQL) Create(ctx context.Context, def *model.Definition) (err error) {

	if err = prepare(def); err != nil {
		return err
	}

	var body []byte
	if body, err = json.Marshal(def); err != nil {
		return fmt.Errorf("%s: %w", "failed to encode marker", err)
	}

	query := fmt.Sprintf("INSERT INTO markers (id, created_at, body) VALUES (%s, %s, %s) ON CONFLICT (id) DO NOTHING",
		s.dialect.placeholder(1), s.dialect.placeholder(2), s.dialect.placeholder(3))

	var res sql.Result
	if res, err = s.db.ExecContext(ctx, query, def.ID, def.CreatedAt.UnixNano(), string(body)); err != nil {
		return fmt.Errorf("%s: %w", "failed to insert marker", err)
	}

	var affected int64
	if affected, err = res.RowsAffected(); err != nil {
		return fmt.Errorf("%s: %w", "failed to insert marker", err)
	}
	if affected == 0 {
		return ErrExists
	}
	return nil
}

func (s *SQL) Get(ctx context.Context, id string) (def *model.Definition, err error) {

	query := "SELECT created_at, body FROM markers WHERE id = " + s.dialect.placeholder(1)
	if def, err = scanDefinition(s.db.QueryRowContext(ctx, query, id)); errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return def, err
}

func (s *SQL) List(ctx context.Context) (defs []*model.Definition, err error) {

	var rows *sql.Rows
	if rows, err = s.db.QueryContext(ctx, "SELECT created_at, body FROM markers ORDER BY created_at, id"); err != nil {
		return nil, fmt.Errorf("%s: %w", "failed to list markers", err)
	}
	defer rows.Close()

	defs = []*model.Definition{}
	for rows.Next() {
		var def *model.Definition
		if def, err = scanDefinition(rows); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

func (s *SQL) Update(ctx context.Context, def *model.Definition) (err error) {

	var stored *model.Definition
	if stored, err = s.Get(ctx, def.ID); err != nil {
		return err
	}
	def.CreatedAt = stored.CreatedAt

	var body []byte
	if body, err = json.Marshal(def); err != nil {
		return fmt.Errorf("%s: %w", "failed to encode marker", err)
	}
	query := fmt.Sprintf("UPDATE markers SET body = %s WHERE id = %s", s.dialect.placeholder(1), s.dialect.placeholder(2))
	if _, err = s.db.ExecContext(ctx, query, string(body), def.ID); err != nil {
		return fmt.Errorf("%s: %w", "failed to update marker", err)
	}
	return nil
}

func (s *SQL) Delete(ctx context.Context, id string) (err error) {

	var res sql.Result
	if res, err = s.db.ExecContext(ctx, "DELETE FROM markers WHERE id = "+s.dialect.placeholder(1), id); err != nil {
		return fmt.Errorf("%s: %w", "failed to delete marker", err)
	}

	var affected int64
	if affected, err = res.RowsAffected(); err != nil {
		return fmt.Errorf("%s: %w", "failed to delete marker", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDefinition(row scanner) (def *model.Definition, err error) {

	var createdAt int64
	var body string
	if err = row.Scan(&createdAt, &body); err != nil {
		return nil, err
	}

	def = &model.Definition{}
	if err = json.Unmarshal([]byte(body), def); err != nil {
		return nil, fmt.Errorf("%s: %w", "failed to decode marker", err)
	}
	def.CreatedAt = time.Unix(0, createdAt).UTC()
	return def, nil
}
