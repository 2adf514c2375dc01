// Package inpsql provides data types and methods for PostgreSQL storage operations.
package inpsql

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"sync"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_shortify/internal/service/modelurl"
	"github.com/danilovkiri/dk_go_shortify/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_shortify/internal/storage/errors"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Check interface implementation explicitly
var (
	_ storage.URLStorage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	DB  *sqlx.DB
	log *zap.SugaredLogger
}

// InitStorage connects to PostgreSQL, applies migrations and closes the connection once ctx is done.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, dsn string, log *zap.SugaredLogger) (*Storage, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db.DB); err != nil {
		db.Close()
		return nil, err
	}
	st := &Storage{DB: db, log: log}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := st.DB.Close(); err != nil {
			log.Errorw("PSQL DB closure failed", "error", err)
			return
		}
		log.Info("PSQL DB connection closed successfully")
	}()
	return st, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

// Dump stores a pair of sURL and URL.
func (s *Storage) Dump(ctx context.Context, URL string, sURL string) error {
	_, err := s.DB.ExecContext(ctx, "INSERT INTO links (url, short) VALUES ($1, $2)", URL, sURL)
	if err == nil {
		s.log.Debugw("Dumping URL", "sURL", sURL, "URL", URL)
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		var existing string
		if err := s.DB.GetContext(ctx, &existing, "SELECT short FROM links WHERE url = $1", URL); err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return &storageErrors.ScanningPSQLError{Err: err}
			}
		}
		return &storageErrors.AlreadyExistsError{URL: URL, ValidSURL: existing, Err: err}
	}
	return &storageErrors.ExecutionPSQLError{Err: err}
}

// Retrieve returns a URL corresponding to sURL.
func (s *Storage) Retrieve(ctx context.Context, sURL string) (URL string, err error) {
	err = s.DB.GetContext(ctx, &URL, "SELECT url FROM links WHERE short = $1", sURL)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", &storageErrors.NotFoundError{SURL: sURL, Err: err}
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return "", &storageErrors.ContextTimeoutExceededError{Err: err}
	case err != nil:
		return "", &storageErrors.ScanningPSQLError{Err: err}
	}
	s.log.Debugw("Retrieving URL", "sURL", sURL, "URL", URL)
	return URL, nil
}

type linkRow struct {
	ID        int64        `db:"id"`
	URL       string       `db:"url"`
	Short     string       `db:"short"`
	CreatedAt sql.NullTime `db:"created_at"`
}

// RetrieveAll returns every stored entry ordered by ID.
func (s *Storage) RetrieveAll(ctx context.Context) (URLs []modelurl.FullURL, err error) {
	var rows []linkRow
	if err := s.DB.SelectContext(ctx, &rows, "SELECT id, url, short, created_at FROM links ORDER BY id"); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, &storageErrors.ContextTimeoutExceededError{Err: err}
		}
		return nil, &storageErrors.ScanningPSQLError{Err: err}
	}
	URLs = make([]modelurl.FullURL, 0, len(rows))
	for _, row := range rows {
		URLs = append(URLs, modelurl.FullURL{
			ID:        row.ID,
			URL:       row.URL,
			SURL:      row.Short,
			CreatedAt: row.CreatedAt.Time,
		})
	}
	return URLs, nil
}

// Delete removes the entry with the given ID.
func (s *Storage) Delete(ctx context.Context, id int64) (sURL string, err error) {
	err = s.DB.GetContext(ctx, &sURL, "DELETE FROM links WHERE id = $1 RETURNING short", id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", &storageErrors.IDNotFoundError{ID: id, Err: err}
	case err != nil:
		return "", &storageErrors.ExecutionPSQLError{Err: err}
	}
	s.log.Debugw("Deleting URL", "id", id, "sURL", sURL)
	return sURL, nil
}

// PingDB checks the DB connection.
func (s *Storage) PingDB() error {
	return s.DB.Ping()
}

// CloseDB closes the DB connection.
func (s *Storage) CloseDB() error {
	return s.DB.Close()
}
