// Package repository runs the LightBnB SQL queries.
//
// Every query is parameterized. Errors are logged on the request logger
// and returned with a nil result, so callers never receive partial rows.
package repository

import (
	"context"
	"errors"

	"github.com/FarzanehSa/LightBnB/internal/logger"
	"github.com/FarzanehSa/LightBnB/internal/server"
	"github.com/FarzanehSa/LightBnB/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// DefaultLimit caps list queries when the caller passes no limit.
const DefaultLimit = 10

// DBTX is the part of *pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repositories struct {
	Users        *UserRepository
	Properties   *PropertyRepository
	Reservations *ReservationRepository
	Reviews      *ReviewRepository
}

// NewRepositories wires every repository to the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool, s.Logger)
}

func New(db DBTX, log *zerolog.Logger) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db, log),
		Properties:   NewPropertyRepository(db, log),
		Reservations: NewReservationRepository(db, log),
		Reviews:      NewReviewRepository(db, log),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// logQueryError reports a failed query. Missing rows are expected and stay at debug.
func logQueryError(ctx context.Context, fallback *zerolog.Logger, operation string, err error) {
	l := logger.FromContext(ctx, fallback)
	if errors.Is(err, pgx.ErrNoRows) {
		l.Debug().Str("operation", operation).Msg("no rows")
		return
	}
	l.Error().Err(err).Str("operation", operation).Msg("query failed")
}

// notFoundAs tags pgx.ErrNoRows with the table so sqlerr can name the missing entity.
func notFoundAs(table string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sqlerr.NotFound(table)
	}
	return err
}
