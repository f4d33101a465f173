// Package store provides a unified seam over the relational backend
package store

import (
	"context"
	"errors"

	"recordkeeper/internal/platform/logger"
	"recordkeeper/internal/platform/store/pg"
)

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag is a tiny interface to inspect command results
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner wraps transaction execution around a function
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Config configures the store backends
type Config struct {
	PG PGConfig
}

// PGConfig configures the postgres backend
type PGConfig struct {
	URL         string
	MaxConns    int32
	SlowQueryMs int
}

// Store is the facade handed to wiring code
// zero value is safe but does nothing
type Store struct {
	Log logger.Logger

	// PG is the postgres sql seam, nil when disabled
	PG TxRunner

	pgClient *pg.PG
}

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger attaches a logger used by the sql adapter
func WithLogger(l logger.Logger) Option {
	return func(s *Store) error { s.Log = l; return nil }
}

// Open constructs a Store with a connected postgres backend
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	if cfg.PG.URL == "" {
		return nil, errors.New("store: postgres url required")
	}
	client, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
	})
	if err != nil {
		return nil, err
	}
	s.pgClient = client
	s.PG = newPGAdapter(client, s.Log, cfg.PG.SlowQueryMs)
	return s, nil
}

// Ping reports backend readiness
func (s *Store) Ping(ctx context.Context) error {
	if p, ok := s.PG.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Close releases backend resources
func (s *Store) Close(context.Context) error {
	if s.pgClient != nil {
		s.pgClient.Close()
	}
	return nil
}
