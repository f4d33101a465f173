// Package service contains record workflows: the CRUD facade and the
// concurrent batch engine (processor.go)
package service

import (
	"context"
	"time"

	"recordkeeper/internal/core/emailaddr"
	"recordkeeper/internal/modkit/repokit"
	perr "recordkeeper/internal/platform/errors"
	"recordkeeper/internal/services/api/records/domain"
	"recordkeeper/internal/services/api/records/repo"
)

// Service defines the service contract for records
type Service interface{ domain.ServicePort }

// Config holds the batch-engine tunables, read once at construction
type Config struct {
	// Workers bounds the processing pool, default 10
	Workers int

	// WorkDelay is the simulated per-record processing latency, default 100ms
	WorkDelay time.Duration
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cfg    Config
}

// New creates a new records service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Svc {
	if db == nil {
		panic("records.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("records.Service requires a non nil Repo binder")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 10
	}
	if cfg.WorkDelay <= 0 {
		cfg.WorkDelay = 100 * time.Millisecond
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, cfg: cfg}
}

// List returns all stored records
func (s *Svc) List(ctx context.Context) ([]domain.Record, error) {
	return s.Repo.List(ctx)
}

// Get returns the record with the given id
func (s *Svc) Get(ctx context.Context, id int64) (domain.Record, error) {
	return s.Repo.Get(ctx, id)
}

// Create validates the email format and persists a new record
func (s *Svc) Create(ctx context.Context, in domain.RecordInput) (domain.Record, error) {
	if !emailaddr.Valid(in.Email) {
		return domain.Record{}, perr.Validationf("email", "Invalid email format")
	}
	return s.Repo.Save(ctx, domain.Record{
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		Email:       in.Email,
	})
}

// Update validates the email format and rewrites an existing record
func (s *Svc) Update(ctx context.Context, id int64, in domain.RecordInput) (domain.Record, error) {
	if !emailaddr.Valid(in.Email) {
		return domain.Record{}, perr.Validationf("email", "Invalid email format")
	}
	if _, err := s.Repo.Get(ctx, id); err != nil {
		return domain.Record{}, err
	}
	return s.Repo.Save(ctx, domain.Record{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		Email:       in.Email,
	})
}

// Delete removes the record with the given id
func (s *Svc) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
