package service

import (
	"context"
	"time"

	"recordkeeper/internal/modkit/repokit"
	"recordkeeper/internal/platform/logger"
	"recordkeeper/internal/services/api/records/domain"

	"golang.org/x/sync/errgroup"
)

// ProcessOne performs the load -> simulate work -> mark processed -> persist
// transition for a single record id inside one store transaction, so an
// observer sees either the untouched row or the fully processed one.
//
// The simulated-work wait observes cancellation: a canceled unit returns
// promptly with ctx.Err() before any mutation, and the transaction rolls
// back. The cancellation is returned, never swallowed, so the caller can
// still see errors.Is(err, context.Canceled).
func (s *Svc) ProcessOne(ctx context.Context, id int64) (domain.Record, error) {
	var out domain.Record
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		rec, err := r.Get(ctx, id)
		if err != nil {
			return err
		}

		t := time.NewTimer(s.cfg.WorkDelay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}

		rec.Status = domain.StatusProcessed
		saved, err := r.Save(ctx, rec)
		if err != nil {
			return err
		}
		out = saved
		return nil
	})
	if err != nil {
		return domain.Record{}, err
	}
	return out, nil
}

// ProcessAll fans ProcessOne out over every stored record id on a bounded
// pool and returns the successful subset. Per-record failures (missing rows,
// store errors, cancellation) are isolated: they drop that record from the
// result and never abort sibling units or the batch. Only a failure to
// enumerate the ids at all propagates.
func (s *Svc) ProcessAll(ctx context.Context) ([]domain.Record, error) {
	ids, err := s.Repo.AllIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Record{}, nil
	}

	log := logger.C(ctx)

	// One result slot per unit of work, written by that unit alone and
	// combined only after the join, so no lock or shared error state is
	// needed. Relies on AllIDs returning each id at most once.
	slots := make([]*domain.Record, len(ids))

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Workers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			rec, err := s.ProcessOne(ctx, id)
			if err != nil {
				log.Warn().Err(err).Int64("record_id", id).Msg("record processing failed")
				return nil
			}
			slots[i] = &rec
			return nil
		})
	}
	// full barrier: workers never return errors, so Wait only joins
	_ = g.Wait()

	out := make([]domain.Record, 0, len(ids))
	for _, r := range slots {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}
