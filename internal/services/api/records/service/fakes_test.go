package service_test

import (
	"context"
	"sort"
	"sync"

	"recordkeeper/internal/modkit/repokit"
	perr "recordkeeper/internal/platform/errors"
	"recordkeeper/internal/services/api/records/domain"
	"recordkeeper/internal/services/api/records/repo"
)

// memRepo is an in-memory Repo with call accounting for batch assertions
type memRepo struct {
	mu   sync.Mutex
	seq  int64
	recs map[int64]domain.Record

	// ids overrides AllIDs when set, so the id index can disagree with
	// the stored rows (records deleted behind the index)
	ids []int64

	saveErr map[int64]error

	saveCalls int
	getCalls  map[int64]int

	// in-flight unit accounting between Get and Save, for pool-bound checks
	inFlight    int
	maxInFlight int
}

func newMemRepo(recs ...domain.Record) *memRepo {
	m := &memRepo{
		recs:     map[int64]domain.Record{},
		saveErr:  map[int64]error{},
		getCalls: map[int64]int{},
	}
	for _, r := range recs {
		if r.ID > m.seq {
			m.seq = r.ID
		}
		m.recs[r.ID] = r
	}
	return m
}

func (m *memRepo) List(context.Context) ([]domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Record, 0, len(m.recs))
	for _, r := range m.recs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRepo) Get(_ context.Context, id int64) (domain.Record, error) {
	m.mu.Lock()
	m.getCalls[id]++
	rec, ok := m.recs[id]
	if ok {
		m.inFlight++
		if m.inFlight > m.maxInFlight {
			m.maxInFlight = m.inFlight
		}
	}
	m.mu.Unlock()
	if !ok {
		return domain.Record{}, perr.NotFoundf("record %d not found", id)
	}
	return rec, nil
}

func (m *memRepo) AllIDs(context.Context) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ids != nil {
		return append([]int64(nil), m.ids...), nil
	}
	out := make([]int64, 0, len(m.recs))
	for id := range m.recs {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (m *memRepo) Save(_ context.Context, rec domain.Record) (domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inFlight > 0 {
		m.inFlight--
	}
	if err := m.saveErr[rec.ID]; err != nil {
		return domain.Record{}, err
	}
	m.saveCalls++
	if rec.ID == 0 {
		m.seq++
		rec.ID = m.seq
	}
	m.recs[rec.ID] = rec
	return rec, nil
}

func (m *memRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recs[id]; !ok {
		return perr.NotFoundf("record %d not found", id)
	}
	delete(m.recs, id)
	return nil
}

var _ repo.Repo = (*memRepo)(nil)

// fakeTx satisfies repokit.TxRunner; Tx just runs fn against itself since the
// bound repo ignores the queryer
type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (fakeTx) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (f fakeTx) Tx(_ context.Context, fn func(q repokit.Queryer) error) error {
	return fn(f)
}

// bindTo returns a binder that always yields the given repo
func bindTo(m *memRepo) repokit.Binder[repo.Repo] {
	return repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return m })
}
