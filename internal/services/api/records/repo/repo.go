// Package repo provides postgres access for records
package repo

import (
	"context"

	"recordkeeper/internal/modkit/repokit"
	perr "recordkeeper/internal/platform/errors"
	"recordkeeper/internal/services/api/records/domain"
)

// Repo defines the repository contract for records
type Repo interface {
	List(ctx context.Context) ([]domain.Record, error)
	Get(ctx context.Context, id int64) (domain.Record, error)
	AllIDs(ctx context.Context) ([]int64, error)
	// Save inserts when the record has no id yet and assigns one;
	// otherwise it rewrites the row. Returns the persisted value.
	Save(ctx context.Context, rec domain.Record) (domain.Record, error)
	Delete(ctx context.Context, id int64) error
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) List(ctx context.Context) ([]domain.Record, error) {
	const sql = `
select id, name, description, coalesce(status, ''), email
from records
order by id
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPg(err)
	}
	defer rows.Close()
	out := []domain.Record{}
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Status, &rec.Email); err != nil {
			return nil, perr.FromPg(err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPg(err)
	}
	return out, nil
}

func (r *queries) Get(ctx context.Context, id int64) (domain.Record, error) {
	const sql = `
select id, name, description, coalesce(status, ''), email
from records
where id = $1
`
	var rec domain.Record
	err := r.q.QueryRow(ctx, sql, id).Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Status, &rec.Email)
	if err != nil {
		if perr.IsNoRows(err) {
			return domain.Record{}, perr.NotFoundf("record %d not found", id)
		}
		return domain.Record{}, perr.FromPg(err)
	}
	return rec, nil
}

func (r *queries) AllIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.q.Query(ctx, `select id from records order by id`)
	if err != nil {
		return nil, perr.FromPg(err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, perr.FromPg(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPg(err)
	}
	return ids, nil
}

func (r *queries) Save(ctx context.Context, rec domain.Record) (domain.Record, error) {
	if rec.ID == 0 {
		const sql = `
insert into records (name, description, status, email)
values ($1, $2, $3, $4)
returning id
`
		err := r.q.QueryRow(ctx, sql, rec.Name, rec.Description, rec.Status, rec.Email).Scan(&rec.ID)
		if err != nil {
			return domain.Record{}, perr.FromPg(err)
		}
		return rec, nil
	}

	const sql = `
update records
set name = $2, description = $3, status = $4, email = $5
where id = $1
`
	ct, err := r.q.Exec(ctx, sql, rec.ID, rec.Name, rec.Description, rec.Status, rec.Email)
	if err != nil {
		return domain.Record{}, perr.FromPg(err)
	}
	if ct.RowsAffected() == 0 {
		return domain.Record{}, perr.NotFoundf("record %d not found", rec.ID)
	}
	return rec, nil
}

func (r *queries) Delete(ctx context.Context, id int64) error {
	ct, err := r.q.Exec(ctx, `delete from records where id = $1`, id)
	if err != nil {
		return perr.FromPg(err)
	}
	if ct.RowsAffected() == 0 {
		return perr.NotFoundf("record %d not found", id)
	}
	return nil
}
