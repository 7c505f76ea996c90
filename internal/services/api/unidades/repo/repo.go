// Package repo provides postgres access for unidades
package repo

import (
	"context"
	"errors"
	"time"

	"estoque/internal/modkit/repokit"

	perr "estoque/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// Row is a unit as stored
type Row struct {
	ID       string
	Nome     string
	Tipo     string
	Ativo    bool
	CriadoEm time.Time
}

// Repo is the minimal persistence surface for unidades
type Repo interface {
	Insert(ctx context.Context, id, nome, tipo string) (Row, error)
	Update(ctx context.Context, id, nome, tipo string) (Row, error)
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, tipo, namePattern string, includeInactive bool) ([]Row, error)
	Get(ctx context.Context, id string) (Row, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, id, nome, tipo string) (Row, error) {
	const sql = `
insert into unidades (id, nome, tipo, ativo, criado_em)
values ($1, $2, $3, true, now())
returning id, nome, tipo, ativo, criado_em
`
	var out Row
	err := r.q.QueryRow(ctx, sql, id, nome, tipo).
		Scan(&out.ID, &out.Nome, &out.Tipo, &out.Ativo, &out.CriadoEm)
	if err != nil {
		return Row{}, perr.FromPostgresWithField(err, "insert unidade")
	}
	return out, nil
}

func (r *queries) Update(ctx context.Context, id, nome, tipo string) (Row, error) {
	const sql = `
update unidades
set nome = coalesce(nullif($2, ''), nome),
    tipo = coalesce(nullif($3, ''), tipo)
where id = $1
returning id, nome, tipo, ativo, criado_em
`
	var out Row
	err := r.q.QueryRow(ctx, sql, id, nome, tipo).
		Scan(&out.ID, &out.Nome, &out.Tipo, &out.Ativo, &out.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Row{}, perr.NotFoundf("unidade %q not found", id)
		}
		return Row{}, perr.FromPostgresWithField(err, "update unidade")
	}
	return out, nil
}

func (r *queries) Deactivate(ctx context.Context, id string) error {
	const sql = `update unidades set ativo = false where id = $1`
	ct, err := r.q.Exec(ctx, sql, id)
	if err != nil {
		return perr.FromPostgres(err, "deactivate unidade")
	}
	if ct.RowsAffected() == 0 {
		return perr.NotFoundf("unidade %q not found", id)
	}
	return nil
}

func (r *queries) Get(ctx context.Context, id string) (Row, error) {
	const sql = `
select id, nome, tipo, ativo, criado_em
from unidades
where id = $1
`
	var out Row
	err := r.q.QueryRow(ctx, sql, id).
		Scan(&out.ID, &out.Nome, &out.Tipo, &out.Ativo, &out.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Row{}, perr.NotFoundf("unidade %q not found", id)
		}
		return Row{}, perr.FromPostgres(err, "get unidade")
	}
	return out, nil
}

func (r *queries) List(
	ctx context.Context,
	tipo, namePattern string,
	includeInactive bool,
) ([]Row, error) {
	const sql = `
select id, nome, tipo, ativo, criado_em
from unidades
where ($1 = '' or upper(tipo) = upper($1))
and ($2 = '' or nome ilike '%' || $2 || '%')
and ($3 or ativo)
order by nome asc
`
	rows, err := r.q.Query(ctx, sql, tipo, namePattern, includeInactive)
	if err != nil {
		return nil, perr.FromPostgres(err, "list unidades")
	}
	defer rows.Close()
	var out []Row
	for rows.Next() {
		var rr Row
		if err := rows.Scan(&rr.ID, &rr.Nome, &rr.Tipo, &rr.Ativo, &rr.CriadoEm); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
