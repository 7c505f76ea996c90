// Package repo provides read-only postgres access for the forecasting engine.
// It is the persistence side of the engine's boundary: units and movement
// events come out as the engine's own types, never as storage rows
package repo

import (
	"context"

	"estoque/internal/core/forecast"
	"estoque/internal/modkit/repokit"

	perr "estoque/internal/platform/errors"
)

// Repo feeds the engine
type Repo interface {
	// Units returns every active unit
	Units(ctx context.Context) ([]forecast.Unit, error)
	// Events returns the full movement history for one item kind,
	// oldest first
	Events(ctx context.Context, item string) ([]forecast.Event, error)
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

func (r *queries) Units(ctx context.Context) ([]forecast.Unit, error) {
	const sql = `
select id, nome, tipo
from unidades
where ativo
order by nome asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "load unidades for analysis")
	}
	defer rows.Close()
	var out []forecast.Unit
	for rows.Next() {
		var u forecast.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.Tipo); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *queries) Events(ctx context.Context, item string) ([]forecast.Event, error) {
	const sql = `
select unidade_id, tipo, quantidade, data
from movimentos
where item = $1
order by data asc, criado_em asc
`
	rows, err := r.q.Query(ctx, sql, item)
	if err != nil {
		return nil, perr.FromPostgres(err, "load movimentos for analysis")
	}
	defer rows.Close()
	var out []forecast.Event
	for rows.Next() {
		var e forecast.Event
		var kind string
		if err := rows.Scan(&e.UnitID, &kind, &e.Quantity, &e.Date); err != nil {
			return nil, err
		}
		e.Kind = forecast.Kind(kind)
		out = append(out, e)
	}
	return out, rows.Err()
}
