// Package repo provides postgres access for movimentos
package repo

import (
	"context"
	"errors"
	"time"

	"estoque/internal/modkit/repokit"

	perr "estoque/internal/platform/errors"
	ptime "estoque/internal/platform/time"

	"github.com/jackc/pgx/v5"
)

// Row is a movement as stored, joined to its unit name for display
type Row struct {
	ID         string
	UnidadeID  string
	Unidade    string
	Tipo       string
	Item       string
	Quantidade int
	Data       time.Time
	CriadoEm   time.Time
}

// Filter narrows List; zero values mean no constraint
type Filter struct {
	UnidadeID string
	Tipo      string
	Item      string
	Start     time.Time
	End       time.Time
	Limit     int
}

// Repo is the minimal persistence surface for movimentos.
// There is no update or delete: movement rows are immutable once inserted
type Repo interface {
	UnitActive(ctx context.Context, unidadeID string) (bool, error)
	Insert(ctx context.Context, id, unidadeID, tipo, item string, quantidade int, data time.Time) (Row, error)
	List(ctx context.Context, f Filter) ([]Row, error)
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

func (r *queries) UnitActive(ctx context.Context, unidadeID string) (bool, error) {
	const sql = `select ativo from unidades where id = $1`
	var ativo bool
	if err := r.q.QueryRow(ctx, sql, unidadeID).Scan(&ativo); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, perr.NotFoundf("unknown unit %s", unidadeID)
		}
		return false, perr.FromPostgres(err, "check unidade")
	}
	return ativo, nil
}

func (r *queries) Insert(
	ctx context.Context,
	id, unidadeID, tipo, item string,
	quantidade int,
	data time.Time,
) (Row, error) {
	const sql = `
insert into movimentos (id, unidade_id, tipo, item, quantidade, data, criado_em)
values ($1, $2, $3, $4, $5, $6, now())
returning id, criado_em
`
	out := Row{
		UnidadeID:  unidadeID,
		Tipo:       tipo,
		Item:       item,
		Quantidade: quantidade,
		Data:       data,
	}
	err := r.q.QueryRow(ctx, sql, id, unidadeID, tipo, item, quantidade, data).
		Scan(&out.ID, &out.CriadoEm)
	if err != nil {
		// a foreign key violation here means the unit id is unknown
		return Row{}, perr.FromPostgresWithField(err, "insert movimento")
	}
	return out, nil
}

func (r *queries) List(ctx context.Context, f Filter) ([]Row, error) {
	const sql = `
select m.id, m.unidade_id, u.nome, m.tipo, m.item, m.quantidade, m.data, m.criado_em
from movimentos m
join unidades u on u.id = m.unidade_id
where ($1 = '' or m.unidade_id::text = $1)
and ($2 = '' or m.tipo = $2)
and ($3 = '' or m.item = $3)
and ($4::date is null or m.data >= $4)
and ($5::date is null or m.data <= $5)
order by m.data asc, m.criado_em asc
limit $6
`
	limit := f.Limit
	if limit <= 0 {
		limit = 1000
	}
	rows, err := r.q.Query(ctx, sql, f.UnidadeID, f.Tipo, f.Item, ptime.Ptr(f.Start), ptime.Ptr(f.End), limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list movimentos")
	}
	defer rows.Close()
	var out []Row
	for rows.Next() {
		var rr Row
		if err := rows.Scan(
			&rr.ID, &rr.UnidadeID, &rr.Unidade, &rr.Tipo, &rr.Item,
			&rr.Quantidade, &rr.Data, &rr.CriadoEm,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
