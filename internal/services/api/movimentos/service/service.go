// Package service contains movimento workflows
package service

import (
	"context"
	"time"

	"estoque/internal/modkit/repokit"
	"estoque/internal/services/api/movimentos/domain"
	"estoque/internal/services/api/movimentos/repo"

	perr "estoque/internal/platform/errors"

	"github.com/google/uuid"
)

// Service defines the movimento service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the movimento service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a movimento service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("movimentos.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("movimentos.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

const dateLayout = "2006-01-02"

func toDTO(r repo.Row) domain.Movimento {
	return domain.Movimento{
		ID:         r.ID,
		UnidadeID:  r.UnidadeID,
		Unidade:    r.Unidade,
		Tipo:       r.Tipo,
		Item:       r.Item,
		Quantidade: r.Quantidade,
		Data:       r.Data.UTC().Format(dateLayout),
		CriadoEm:   r.CriadoEm.UTC().Format(time.RFC3339),
	}
}

// Record inserts one immutable movement row.
// The active check and the insert run inside one transaction so a
// concurrent deactivate cannot slip a movement onto a dead unit
func (s *Svc) Record(ctx context.Context, in domain.RecordInput) (domain.Movimento, error) {
	data, err := time.ParseInLocation(dateLayout, in.Data, time.UTC)
	if err != nil {
		return domain.Movimento{}, perr.InvalidArgf("invalid movement date %q", in.Data)
	}
	var row repo.Row
	err = repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		active, err := r.UnitActive(ctx, in.UnidadeID)
		if err != nil {
			return err
		}
		if !active {
			return perr.Newf(perr.ErrorCodeValidation, "unit %s is deactivated", in.UnidadeID)
		}
		row, err = r.Insert(ctx, uuid.NewString(), in.UnidadeID, in.Tipo, in.Item, in.Quantidade, data)
		return err
	})
	if err != nil {
		return domain.Movimento{}, err
	}
	return toDTO(row), nil
}

// List returns movements matching the filter, oldest first
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Movimento, error) {
	f := repo.Filter{
		UnidadeID: in.UnidadeID,
		Tipo:      in.Tipo,
		Item:      in.Item,
		Limit:     in.Limit,
	}
	if in.Start != "" {
		t, err := time.ParseInLocation(dateLayout, in.Start, time.UTC)
		if err != nil {
			return nil, perr.InvalidArgf("invalid start date %q", in.Start)
		}
		f.Start = t
	}
	if in.End != "" {
		t, err := time.ParseInLocation(dateLayout, in.End, time.UTC)
		if err != nil {
			return nil, perr.InvalidArgf("invalid end date %q", in.End)
		}
		f.End = t
	}
	rows, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Movimento, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDTO(r))
	}
	return out, nil
}
