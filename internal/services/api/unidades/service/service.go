// Package service contains unidade workflows
package service

import (
	"context"
	"strings"
	"time"

	"estoque/internal/core/unidade"
	"estoque/internal/modkit/repokit"
	"estoque/internal/services/api/unidades/domain"
	"estoque/internal/services/api/unidades/repo"

	"github.com/google/uuid"
)

// Service defines the unidade service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the unidade service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a unidade service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("unidades.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("unidades.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

func toDTO(r repo.Row) domain.Unidade {
	return domain.Unidade{
		ID:              r.ID,
		Nome:            r.Nome,
		Tipo:            r.Tipo,
		TipoNormalizado: unidade.NormalizeTipo(r.Tipo),
		Ativo:           r.Ativo,
		CriadoEm:        r.CriadoEm.UTC().Format(time.RFC3339),
	}
}

// Create registers a new unit with a fresh id
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Unidade, error) {
	r, err := s.Repo.Insert(ctx, uuid.NewString(), strings.TrimSpace(in.Nome), strings.TrimSpace(in.Tipo))
	if err != nil {
		return domain.Unidade{}, err
	}
	return toDTO(r), nil
}

// Update renames or retypes an existing unit; blank fields keep their value
func (s *Svc) Update(ctx context.Context, in domain.UpdateInput) (domain.Unidade, error) {
	r, err := s.Repo.Update(ctx, in.ID, strings.TrimSpace(in.Nome), strings.TrimSpace(in.Tipo))
	if err != nil {
		return domain.Unidade{}, err
	}
	return toDTO(r), nil
}

// Deactivate soft-deletes a unit so its movement history stays intact
func (s *Svc) Deactivate(ctx context.Context, in domain.DeactivateInput) error {
	return s.Repo.Deactivate(ctx, in.ID)
}

// List returns units matching the filter
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Unidade, error) {
	rows, err := s.Repo.List(ctx, strings.TrimSpace(in.Tipo), strings.TrimSpace(in.NamePattern), in.IncludeOff)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Unidade, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDTO(r))
	}
	return out, nil
}
