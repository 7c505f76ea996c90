// Package service orchestrates the forecasting engine over stored data.
// All math lives in core/forecast; this layer only loads snapshots, builds
// scopes and applies display limits
package service

import (
	"context"
	"time"

	"estoque/internal/core/forecast"
	"estoque/internal/modkit/repokit"
	"estoque/internal/services/api/previsao/domain"
	"estoque/internal/services/api/previsao/repo"

	perr "estoque/internal/platform/errors"
)

// Service defines the previsao service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the previsao service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	policy forecast.Policy
}

// New constructs a previsao service with the default engine policy
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("previsao.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("previsao.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		policy: forecast.DefaultPolicy(),
	}
}

const dateLayout = "2006-01-02"

// defaultTop is how many anomalies callers typically display
const defaultTop = 5

func toScope(in domain.EscopoInput) forecast.Scope {
	s := forecast.Scope{}
	switch in.Modo {
	case "unidade":
		s.Mode = forecast.ScopeUnit
		s.Selector = in.UnidadeID
	case "tipo":
		s.Mode = forecast.ScopeTipo
		s.Selector = in.Tipo
	case "todas":
		s.Mode = forecast.ScopeAll
	}
	if len(in.Excluir) > 0 {
		s.Excluded = make(map[string]bool, len(in.Excluir))
		for _, id := range in.Excluir {
			s.Excluded[id] = true
		}
	}
	return s
}

// load pulls the unit table and one item's movement history and resolves
// the scope over them
func (s *Svc) load(ctx context.Context, item string, esc domain.EscopoInput) (forecast.ScopeResult, error) {
	units, err := s.Repo.Units(ctx)
	if err != nil {
		return forecast.ScopeResult{}, err
	}
	evs, err := s.Repo.Events(ctx, item)
	if err != nil {
		return forecast.ScopeResult{}, err
	}
	return forecast.ResolveScope(units, evs, toScope(esc))
}

// Consumo computes the historical rate for the scope and projects it
func (s *Svc) Consumo(ctx context.Context, in domain.ConsumoInput) (domain.ConsumoOutput, error) {
	res, err := s.load(ctx, in.Item, in.Escopo)
	if err != nil {
		return domain.ConsumoOutput{}, err
	}
	rate, err := forecast.Estimate(res.Events, s.policy)
	if err != nil {
		return domain.ConsumoOutput{}, err
	}
	p, err := forecast.Project(rate, in.DiasProjecao, in.MargemPercentual)
	if err != nil {
		return domain.ConsumoOutput{}, err
	}
	p.ConsideredUnits = res.ConsideredUnits
	p.ExcludedUnits = res.ExcludedUnits
	return domain.ConsumoOutput{Item: in.Item, Projection: p}, nil
}

// Anomalias flags units whose period consumption strays from their own
// historical baseline
func (s *Svc) Anomalias(ctx context.Context, in domain.AnomaliasInput) (domain.AnomaliasOutput, error) {
	start, err := time.ParseInLocation(dateLayout, in.Inicio, time.UTC)
	if err != nil {
		return domain.AnomaliasOutput{}, perr.InvalidArgf("invalid start date %q", in.Inicio)
	}
	end, err := time.ParseInLocation(dateLayout, in.Fim, time.UTC)
	if err != nil {
		return domain.AnomaliasOutput{}, perr.InvalidArgf("invalid end date %q", in.Fim)
	}
	if end.Before(start) {
		return domain.AnomaliasOutput{}, perr.InvalidArgf("period end %q precedes start %q", in.Fim, in.Inicio)
	}

	res, err := s.load(ctx, in.Item, in.Escopo)
	if err != nil {
		return domain.AnomaliasOutput{}, err
	}

	pol := s.policy
	if in.LimitePercentual > 0 {
		pol.ThresholdPercent = in.LimitePercentual
	}
	high, low := forecast.DetectAnomalies(res.Units, res.Events, start, end, pol)

	top := in.Top
	if top <= 0 {
		top = defaultTop
	}
	if len(high) > top {
		high = high[:top]
	}
	if len(low) > top {
		low = low[:top]
	}
	if high == nil {
		high = []forecast.Anomaly{}
	}
	if low == nil {
		low = []forecast.Anomaly{}
	}
	return domain.AnomaliasOutput{Item: in.Item, Altas: high, Baixas: low}, nil
}

// Anual runs the coarser per-month pass across a whole year
func (s *Svc) Anual(ctx context.Context, in domain.AnualInput) (domain.AnualOutput, error) {
	res, err := s.load(ctx, in.Item, in.Escopo)
	if err != nil {
		return domain.AnualOutput{}, err
	}
	top := in.Top
	if top <= 0 {
		top = defaultTop
	}
	out := forecast.DetectMonthly(res.Units, res.Events, in.Ano, top)
	if out == nil {
		out = []forecast.MonthAnomaly{}
	}
	return domain.AnualOutput{Item: in.Item, Ano: in.Ano, Desvios: out}, nil
}

// Series aggregates deliveries into the period table charts consume
func (s *Svc) Series(ctx context.Context, in domain.SeriesInput) (domain.SeriesOutput, error) {
	res, err := s.load(ctx, in.Item, in.Escopo)
	if err != nil {
		return domain.SeriesOutput{}, err
	}

	evs := res.Events
	if in.Inicio != "" || in.Fim != "" {
		var start, end time.Time
		if in.Inicio != "" {
			if start, err = time.ParseInLocation(dateLayout, in.Inicio, time.UTC); err != nil {
				return domain.SeriesOutput{}, perr.InvalidArgf("invalid start date %q", in.Inicio)
			}
		}
		if in.Fim != "" {
			if end, err = time.ParseInLocation(dateLayout, in.Fim, time.UTC); err != nil {
				return domain.SeriesOutput{}, perr.InvalidArgf("invalid end date %q", in.Fim)
			}
		}
		kept := make([]forecast.Event, 0, len(evs))
		for _, e := range evs {
			if !start.IsZero() && e.Date.Before(start) {
				continue
			}
			if !end.IsZero() && e.Date.After(end) {
				continue
			}
			kept = append(kept, e)
		}
		evs = kept
	}

	by := forecast.ByUnit
	if in.Agrupar == "tipo" {
		by = forecast.ByTipo
	}
	rows, err := forecast.Aggregate(res.Units, evs, forecast.Granularity(in.Granularidade), by)
	if err != nil {
		return domain.SeriesOutput{}, err
	}
	return domain.SeriesOutput{Item: in.Item, Rows: rows}, nil
}
