package forecast

import (
	"estoque/internal/core/unidade"

	perr "estoque/internal/platform/errors"
)

// ScopeResult is the filtered event subset, the considered units, and the
// audit name lists callers display alongside any number the engine produces
type ScopeResult struct {
	Events          []Event
	Units           []Unit
	ConsideredUnits []string
	ExcludedUnits   []string
}

// ResolveScope maps a Scope over the full unit and event collections.
// Events whose unit id resolves to no known unit are orphans and are
// dropped in every mode. Both name lists come back collation-sorted so
// output is deterministic and diffable
func ResolveScope(units []Unit, evs []Event, s Scope) (ScopeResult, error) {
	byID := make(map[string]Unit, len(units))
	for _, u := range units {
		byID[u.ID] = u
	}

	considered := make(map[string]Unit)
	excludedNames := []string{}

	switch s.Mode {
	case ScopeUnit:
		u, ok := byID[s.Selector]
		if !ok {
			return ScopeResult{}, perr.NotFoundf("unidade %q not found", s.Selector)
		}
		considered[u.ID] = u

	case ScopeTipo:
		if s.Selector == "" {
			return ScopeResult{}, perr.Newf(perr.ErrorCodeValidation, "no unit type selected")
		}
		want := unidade.NormalizeTipo(s.Selector)
		for _, u := range units {
			if unidade.NormalizeTipo(u.Tipo) != want {
				continue
			}
			if s.Excluded[u.ID] {
				excludedNames = append(excludedNames, u.Name)
				continue
			}
			considered[u.ID] = u
		}

	case ScopeAll:
		for _, u := range units {
			if s.Excluded[u.ID] {
				excludedNames = append(excludedNames, u.Name)
				continue
			}
			considered[u.ID] = u
		}

	default:
		return ScopeResult{}, perr.InvalidArgf("unknown scope mode %q", s.Mode)
	}

	out := ScopeResult{
		Events:          make([]Event, 0, len(evs)),
		Units:           make([]Unit, 0, len(considered)),
		ConsideredUnits: make([]string, 0, len(considered)),
		ExcludedUnits:   excludedNames,
	}
	for _, e := range evs {
		if _, ok := considered[e.UnitID]; ok {
			out.Events = append(out.Events, e)
		}
	}
	// iterate the original slice so unit order is deterministic
	for _, u := range units {
		if _, ok := considered[u.ID]; ok {
			out.Units = append(out.Units, u)
			out.ConsideredUnits = append(out.ConsideredUnits, u.Name)
		}
	}
	unidade.SortNames(out.ConsideredUnits)
	unidade.SortNames(out.ExcludedUnits)
	return out, nil
}
