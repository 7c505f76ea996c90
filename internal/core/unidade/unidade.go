// Package unidade holds unit reference semantics shared by the engine and
// the API layer: the closed unit-type set and pt-BR aware name sorting
package unidade

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Canonical unit types after normalization
const (
	TipoSede   = "SEDE"
	TipoAbrigo = "ABRIGO"
	TipoOutros = "OUTROS"
)

// NormalizeTipo maps a raw free-text unit type onto the canonical set.
// The legacy alias SEMCAS is the old name of the SEDE unit and both shelter
// spellings collapse into ABRIGO. Apply this everywhere types are grouped,
// filtered or displayed so one category never splits into two buckets
func NormalizeTipo(raw string) string {
	t := strings.ToUpper(strings.TrimSpace(raw))
	switch t {
	case "":
		return TipoOutros
	case "SEMCAS":
		return TipoSede
	case "ABRIGO", "ACOLHER E AMAR":
		return TipoAbrigo
	}
	return t
}

// collator is stateful and not safe for concurrent use, so SortNames builds
// a fresh one per call; name lists here are tiny
func newCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
}

// SortNames sorts unit names in place using pt-BR collation so accented
// names land where a human expects them, and returns the slice
func SortNames(names []string) []string {
	c := newCollator()
	sort.SliceStable(names, func(i, j int) bool {
		return c.CompareString(names[i], names[j]) < 0
	})
	return names
}
