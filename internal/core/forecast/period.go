package forecast

import (
	"fmt"
	"sort"
	"time"

	"estoque/internal/core/unidade"

	perr "estoque/internal/platform/errors"
)

// Granularity selects the period key for the series aggregator
type Granularity string

// Supported granularities
const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
	Annual  Granularity = "annual"
)

// GroupBy selects the secondary aggregation dimension
type GroupBy string

// Supported groupings
const (
	ByUnit GroupBy = "unit"
	ByTipo GroupBy = "tipo"
)

// SeriesRow is one cell of the chart table: period x group -> quantity
type SeriesRow struct {
	Period   string `json:"periodo"`
	Group    string `json:"grupo"`
	Quantity int    `json:"quantidade"`
}

// PeriodKey formats t's bucket under g. Weekly keys use the ISO-8601 week
// (the Thursday-anchored year), so 2024-01-01 lands in 2024-W01
func PeriodKey(t time.Time, g Granularity) (string, error) {
	switch g {
	case Daily:
		return t.Format("2006-01-02"), nil
	case Monthly:
		return t.Format("2006-01"), nil
	case Annual:
		return t.Format("2006"), nil
	case Weekly:
		y, w := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", y, w), nil
	}
	return "", perr.InvalidArgf("unknown granularity %q", g)
}

// Aggregate buckets delivery events by period key then by unit name or
// normalized unit type, summing quantities. Orphan events (unknown unit id)
// are dropped. Rows come back sorted by period then group so the table is
// stable across calls
func Aggregate(units []Unit, evs []Event, g Granularity, by GroupBy) ([]SeriesRow, error) {
	if by != ByUnit && by != ByTipo {
		return nil, perr.InvalidArgf("unknown grouping %q", by)
	}
	byID := make(map[string]Unit, len(units))
	for _, u := range units {
		byID[u.ID] = u
	}

	sums := make(map[[2]string]int)
	for _, e := range evs {
		if e.Kind != KindDelivery {
			continue
		}
		u, ok := byID[e.UnitID]
		if !ok {
			continue
		}
		key, err := PeriodKey(e.Date, g)
		if err != nil {
			return nil, err
		}
		group := u.Name
		if by == ByTipo {
			group = unidade.NormalizeTipo(u.Tipo)
		}
		sums[[2]string{key, group}] += e.Quantity
	}

	out := make([]SeriesRow, 0, len(sums))
	for k, q := range sums {
		out = append(out, SeriesRow{Period: k[0], Group: k[1], Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Period != out[j].Period {
			return out[i].Period < out[j].Period
		}
		return out[i].Group < out[j].Group
	})
	return out, nil
}
