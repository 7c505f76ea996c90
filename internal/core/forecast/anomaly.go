package forecast

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// unitDailyAverage is the per-unit baseline used by anomaly detection: the
// unit's full delivery history divided by its full history span.
//
// Unlike Estimate this does NOT subtract the last delivery. The source
// system computed the two numbers differently and the asymmetry is kept on
// purpose; do not unify them without revisiting every anomaly threshold
func unitDailyAverage(ds []Event) (float64, bool) {
	if len(ds) == 0 {
		return 0, false
	}
	sortByDate(ds)
	total := 0
	for _, e := range ds {
		total += e.Quantity
	}
	days := intervalDays(ds[0].Date, ds[len(ds)-1].Date)
	return float64(total) / float64(days), true
}

// deltaPercent guards the division: with no baseline the percentage is 100
// when anything was delivered at all, and 0 otherwise
func deltaPercent(actual int, expected float64) float64 {
	if expected > 0 {
		return (float64(actual) - expected) / expected * 100
	}
	if actual > 0 {
		return 100
	}
	return 0
}

// DetectAnomalies compares each unit's deliveries inside [start, end]
// against what its own historical daily average predicts for a period of
// that length. Baselines come from the unit's full history, not just the
// period. Units with no baseline (expected == 0) are never flagged.
//
// The period length is measured between the unit's first and last delivery
// actually falling inside the window; a unit with history but nothing in
// the window is measured against the requested window span instead.
//
// high is sorted by delta descending, low by delta ascending (worst first)
func DetectAnomalies(units []Unit, evs []Event, start, end time.Time, pol Policy) (high, low []Anomaly) {
	byUnit := make(map[string][]Event)
	for _, e := range evs {
		if e.Kind == KindDelivery {
			byUnit[e.UnitID] = append(byUnit[e.UnitID], e)
		}
	}

	for _, u := range units {
		ds := byUnit[u.ID]
		avg, ok := unitDailyAverage(ds)
		if !ok {
			continue
		}

		actual := 0
		var first, last time.Time
		for _, e := range ds {
			if e.Date.Before(start) || e.Date.After(end) {
				continue
			}
			actual += e.Quantity
			if first.IsZero() || e.Date.Before(first) {
				first = e.Date
			}
			if last.IsZero() || e.Date.After(last) {
				last = e.Date
			}
		}
		periodDays := intervalDays(start, end)
		if !first.IsZero() {
			periodDays = intervalDays(first, last)
		}

		expected := avg * float64(periodDays)
		delta := float64(actual) - expected
		pct := deltaPercent(actual, expected)

		// no baseline, no verdict
		if expected <= 0 {
			continue
		}
		a := Anomaly{
			UnitID:       u.ID,
			UnitName:     u.Name,
			Actual:       actual,
			Expected:     expected,
			Delta:        delta,
			DeltaPercent: pct,
		}
		switch {
		case delta >= 0 && pct >= pol.ThresholdPercent:
			high = append(high, a)
		case delta < 0 && math.Abs(pct) >= pol.ThresholdPercent:
			low = append(low, a)
		}
	}

	sort.SliceStable(high, func(i, j int) bool { return high[i].Delta > high[j].Delta })
	sort.SliceStable(low, func(i, j int) bool { return low[i].Delta < low[j].Delta })
	return high, low
}

// DetectMonthly is the coarser annual pass: one comparison per unit per
// calendar month of year, each month scored with its true day count, all
// unit-month pairs ranked by |delta| descending. It is a separate
// aggregation from DetectAnomalies, not a refinement of it
func DetectMonthly(units []Unit, evs []Event, year int, top int) []MonthAnomaly {
	byUnit := make(map[string][]Event)
	for _, e := range evs {
		if e.Kind == KindDelivery {
			byUnit[e.UnitID] = append(byUnit[e.UnitID], e)
		}
	}

	var out []MonthAnomaly
	for _, u := range units {
		ds := byUnit[u.ID]
		avg, ok := unitDailyAverage(ds)
		if !ok || avg <= 0 {
			continue
		}
		for m := time.January; m <= time.December; m++ {
			monthStart := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
			monthEnd := monthStart.AddDate(0, 1, 0)
			daysInMonth := monthEnd.Sub(monthStart).Hours() / 24

			actual := 0
			for _, e := range ds {
				if !e.Date.Before(monthStart) && e.Date.Before(monthEnd) {
					actual += e.Quantity
				}
			}
			expected := avg * daysInMonth
			out = append(out, MonthAnomaly{
				UnitID:       u.ID,
				UnitName:     u.Name,
				Month:        fmt.Sprintf("%04d-%02d", year, int(m)),
				Actual:       actual,
				Expected:     expected,
				Delta:        float64(actual) - expected,
				DeltaPercent: deltaPercent(actual, expected),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Delta) > math.Abs(out[j].Delta)
	})
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}
