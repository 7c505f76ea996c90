package forecast

import (
	"math"
	"sort"
	"time"

	perr "estoque/internal/platform/errors"
)

// deliveriesOnly copies the delivery events out of evs; returns never feed
// consumption math
func deliveriesOnly(evs []Event) []Event {
	out := make([]Event, 0, len(evs))
	for _, e := range evs {
		if e.Kind == KindDelivery {
			out = append(out, e)
		}
	}
	return out
}

// sortByDate sorts a copy the estimator owns, never the caller's slice
func sortByDate(evs []Event) {
	sort.SliceStable(evs, func(i, j int) bool { return evs[i].Date.Before(evs[j].Date) })
}

// intervalDays is the day span between two dates, ceiling-rounded with a
// floor of 1 so same-day pairs still define a one-day interval
func intervalDays(first, last time.Time) int {
	d := int(math.Ceil(last.Sub(first).Hours() / 24))
	if d < 1 {
		return 1
	}
	return d
}

// Estimate computes the trailing daily consumption rate for a scope from its
// delivery history.
//
// The most recent delivery is stock on hand, not consumed history, so its
// quantity is excluded from the numerator while its date still anchors the
// interval. When that leaves nothing (two same-batch records, or only two
// events total) the first delivery's quantity is used as a conservative
// one-day floor rather than reporting zero
func Estimate(evs []Event, pol Policy) (Rate, error) {
	ds := deliveriesOnly(evs)
	if len(ds) < 2 {
		// a single delivery defines no interval; report nothing rather
		// than a misleadingly precise number
		return Rate{}, perr.InsufficientDataf("need at least 2 deliveries, have %d", len(ds))
	}
	sortByDate(ds)

	total := 0
	for _, e := range ds {
		total += e.Quantity
	}
	last := ds[len(ds)-1]
	days := intervalDays(ds[0].Date, last.Date)

	perDay := float64(ds[0].Quantity)
	if forRate := total - last.Quantity; forRate > 0 {
		perDay = float64(forRate) / float64(days)
	}

	return Rate{
		PerDay:        perDay,
		IntervalDays:  days,
		LowConfidence: days < pol.LowConfidenceDays,
	}, nil
}
