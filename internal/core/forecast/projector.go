package forecast

import (
	"math"

	perr "estoque/internal/platform/errors"
)

// Project turns an estimated rate into a recommended order quantity over a
// horizon of days with a percentage safety margin on top.
// days and marginPct come from user input and are validated here; the
// recommended total is ceiling-rounded so a fractional need never rounds
// into a stockout
func Project(rate Rate, days int, marginPct float64) (Projection, error) {
	if days <= 0 {
		return Projection{}, perr.InvalidArgf("projection days must be a positive integer, got %d", days)
	}
	if marginPct < 0 || marginPct > 100 {
		return Projection{}, perr.InvalidArgf("safety margin must be between 0 and 100, got %g", marginPct)
	}

	base := rate.PerDay * float64(days)
	margin := base * marginPct / 100

	return Projection{
		PerDay:         rate.PerDay,
		IntervalDays:   rate.IntervalDays,
		LowConfidence:  rate.LowConfidence,
		ProjectionDays: days,
		MarginPercent:  marginPct,
		Base:           base,
		Margin:         margin,
		Recommended:    int(math.Ceil(base + margin)),
	}, nil
}
