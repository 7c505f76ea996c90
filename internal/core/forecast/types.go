// Package forecast implements the consumption forecasting and anomaly
// analysis engine. Everything in here is pure: callers hand in snapshots of
// units and movement events, the engine filters, aggregates and returns,
// and calling twice with the same input yields the same output
package forecast

import "time"

// Kind tags a movement event
type Kind string

const (
	// KindDelivery is stock handed to a unit; the consumption signal
	KindDelivery Kind = "delivery"
	// KindReturn is empty containers coming back; never counts as consumption
	KindReturn Kind = "return"
)

// Event is a single immutable movement record. The engine only ever reads,
// sorts copies of, and sums these
type Event struct {
	UnitID   string
	Kind     Kind
	Quantity int
	Date     time.Time
}

// Unit is a reference-table row. Tipo is the raw stored type; normalization
// happens inside the engine so raw legacy values are safe to pass through
type Unit struct {
	ID   string
	Name string
	Tipo string
}

// ScopeMode selects which units feed an analysis
type ScopeMode string

const (
	// ScopeUnit analyzes a single unit by id
	ScopeUnit ScopeMode = "unit"
	// ScopeTipo analyzes all units of one normalized type
	ScopeTipo ScopeMode = "tipo"
	// ScopeAll analyzes every unit minus exclusions
	ScopeAll ScopeMode = "all"
)

// Scope is the per-invocation unit filter
type Scope struct {
	Mode     ScopeMode
	Selector string          // unit id (ScopeUnit) or type label (ScopeTipo)
	Excluded map[string]bool // unit ids dropped in ScopeTipo and ScopeAll modes
}

// Policy carries the tunable constants of the engine. The observed values
// have no stated derivation; treat them as policy, not as truth
type Policy struct {
	// LowConfidenceDays flags rates computed from a history shorter than
	// this many days
	LowConfidenceDays int
	// ThresholdPercent is the minimum |deltaPercent| for a unit to be
	// flagged as anomalous
	ThresholdPercent float64
}

// DefaultPolicy returns the production policy constants
func DefaultPolicy() Policy {
	return Policy{LowConfidenceDays: 30, ThresholdPercent: 25}
}

// Rate is the output of the historical rate estimator
type Rate struct {
	PerDay        float64
	IntervalDays  int
	LowConfidence bool
}

// Projection is the full forecast result handed back to callers
type Projection struct {
	PerDay          float64  `json:"media_diaria"`
	IntervalDays    int      `json:"intervalo_dias"`
	LowConfidence   bool     `json:"baixa_confianca"`
	ProjectionDays  int      `json:"dias_projecao"`
	MarginPercent   float64  `json:"margem_percentual"`
	Base            float64  `json:"projecao_base"`
	Margin          float64  `json:"margem"`
	Recommended     int      `json:"total_recomendado"`
	ConsideredUnits []string `json:"unidades_consideradas"`
	ExcludedUnits   []string `json:"unidades_excluidas"`
}

// Anomaly is one unit whose period consumption strays from its own baseline
type Anomaly struct {
	UnitID       string  `json:"unidade_id"`
	UnitName     string  `json:"unidade"`
	Actual       int     `json:"real"`
	Expected     float64 `json:"esperado"`
	Delta        float64 `json:"delta"`
	DeltaPercent float64 `json:"delta_percentual"`
}

// MonthAnomaly is one unit-month pair from the coarser annual pass
type MonthAnomaly struct {
	UnitID       string  `json:"unidade_id"`
	UnitName     string  `json:"unidade"`
	Month        string  `json:"mes"` // YYYY-MM
	Actual       int     `json:"real"`
	Expected     float64 `json:"esperado"`
	Delta        float64 `json:"delta"`
	DeltaPercent float64 `json:"delta_percentual"`
}
