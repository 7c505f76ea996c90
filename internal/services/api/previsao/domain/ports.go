package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Consumo(ctx context.Context, in ConsumoInput) (ConsumoOutput, error)
	Anomalias(ctx context.Context, in AnomaliasInput) (AnomaliasOutput, error)
	Anual(ctx context.Context, in AnualInput) (AnualOutput, error)
	Series(ctx context.Context, in SeriesInput) (SeriesOutput, error)
}
