package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Record(ctx context.Context, in RecordInput) (Movimento, error)
	List(ctx context.Context, in ListInput) ([]Movimento, error)
}
