package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Unidade, error)
	Update(ctx context.Context, in UpdateInput) (Unidade, error)
	Deactivate(ctx context.Context, in DeactivateInput) error
	List(ctx context.Context, in ListInput) ([]Unidade, error)
}
