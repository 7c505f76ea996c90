// Package http provides http transport for movimentos
package http

import (
	stdhttp "net/http"

	"estoque/internal/modkit/httpkit"
	"estoque/internal/services/api/movimentos/domain"
	svc "estoque/internal/services/api/movimentos/service"
)

// Register mounts movimento endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.RecordInput](r, "/registrar", h.record)
	httpkit.PostJSON[domain.ListInput](r, "/listar", h.list)
}

type handlers struct{ svc svc.Service }

func (h *handlers) record(r *stdhttp.Request, in domain.RecordInput) (any, error) {
	return h.svc.Record(r.Context(), in)
}

func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}
