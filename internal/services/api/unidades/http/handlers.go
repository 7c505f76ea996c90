// Package http provides http transport for unidades
package http

import (
	stdhttp "net/http"

	"estoque/internal/modkit/httpkit"
	"estoque/internal/services/api/unidades/domain"
	svc "estoque/internal/services/api/unidades/service"
)

// Register mounts unidade endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/criar", h.create)
	httpkit.PostJSON[domain.UpdateInput](r, "/atualizar", h.update)
	httpkit.PostJSON[domain.DeactivateInput](r, "/desativar", h.deactivate)
	httpkit.PostJSON[domain.ListInput](r, "/listar", h.list)
}

type handlers struct{ svc svc.Service }

func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}

func (h *handlers) deactivate(r *stdhttp.Request, in domain.DeactivateInput) (any, error) {
	if err := h.svc.Deactivate(r.Context(), in); err != nil {
		return nil, err
	}
	return map[string]any{"ok": true}, nil
}

func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}
