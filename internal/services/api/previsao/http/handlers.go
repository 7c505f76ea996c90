// Package http provides http transport for previsao
package http

import (
	stdhttp "net/http"

	"estoque/internal/modkit/httpkit"
	"estoque/internal/services/api/previsao/domain"
	svc "estoque/internal/services/api/previsao/service"
)

// Register mounts forecasting endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ConsumoInput](r, "/consumo", h.consumo)
	httpkit.PostJSON[domain.AnomaliasInput](r, "/anomalias", h.anomalias)
	httpkit.PostJSON[domain.AnualInput](r, "/anual", h.anual)
	httpkit.PostJSON[domain.SeriesInput](r, "/series", h.series)
}

type handlers struct{ svc svc.Service }

func (h *handlers) consumo(r *stdhttp.Request, in domain.ConsumoInput) (any, error) {
	return h.svc.Consumo(r.Context(), in)
}

func (h *handlers) anomalias(r *stdhttp.Request, in domain.AnomaliasInput) (any, error) {
	return h.svc.Anomalias(r.Context(), in)
}

func (h *handlers) anual(r *stdhttp.Request, in domain.AnualInput) (any, error) {
	return h.svc.Anual(r.Context(), in)
}

func (h *handlers) series(r *stdhttp.Request, in domain.SeriesInput) (any, error) {
	return h.svc.Series(r.Context(), in)
}
