package module

import (
	prevsvc "estoque/internal/services/api/previsao/service"
)

// Ports exposes the forecasting service to other modules
type Ports struct {
	Forecast prevsvc.Service
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
