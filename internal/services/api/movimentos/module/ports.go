package module

import (
	movsvc "estoque/internal/services/api/movimentos/service"
)

// Ports exposes the movimento service to other modules
type Ports struct {
	Movements movsvc.Service
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
