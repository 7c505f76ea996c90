package module

import (
	unidsvc "estoque/internal/services/api/unidades/service"
)

// Ports exposes the unidade service to other modules
type Ports struct {
	Units unidsvc.Service
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
