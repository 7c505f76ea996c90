// Package domain holds DTOs for unidade http and service contracts
package domain

// CreateInput registers a new unit
type CreateInput struct {
	Nome string `json:"nome" validate:"required,min=2,max=120" example:"Casa Esperança"`
	Tipo string `json:"tipo,omitempty" validate:"omitempty,max=60" example:"ABRIGO"`
}

// UpdateInput renames or retypes an existing unit; empty fields are kept
type UpdateInput struct {
	ID   string `json:"id" validate:"required,uuid4" example:"0d1f8e5a-0000-4000-8000-000000000000"`
	Nome string `json:"nome,omitempty" validate:"omitempty,min=2,max=120" example:"Casa Esperança II"`
	Tipo string `json:"tipo,omitempty" validate:"omitempty,max=60" example:"SEDE"`
}

// DeactivateInput soft-deletes a unit
type DeactivateInput struct {
	ID string `json:"id" validate:"required,uuid4" example:"0d1f8e5a-0000-4000-8000-000000000000"`
}

// ListInput filters the unit listing
type ListInput struct {
	Tipo        string `json:"tipo,omitempty" validate:"omitempty,max=60" example:"ABRIGO"`
	IncludeOff  bool   `json:"incluir_inativas,omitempty" example:"false"`
	NamePattern string `json:"nome,omitempty" validate:"omitempty,min=1,max=120" example:"Casa"`
}

// Unidade is a unit as returned by the API; TipoNormalizado is the canonical
// bucket the raw stored type maps into
type Unidade struct {
	ID              string `json:"id"`
	Nome            string `json:"nome"`
	Tipo            string `json:"tipo"`
	TipoNormalizado string `json:"tipo_normalizado"`
	Ativo           bool   `json:"ativo"`
	CriadoEm        string `json:"criado_em"`
}
