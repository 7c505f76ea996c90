// Package domain holds DTOs for movimento http and service contracts
package domain

// Movement kinds and item kinds accepted at the boundary. Item names match
// what the warehouse actually hands out
const (
	KindDelivery = "delivery"
	KindReturn   = "return"
)

// RecordInput registers one movement. Movements are immutable once
// recorded; there is no update or delete input on purpose
type RecordInput struct {
	UnidadeID  string `json:"unidade_id" validate:"required,uuid4" example:"0d1f8e5a-0000-4000-8000-000000000000"`
	Tipo       string `json:"tipo" validate:"required,oneof=delivery return" example:"delivery"`
	Item       string `json:"item" validate:"required,oneof=agua gas cesta enxoval doacao" example:"agua"`
	Quantidade int    `json:"quantidade" validate:"required,min=0" example:"12"`
	Data       string `json:"data" validate:"required,datetime=2006-01-02" example:"2026-08-01"`
}

// ListInput filters the movement listing
type ListInput struct {
	UnidadeID string `json:"unidade_id,omitempty" validate:"omitempty,uuid4"`
	Tipo      string `json:"tipo,omitempty" validate:"omitempty,oneof=delivery return"`
	Item      string `json:"item,omitempty" validate:"omitempty,oneof=agua gas cesta enxoval doacao"`
	Start     string `json:"inicio,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-01-01"`
	End       string `json:"fim,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-08-31"`
	Limit     int    `json:"limit,omitempty" validate:"omitempty,min=1,max=1000" example:"200"`
}

// Movimento is a movement as returned by the API
type Movimento struct {
	ID         string `json:"id"`
	UnidadeID  string `json:"unidade_id"`
	Unidade    string `json:"unidade"`
	Tipo       string `json:"tipo"`
	Item       string `json:"item"`
	Quantidade int    `json:"quantidade"`
	Data       string `json:"data"`
	CriadoEm   string `json:"criado_em"`
}
