// Package domain holds DTOs for previsao http and service contracts
package domain

import "estoque/internal/core/forecast"

// EscopoInput selects which units feed an analysis
type EscopoInput struct {
	// modo: unidade (one unit), tipo (one normalized type), todas (all minus exclusions)
	Modo      string   `json:"modo" validate:"required,oneof=unidade tipo todas" example:"tipo"`
	UnidadeID string   `json:"unidade_id,omitempty" validate:"omitempty,uuid4"`
	Tipo      string   `json:"tipo,omitempty" validate:"omitempty,max=60" example:"ABRIGO"`
	Excluir   []string `json:"excluir,omitempty" validate:"omitempty,dive,uuid4"`
}

// ConsumoInput asks for a consumption forecast
type ConsumoInput struct {
	Item             string      `json:"item" validate:"required,oneof=agua gas cesta enxoval doacao" example:"agua"`
	Escopo           EscopoInput `json:"escopo" validate:"required"`
	DiasProjecao     int         `json:"dias_projecao" validate:"required" example:"30"`
	MargemPercentual float64     `json:"margem_percentual" validate:"omitempty,min=0,max=100" example:"20"`
}

// ConsumoOutput echoes the projection plus the audit lists
type ConsumoOutput struct {
	Item string `json:"item"`
	forecast.Projection
}

// AnomaliasInput asks for period anomaly detection
type AnomaliasInput struct {
	Item             string      `json:"item" validate:"required,oneof=agua gas cesta enxoval doacao" example:"agua"`
	Escopo           EscopoInput `json:"escopo" validate:"required"`
	Inicio           string      `json:"inicio" validate:"required,datetime=2006-01-02" example:"2026-07-01"`
	Fim              string      `json:"fim" validate:"required,datetime=2006-01-02" example:"2026-07-31"`
	LimitePercentual float64     `json:"limite_percentual,omitempty" validate:"omitempty,min=1,max=500" example:"25"`
	Top              int         `json:"top,omitempty" validate:"omitempty,min=1,max=50" example:"5"`
}

// AnomaliasOutput carries both anomaly directions, worst first
type AnomaliasOutput struct {
	Item   string             `json:"item"`
	Altas  []forecast.Anomaly `json:"altas"`
	Baixas []forecast.Anomaly `json:"baixas"`
}

// AnualInput asks for the coarser per-month annual pass
type AnualInput struct {
	Item   string      `json:"item" validate:"required,oneof=agua gas cesta enxoval doacao" example:"agua"`
	Escopo EscopoInput `json:"escopo" validate:"required"`
	Ano    int         `json:"ano" validate:"required,min=2000,max=2100" example:"2026"`
	Top    int         `json:"top,omitempty" validate:"omitempty,min=1,max=60" example:"5"`
}

// AnualOutput is the ranked unit-month list
type AnualOutput struct {
	Item    string                  `json:"item"`
	Ano     int                     `json:"ano"`
	Desvios []forecast.MonthAnomaly `json:"desvios"`
}

// SeriesInput asks for the aggregated delivery table behind charts
type SeriesInput struct {
	Item          string      `json:"item" validate:"required,oneof=agua gas cesta enxoval doacao" example:"agua"`
	Escopo        EscopoInput `json:"escopo" validate:"required"`
	Granularidade string      `json:"granularidade" validate:"required,oneof=daily weekly monthly annual" example:"monthly"`
	Agrupar       string      `json:"agrupar" validate:"required,oneof=unidade tipo" example:"tipo"`
	Inicio        string      `json:"inicio,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Fim           string      `json:"fim,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// SeriesOutput is the chart table
type SeriesOutput struct {
	Item string               `json:"item"`
	Rows []forecast.SeriesRow `json:"linhas"`
}
