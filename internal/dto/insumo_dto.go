package dto

import "github.com/HenrySago1/Restaurantesw2/internal/model"

type InsumoRequest struct {
	ID          string       `json:"id"`
	Nombre      string       `json:"nombre" validate:"required"`
	StockMinimo *int         `json:"stockMinimo" validate:"omitempty,min=0"`
	StockActual *int         `json:"stockActual" validate:"omitempty,min=0"`
	Plato       *DocumentRef `json:"plato"`
}

func (r InsumoRequest) ToModel() *model.Insumo {
	return &model.Insumo{
		ID:          r.ID,
		Nombre:      r.Nombre,
		StockMinimo: r.StockMinimo,
		StockActual: r.StockActual,
	}
}

type InsumoPatchRequest struct {
	ID          string       `json:"id"`
	Nombre      *string      `json:"nombre"`
	StockMinimo *int         `json:"stockMinimo" validate:"omitempty,min=0"`
	StockActual *int         `json:"stockActual" validate:"omitempty,min=0"`
	Plato       *DocumentRef `json:"plato"`
}

func (r InsumoPatchRequest) ApplyTo(m *model.Insumo) {
	if r.Nombre != nil {
		m.Nombre = *r.Nombre
	}
	if r.StockMinimo != nil {
		m.StockMinimo = r.StockMinimo
	}
	if r.StockActual != nil {
		m.StockActual = r.StockActual
	}
}

type InsumoResponse struct {
	ID          string       `json:"id"`
	Nombre      string       `json:"nombre"`
	StockMinimo *int         `json:"stockMinimo,omitempty"`
	StockActual *int         `json:"stockActual,omitempty"`
	Plato       *DocumentRef `json:"plato,omitempty"`
}

func NewInsumoResponse(m *model.Insumo) InsumoResponse {
	resp := InsumoResponse{
		ID:          m.ID,
		Nombre:      m.Nombre,
		StockMinimo: m.StockMinimo,
		StockActual: m.StockActual,
	}
	if m.Plato != nil {
		resp.Plato = &DocumentRef{ID: m.Plato.ID}
	}
	return resp
}
