package dto

import (
	"github.com/shopspring/decimal"

	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

type PlatoRequest struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre" validate:"required"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio" validate:"required"`
	Activo      *bool           `json:"activo"`
	Categorias  []DocumentRef   `json:"categorias" validate:"omitempty,dive"`
}

func (r PlatoRequest) ToModel() *model.Plato {
	return &model.Plato{
		ID:          r.ID,
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		Precio:      r.Precio,
		Activo:      r.Activo,
	}
}

type PlatoPatchRequest struct {
	ID          string           `json:"id"`
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Activo      *bool            `json:"activo"`
	Categorias  []DocumentRef    `json:"categorias" validate:"omitempty,dive"`
}

func (r PlatoPatchRequest) ApplyTo(m *model.Plato) {
	if r.Nombre != nil {
		m.Nombre = *r.Nombre
	}
	if r.Descripcion != nil {
		m.Descripcion = r.Descripcion
	}
	if r.Precio != nil {
		m.Precio = *r.Precio
	}
	if r.Activo != nil {
		m.Activo = r.Activo
	}
}

type PlatoResponse struct {
	ID          string              `json:"id"`
	Nombre      string              `json:"nombre"`
	Descripcion *string             `json:"descripcion,omitempty"`
	Precio      decimal.Decimal     `json:"precio"`
	Activo      *bool               `json:"activo,omitempty"`
	Categorias  []CategoriaResponse `json:"categorias,omitempty"`
	Insumos     []InsumoResponse    `json:"insumos,omitempty"`
}

func NewPlatoResponse(m *model.Plato) PlatoResponse {
	resp := PlatoResponse{
		ID:          m.ID,
		Nombre:      m.Nombre,
		Descripcion: m.Descripcion,
		Precio:      m.Precio,
		Activo:      m.Activo,
	}
	for _, c := range m.Categorias {
		resp.Categorias = append(resp.Categorias, NewCategoriaResponse(c))
	}
	for _, i := range m.Insumos {
		resp.Insumos = append(resp.Insumos, InsumoResponse{
			ID:          i.ID,
			Nombre:      i.Nombre,
			StockMinimo: i.StockMinimo,
			StockActual: i.StockActual,
		})
	}
	return resp
}
