package dto

import "github.com/HenrySago1/Restaurantesw2/internal/model"

type CategoriaRequest struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre" validate:"required"`
}

func (r CategoriaRequest) ToModel() *model.Categoria {
	return &model.Categoria{ID: r.ID, Nombre: r.Nombre}
}

type CategoriaPatchRequest struct {
	ID     string  `json:"id"`
	Nombre *string `json:"nombre"`
}

func (r CategoriaPatchRequest) ApplyTo(m *model.Categoria) {
	if r.Nombre != nil {
		m.Nombre = *r.Nombre
	}
}

type CategoriaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

func NewCategoriaResponse(m *model.Categoria) CategoriaResponse {
	return CategoriaResponse{ID: m.ID, Nombre: m.Nombre}
}
