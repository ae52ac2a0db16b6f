package dto

import "github.com/HenrySago1/Restaurantesw2/internal/model"

type MesaRequest struct {
	ID        int64            `json:"id"`
	Numero    *int             `json:"numero" validate:"required"`
	Capacidad *int             `json:"capacidad" validate:"required,min=1"`
	Estado    model.EstadoMesa `json:"estado" validate:"required,oneof=LIBRE OCUPADA RESERVADA"`
}

func (r MesaRequest) ToModel() *model.Mesa {
	m := &model.Mesa{ID: r.ID, Estado: r.Estado}
	if r.Numero != nil {
		m.Numero = *r.Numero
	}
	if r.Capacidad != nil {
		m.Capacidad = *r.Capacidad
	}
	return m
}

type MesaPatchRequest struct {
	ID        int64             `json:"id"`
	Numero    *int              `json:"numero"`
	Capacidad *int              `json:"capacidad" validate:"omitempty,min=1"`
	Estado    *model.EstadoMesa `json:"estado" validate:"omitempty,oneof=LIBRE OCUPADA RESERVADA"`
}

func (r MesaPatchRequest) ApplyTo(m *model.Mesa) {
	if r.Numero != nil {
		m.Numero = *r.Numero
	}
	if r.Capacidad != nil {
		m.Capacidad = *r.Capacidad
	}
	if r.Estado != nil {
		m.Estado = *r.Estado
	}
}

type MesaResponse struct {
	ID        int64            `json:"id"`
	Numero    int              `json:"numero"`
	Capacidad int              `json:"capacidad"`
	Estado    model.EstadoMesa `json:"estado"`
}

func NewMesaResponse(m *model.Mesa) MesaResponse {
	return MesaResponse{ID: m.ID, Numero: m.Numero, Capacidad: m.Capacidad, Estado: m.Estado}
}
