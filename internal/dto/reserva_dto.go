package dto

import (
	"time"

	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

type ReservaRequest struct {
	ID            int64               `json:"id"`
	FechaHora     time.Time           `json:"fechaHora" validate:"required"`
	Personas      *int                `json:"personas" validate:"omitempty,min=1,max=30"`
	Estado        model.EstadoReserva `json:"estado" validate:"required,oneof=PENDIENTE CONFIRMADA CANCELADA"`
	Observaciones *string             `json:"observaciones"`
	Cliente       *EntityRef          `json:"cliente"`
}

func (r ReservaRequest) ToModel() *model.Reserva {
	return &model.Reserva{
		ID:            r.ID,
		FechaHora:     r.FechaHora,
		Personas:      r.Personas,
		Estado:        r.Estado,
		Observaciones: r.Observaciones,
	}
}

type ReservaPatchRequest struct {
	ID            int64                `json:"id"`
	FechaHora     *time.Time           `json:"fechaHora"`
	Personas      *int                 `json:"personas" validate:"omitempty,min=1,max=30"`
	Estado        *model.EstadoReserva `json:"estado" validate:"omitempty,oneof=PENDIENTE CONFIRMADA CANCELADA"`
	Observaciones *string              `json:"observaciones"`
	Cliente       *EntityRef           `json:"cliente"`
}

func (r ReservaPatchRequest) ApplyTo(m *model.Reserva) {
	if r.FechaHora != nil {
		m.FechaHora = *r.FechaHora
	}
	if r.Personas != nil {
		m.Personas = r.Personas
	}
	if r.Estado != nil {
		m.Estado = *r.Estado
	}
	if r.Observaciones != nil {
		m.Observaciones = r.Observaciones
	}
}

type ReservaResponse struct {
	ID            int64               `json:"id"`
	FechaHora     time.Time           `json:"fechaHora"`
	Personas      *int                `json:"personas,omitempty"`
	Estado        model.EstadoReserva `json:"estado"`
	Observaciones *string             `json:"observaciones,omitempty"`
	Cliente       *ClienteResponse    `json:"cliente,omitempty"`
}

func NewReservaResponse(m *model.Reserva) ReservaResponse {
	resp := ReservaResponse{
		ID:            m.ID,
		FechaHora:     m.FechaHora,
		Personas:      m.Personas,
		Estado:        m.Estado,
		Observaciones: m.Observaciones,
	}
	if m.Cliente != nil {
		c := NewClienteResponse(m.Cliente)
		resp.Cliente = &c
	}
	return resp
}
