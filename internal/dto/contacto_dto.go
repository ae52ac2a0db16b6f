package dto

import (
	"time"

	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

type ContactoRequest struct {
	ID            int64      `json:"id"`
	FechaContacto *time.Time `json:"fechaContacto"`
	Motivo        string     `json:"motivo" validate:"required"`
	Cliente       *EntityRef `json:"cliente"`
}

func (r ContactoRequest) ToModel() *model.Contacto {
	return &model.Contacto{
		ID:            r.ID,
		FechaContacto: r.FechaContacto,
		Motivo:        r.Motivo,
	}
}

type ContactoPatchRequest struct {
	ID            int64      `json:"id"`
	FechaContacto *time.Time `json:"fechaContacto"`
	Motivo        *string    `json:"motivo"`
	Cliente       *EntityRef `json:"cliente"`
}

func (r ContactoPatchRequest) ApplyTo(m *model.Contacto) {
	if r.FechaContacto != nil {
		m.FechaContacto = r.FechaContacto
	}
	if r.Motivo != nil {
		m.Motivo = *r.Motivo
	}
}

type ContactoResponse struct {
	ID            int64            `json:"id"`
	FechaContacto *time.Time       `json:"fechaContacto,omitempty"`
	Motivo        string           `json:"motivo"`
	Cliente       *ClienteResponse `json:"cliente,omitempty"`
}

func NewContactoResponse(m *model.Contacto) ContactoResponse {
	resp := ContactoResponse{
		ID:            m.ID,
		FechaContacto: m.FechaContacto,
		Motivo:        m.Motivo,
	}
	if m.Cliente != nil {
		c := NewClienteResponse(m.Cliente)
		resp.Cliente = &c
	}
	return resp
}
