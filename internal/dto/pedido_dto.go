package dto

import (
	"time"

	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

// PedidoRequest requires a Factura reference: an order cannot exist without
// its invoice (required + unique pairing).
type PedidoRequest struct {
	ID          int64              `json:"id"`
	FechaPedido time.Time          `json:"fechaPedido" validate:"required"`
	Estado      model.EstadoPedido `json:"estado" validate:"required,oneof=PENDIENTE EN_PREPARACION SERVIDO PAGADO CANCELADO"`
	Factura     *EntityRef         `json:"factura" validate:"required"`
	Mesa        *EntityRef         `json:"mesa"`
}

func (r PedidoRequest) ToModel() *model.Pedido {
	return &model.Pedido{
		ID:          r.ID,
		FechaPedido: r.FechaPedido,
		Estado:      r.Estado,
	}
}

type PedidoPatchRequest struct {
	ID          int64               `json:"id"`
	FechaPedido *time.Time          `json:"fechaPedido"`
	Estado      *model.EstadoPedido `json:"estado" validate:"omitempty,oneof=PENDIENTE EN_PREPARACION SERVIDO PAGADO CANCELADO"`
	Factura     *EntityRef          `json:"factura"`
	Mesa        *EntityRef          `json:"mesa"`
}

func (r PedidoPatchRequest) ApplyTo(m *model.Pedido) {
	if r.FechaPedido != nil {
		m.FechaPedido = *r.FechaPedido
	}
	if r.Estado != nil {
		m.Estado = *r.Estado
	}
}

type PedidoResponse struct {
	ID          int64              `json:"id"`
	FechaPedido time.Time          `json:"fechaPedido"`
	Estado      model.EstadoPedido `json:"estado"`
	Factura     *FacturaResponse   `json:"factura,omitempty"`
	Mesa        *MesaResponse      `json:"mesa,omitempty"`
}

func NewPedidoResponse(m *model.Pedido) PedidoResponse {
	resp := PedidoResponse{
		ID:          m.ID,
		FechaPedido: m.FechaPedido,
		Estado:      m.Estado,
	}
	if m.Factura != nil {
		f := NewFacturaResponse(m.Factura)
		resp.Factura = &f
	}
	if m.Mesa != nil {
		mesa := NewMesaResponse(m.Mesa)
		resp.Mesa = &mesa
	}
	return resp
}
