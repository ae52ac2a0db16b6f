package dto

import (
	"github.com/shopspring/decimal"

	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

type ItemPedidoRequest struct {
	ID             int64           `json:"id"`
	Cantidad       *int            `json:"cantidad" validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario" validate:"required"`
	Pedido         *EntityRef      `json:"pedido"`
}

func (r ItemPedidoRequest) ToModel() *model.ItemPedido {
	m := &model.ItemPedido{ID: r.ID, PrecioUnitario: r.PrecioUnitario}
	if r.Cantidad != nil {
		m.Cantidad = *r.Cantidad
	}
	return m
}

type ItemPedidoPatchRequest struct {
	ID             int64            `json:"id"`
	Cantidad       *int             `json:"cantidad" validate:"omitempty,min=1"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario"`
	Pedido         *EntityRef       `json:"pedido"`
}

func (r ItemPedidoPatchRequest) ApplyTo(m *model.ItemPedido) {
	if r.Cantidad != nil {
		m.Cantidad = *r.Cantidad
	}
	if r.PrecioUnitario != nil {
		m.PrecioUnitario = *r.PrecioUnitario
	}
}

type ItemPedidoResponse struct {
	ID             int64           `json:"id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Pedido         *EntityRef      `json:"pedido,omitempty"`
}

func NewItemPedidoResponse(m *model.ItemPedido) ItemPedidoResponse {
	resp := ItemPedidoResponse{
		ID:             m.ID,
		Cantidad:       m.Cantidad,
		PrecioUnitario: m.PrecioUnitario,
	}
	if m.Pedido != nil {
		resp.Pedido = &EntityRef{ID: m.Pedido.ID}
	} else if m.PedidoID != nil {
		resp.Pedido = &EntityRef{ID: *m.PedidoID}
	}
	return resp
}
