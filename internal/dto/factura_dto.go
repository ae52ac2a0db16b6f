package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

type FacturaRequest struct {
	ID           int64            `json:"id"`
	FechaFactura time.Time        `json:"fechaFactura" validate:"required"`
	MontoTotal   decimal.Decimal  `json:"montoTotal" validate:"required"`
	MetodoPago   model.MetodoPago `json:"metodoPago" validate:"required,oneof=EFECTIVO QR TARJETA"`
}

func (r FacturaRequest) ToModel() *model.Factura {
	return &model.Factura{
		ID:           r.ID,
		FechaFactura: r.FechaFactura,
		MontoTotal:   r.MontoTotal,
		MetodoPago:   r.MetodoPago,
	}
}

type FacturaPatchRequest struct {
	ID           int64             `json:"id"`
	FechaFactura *time.Time        `json:"fechaFactura"`
	MontoTotal   *decimal.Decimal  `json:"montoTotal"`
	MetodoPago   *model.MetodoPago `json:"metodoPago" validate:"omitempty,oneof=EFECTIVO QR TARJETA"`
}

func (r FacturaPatchRequest) ApplyTo(m *model.Factura) {
	if r.FechaFactura != nil {
		m.FechaFactura = *r.FechaFactura
	}
	if r.MontoTotal != nil {
		m.MontoTotal = *r.MontoTotal
	}
	if r.MetodoPago != nil {
		m.MetodoPago = *r.MetodoPago
	}
}

// FacturaResponse references the linked order by id only; the full order is
// available at its own resource.
type FacturaResponse struct {
	ID           int64            `json:"id"`
	FechaFactura time.Time        `json:"fechaFactura"`
	MontoTotal   decimal.Decimal  `json:"montoTotal"`
	MetodoPago   model.MetodoPago `json:"metodoPago"`
	Pedido       *EntityRef       `json:"pedido,omitempty"`
}

func NewFacturaResponse(m *model.Factura) FacturaResponse {
	resp := FacturaResponse{
		ID:           m.ID,
		FechaFactura: m.FechaFactura,
		MontoTotal:   m.MontoTotal,
		MetodoPago:   m.MetodoPago,
	}
	if m.Pedido != nil {
		resp.Pedido = &EntityRef{ID: m.Pedido.ID}
	}
	return resp
}
