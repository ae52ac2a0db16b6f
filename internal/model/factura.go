package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factura is the invoice side of the Pedido↔Factura one-to-one pair. The
// Pedido back-reference lives in memory only; the foreign key column is on
// the pedido row.
type Factura struct {
	ID           int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	FechaFactura time.Time       `json:"fechaFactura" gorm:"not null"`
	MontoTotal   decimal.Decimal `json:"montoTotal" gorm:"type:decimal(21,2);not null"`
	MetodoPago   MetodoPago      `json:"metodoPago" gorm:"type:varchar(20);not null"`

	Pedido *Pedido `json:"-" gorm:"foreignKey:FacturaID"`
}

func (Factura) TableName() string { return "facturas" }

func (f *Factura) Equals(other *Factura) bool {
	return other != nil && f.ID != 0 && f.ID == other.ID
}

// SetPedido keeps the symmetric pair from the inverse side: it rewires the
// order's owning reference to point here.
func (f *Factura) SetPedido(p *Pedido) {
	if prev := f.Pedido; prev != nil && prev != p {
		pedidoFactura.Set(prev, nil)
	}
	if p != nil {
		pedidoFactura.Set(p, f)
		return
	}
	f.Pedido = nil
}
