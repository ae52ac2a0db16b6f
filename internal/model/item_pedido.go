package model

import "github.com/shopspring/decimal"

// ItemPedido is one order line: quantity times unit price.
type ItemPedido struct {
	ID             int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Cantidad       int             `json:"cantidad" gorm:"not null"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario" gorm:"type:decimal(21,2);not null"`

	PedidoID *int64  `json:"-" gorm:"index"`
	Pedido   *Pedido `json:"pedido,omitempty"`
}

func (ItemPedido) TableName() string { return "item_pedidos" }

func (i *ItemPedido) Equals(other *ItemPedido) bool {
	return other != nil && i.ID != 0 && i.ID == other.ID
}

func (i *ItemPedido) SetPedido(p *Pedido) {
	pedidoItems.SetOwner(i, p)
}
