package model

import (
	"time"

	"github.com/HenrySago1/Restaurantesw2/internal/relation"
)

// Pedido is an order taken at a table. Every order owns exactly one invoice:
// the factura reference is required and unique at the schema level.
type Pedido struct {
	ID          int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	FechaPedido time.Time    `json:"fechaPedido" gorm:"not null"`
	Estado      EstadoPedido `json:"estado" gorm:"type:varchar(20);not null"`

	FacturaID *int64   `json:"-" gorm:"uniqueIndex;not null"`
	Factura   *Factura `json:"factura,omitempty"`

	ItemPedidos []*ItemPedido `json:"-" gorm:"foreignKey:PedidoID"`

	MesaID *int64 `json:"-" gorm:"index"`
	Mesa   *Mesa  `json:"mesa,omitempty"`
}

func (Pedido) TableName() string { return "pedidos" }

func (p *Pedido) Equals(other *Pedido) bool {
	return other != nil && p.ID != 0 && p.ID == other.ID
}

var pedidoFactura = relation.OneToOne[Pedido, Factura]{
	PeerA: func(p *Pedido) **Factura { return &p.Factura },
	PeerB: func(f *Factura) **Pedido { return &f.Pedido },
	Bind:  func(p *Pedido, f *Factura) { p.FacturaID = fk(f, func(f *Factura) int64 { return f.ID }) },
}

var pedidoItems = relation.Edge[Pedido, ItemPedido]{
	Children: func(p *Pedido) *[]*ItemPedido { return &p.ItemPedidos },
	Owner:    func(i *ItemPedido) **Pedido { return &i.Pedido },
	Bind:     func(i *ItemPedido, p *Pedido) { i.PedidoID = fk(p, func(p *Pedido) int64 { return p.ID }) },
}

// SetFactura links this order and the invoice in both directions; passing nil
// clears the pair symmetrically.
func (p *Pedido) SetFactura(f *Factura) {
	pedidoFactura.Set(p, f)
}

func (p *Pedido) AddItemPedido(i *ItemPedido) *Pedido {
	pedidoItems.Add(p, i)
	return p
}

func (p *Pedido) RemoveItemPedido(i *ItemPedido) *Pedido {
	pedidoItems.Remove(p, i)
	return p
}

func (p *Pedido) SetItemPedidos(items []*ItemPedido) {
	pedidoItems.Replace(p, items)
}

func (p *Pedido) SetMesa(m *Mesa) {
	mesaPedidos.SetOwner(p, m)
}
