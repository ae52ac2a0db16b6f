package model

import "github.com/HenrySago1/Restaurantesw2/internal/relation"

// Mesa is a physical table. Numero is unique across all tables.
type Mesa struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Numero    int        `json:"numero" gorm:"uniqueIndex;not null"`
	Capacidad int        `json:"capacidad" gorm:"not null"`
	Estado    EstadoMesa `json:"estado" gorm:"type:varchar(20);not null"`

	Pedidos []*Pedido `json:"-" gorm:"foreignKey:MesaID"`
}

func (Mesa) TableName() string { return "mesas" }

func (m *Mesa) Equals(other *Mesa) bool {
	return other != nil && m.ID != 0 && m.ID == other.ID
}

var mesaPedidos = relation.Edge[Mesa, Pedido]{
	Children: func(m *Mesa) *[]*Pedido { return &m.Pedidos },
	Owner:    func(p *Pedido) **Mesa { return &p.Mesa },
	Bind:     func(p *Pedido, m *Mesa) { p.MesaID = fk(m, func(m *Mesa) int64 { return m.ID }) },
}

func (m *Mesa) AddPedido(p *Pedido) *Mesa {
	mesaPedidos.Add(m, p)
	return m
}

func (m *Mesa) RemovePedido(p *Pedido) *Mesa {
	mesaPedidos.Remove(m, p)
	return m
}

func (m *Mesa) SetPedidos(ps []*Pedido) {
	mesaPedidos.Replace(m, ps)
}
