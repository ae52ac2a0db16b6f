package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClienteEqualsByID(t *testing.T) {
	a := &Cliente{ID: 7}
	b := &Cliente{ID: 7}
	c := &Cliente{ID: 8}

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))

	// Transient entities are never equal, not even to themselves under a
	// different pointer.
	t1 := &Cliente{}
	t2 := &Cliente{}
	assert.False(t, t1.Equals(t2))
	assert.False(t, t1.Equals(t1))
}

func TestReservaSetClienteMovesBetweenClientes(t *testing.T) {
	ana := &Cliente{ID: 1, Nombre: "Ana", Apellido: "Ruiz"}
	luis := &Cliente{ID: 2, Nombre: "Luis", Apellido: "Paz"}
	r := &Reserva{ID: 10}

	r.SetCliente(ana)
	assert.Same(t, ana, r.Cliente)
	assert.Contains(t, ana.Reservas, r)
	if assert.NotNil(t, r.ClienteID) {
		assert.EqualValues(t, 1, *r.ClienteID)
	}

	r.SetCliente(luis)
	assert.Same(t, luis, r.Cliente)
	assert.NotContains(t, ana.Reservas, r)
	assert.Contains(t, luis.Reservas, r)
	if assert.NotNil(t, r.ClienteID) {
		assert.EqualValues(t, 2, *r.ClienteID)
	}
}

func TestClienteAddRemoveContacto(t *testing.T) {
	c := &Cliente{ID: 1}
	ct := &Contacto{ID: 5}

	c.AddContacto(ct)
	assert.Same(t, c, ct.Cliente)
	assert.Len(t, c.Contactos, 1)

	c.RemoveContacto(ct)
	assert.Nil(t, ct.Cliente)
	assert.Nil(t, ct.ClienteID)
	assert.Empty(t, c.Contactos)
}

func TestClienteRemoveReservaClearsBackRefUnconditionally(t *testing.T) {
	a := &Cliente{ID: 1}
	b := &Cliente{ID: 2}
	r := &Reserva{ID: 3}
	a.AddReserva(r)

	// Removing from a client that never held the reservation still nulls the
	// back-reference.
	b.RemoveReserva(r)

	assert.Nil(t, r.Cliente)
	assert.Nil(t, r.ClienteID)
	assert.Contains(t, a.Reservas, r)
}

func TestMesaSetPedidosDetachesOldBeforeAttachingNew(t *testing.T) {
	m := &Mesa{ID: 1, Numero: 4}
	p1 := &Pedido{ID: 1}
	p2 := &Pedido{ID: 2}
	p3 := &Pedido{ID: 3}
	m.AddPedido(p1)
	m.AddPedido(p2)

	m.SetPedidos([]*Pedido{p2, p3})

	assert.Nil(t, p1.Mesa)
	assert.Nil(t, p1.MesaID)
	assert.Same(t, m, p2.Mesa)
	assert.Same(t, m, p3.Mesa)
	assert.Equal(t, []*Pedido{p2, p3}, m.Pedidos)
}

func TestPedidoFacturaSymmetry(t *testing.T) {
	p := &Pedido{ID: 1}
	f1 := &Factura{ID: 1}
	f2 := &Factura{ID: 2}

	p.SetFactura(f1)
	assert.Same(t, f1, p.Factura)
	assert.Same(t, p, f1.Pedido)
	if assert.NotNil(t, p.FacturaID) {
		assert.EqualValues(t, 1, *p.FacturaID)
	}

	// Rewiring to a new invoice releases the old one.
	p.SetFactura(f2)
	assert.Nil(t, f1.Pedido)
	assert.Same(t, f2, p.Factura)
	assert.Same(t, p, f2.Pedido)
}

func TestFacturaSetPedidoFromInverseSide(t *testing.T) {
	f := &Factura{ID: 1}
	p1 := &Pedido{ID: 1}
	p2 := &Pedido{ID: 2}

	f.SetPedido(p1)
	assert.Same(t, p1, f.Pedido)
	assert.Same(t, f, p1.Factura)

	f.SetPedido(p2)
	assert.Nil(t, p1.Factura)
	assert.Nil(t, p1.FacturaID)
	assert.Same(t, p2, f.Pedido)

	f.SetPedido(nil)
	assert.Nil(t, f.Pedido)
	assert.Nil(t, p2.Factura)
}

func TestPlatoCategoriaManyToMany(t *testing.T) {
	plato := &Plato{ID: "p1", Nombre: "Milanesa"}
	c1 := &Categoria{ID: "c1", Nombre: "Principales"}
	c2 := &Categoria{ID: "c2", Nombre: "Clasicos"}

	plato.AddCategoria(c1)
	assert.Contains(t, plato.Categorias, c1)
	assert.Contains(t, c1.Platos, plato)

	plato.SetCategorias([]*Categoria{c2})
	assert.NotContains(t, c1.Platos, plato)
	assert.Equal(t, []*Categoria{c2}, plato.Categorias)
	assert.Contains(t, c2.Platos, plato)

	plato.RemoveCategoria(c2)
	assert.Empty(t, plato.Categorias)
	assert.Empty(t, c2.Platos)
}

func TestInsumoSetPlato(t *testing.T) {
	p1 := &Plato{ID: "p1"}
	p2 := &Plato{ID: "p2"}
	i := &Insumo{ID: "i1", Nombre: "Harina"}

	i.SetPlato(p1)
	assert.Same(t, p1, i.Plato)
	assert.Contains(t, p1.Insumos, i)

	i.SetPlato(p2)
	assert.NotContains(t, p1.Insumos, i)
	assert.Contains(t, p2.Insumos, i)

	i.SetPlato(nil)
	assert.Nil(t, i.Plato)
	assert.Empty(t, p2.Insumos)
}
