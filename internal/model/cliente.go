package model

import "github.com/HenrySago1/Restaurantesw2/internal/relation"

// Cliente is a CRM client. Email is unique when present.
type Cliente struct {
	ID       int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre   string  `json:"nombre" gorm:"not null"`
	Apellido string  `json:"apellido" gorm:"not null"`
	Email    *string `json:"email,omitempty" gorm:"uniqueIndex"`
	Telefono *string `json:"telefono,omitempty"`

	Reservas  []*Reserva  `json:"-" gorm:"foreignKey:ClienteID"`
	Contactos []*Contacto `json:"-" gorm:"foreignKey:ClienteID"`
}

func (Cliente) TableName() string { return "clientes" }

// Equals implements identity-by-ID: transient (zero-ID) clients are never
// equal, even to themselves under a different pointer.
func (c *Cliente) Equals(other *Cliente) bool {
	return other != nil && c.ID != 0 && c.ID == other.ID
}

var clienteReservas = relation.Edge[Cliente, Reserva]{
	Children: func(c *Cliente) *[]*Reserva { return &c.Reservas },
	Owner:    func(r *Reserva) **Cliente { return &r.Cliente },
	Bind:     func(r *Reserva, c *Cliente) { r.ClienteID = fk(c, func(c *Cliente) int64 { return c.ID }) },
}

var clienteContactos = relation.Edge[Cliente, Contacto]{
	Children: func(c *Cliente) *[]*Contacto { return &c.Contactos },
	Owner:    func(ct *Contacto) **Cliente { return &ct.Cliente },
	Bind:     func(ct *Contacto, c *Cliente) { ct.ClienteID = fk(c, func(c *Cliente) int64 { return c.ID }) },
}

func (c *Cliente) AddReserva(r *Reserva) *Cliente {
	clienteReservas.Add(c, r)
	return c
}

func (c *Cliente) RemoveReserva(r *Reserva) *Cliente {
	clienteReservas.Remove(c, r)
	return c
}

func (c *Cliente) SetReservas(rs []*Reserva) {
	clienteReservas.Replace(c, rs)
}

func (c *Cliente) AddContacto(ct *Contacto) *Cliente {
	clienteContactos.Add(c, ct)
	return c
}

func (c *Cliente) RemoveContacto(ct *Contacto) *Cliente {
	clienteContactos.Remove(c, ct)
	return c
}

func (c *Cliente) SetContactos(cts []*Contacto) {
	clienteContactos.Replace(c, cts)
}

// fk mirrors an owner pointer into a nullable foreign key column. Transient
// owners (zero ID) map to NULL; GORM fills the column once the owner is saved.
func fk[O any](owner *O, id func(*O) int64) *int64 {
	if owner == nil {
		return nil
	}
	v := id(owner)
	if v == 0 {
		return nil
	}
	return &v
}
