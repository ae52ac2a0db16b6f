package model

import "time"

// Contacto is one logged interaction with a client (call, complaint, follow-up).
type Contacto struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	FechaContacto *time.Time `json:"fechaContacto,omitempty"`
	Motivo        string     `json:"motivo" gorm:"not null"`

	ClienteID *int64   `json:"-" gorm:"index"`
	Cliente   *Cliente `json:"cliente,omitempty"`
}

func (Contacto) TableName() string { return "contactos" }

func (c *Contacto) Equals(other *Contacto) bool {
	return other != nil && c.ID != 0 && c.ID == other.ID
}

func (c *Contacto) SetCliente(cl *Cliente) {
	clienteContactos.SetOwner(c, cl)
}
