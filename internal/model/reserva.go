package model

import "time"

// Reserva is a table reservation for a client.
type Reserva struct {
	ID            int64         `json:"id" gorm:"primaryKey;autoIncrement"`
	FechaHora     time.Time     `json:"fechaHora" gorm:"not null"`
	Personas      *int          `json:"personas,omitempty"`
	Estado        EstadoReserva `json:"estado" gorm:"type:varchar(20);not null"`
	Observaciones *string       `json:"observaciones,omitempty"`

	ClienteID *int64   `json:"-" gorm:"index"`
	Cliente   *Cliente `json:"cliente,omitempty"`
}

func (Reserva) TableName() string { return "reservas" }

func (r *Reserva) Equals(other *Reserva) bool {
	return other != nil && r.ID != 0 && r.ID == other.ID
}

// SetCliente moves the reservation between clients, keeping both clients'
// collections consistent.
func (r *Reserva) SetCliente(c *Cliente) {
	clienteReservas.SetOwner(r, c)
}
