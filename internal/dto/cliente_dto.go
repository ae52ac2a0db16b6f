package dto

import "github.com/HenrySago1/Restaurantesw2/internal/model"

// ClienteRequest is the full-body shape shared by POST and PUT.
type ClienteRequest struct {
	ID       int64   `json:"id"`
	Nombre   string  `json:"nombre" validate:"required"`
	Apellido string  `json:"apellido" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *string `json:"telefono"`
}

func (r ClienteRequest) ToModel() *model.Cliente {
	return &model.Cliente{
		ID:       r.ID,
		Nombre:   r.Nombre,
		Apellido: r.Apellido,
		Email:    r.Email,
		Telefono: r.Telefono,
	}
}

// ClientePatchRequest is the merge-patch shape: nil means "leave untouched".
type ClientePatchRequest struct {
	ID       int64   `json:"id"`
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *string `json:"telefono"`
}

// ApplyTo overwrites only the fields present on the patch.
func (r ClientePatchRequest) ApplyTo(c *model.Cliente) {
	if r.Nombre != nil {
		c.Nombre = *r.Nombre
	}
	if r.Apellido != nil {
		c.Apellido = *r.Apellido
	}
	if r.Email != nil {
		c.Email = r.Email
	}
	if r.Telefono != nil {
		c.Telefono = r.Telefono
	}
}

type ClienteResponse struct {
	ID       int64   `json:"id"`
	Nombre   string  `json:"nombre"`
	Apellido string  `json:"apellido"`
	Email    *string `json:"email,omitempty"`
	Telefono *string `json:"telefono,omitempty"`
}

func NewClienteResponse(c *model.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:       c.ID,
		Nombre:   c.Nombre,
		Apellido: c.Apellido,
		Email:    c.Email,
		Telefono: c.Telefono,
	}
}
