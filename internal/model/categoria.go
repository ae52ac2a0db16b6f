package model

import "github.com/HenrySago1/Restaurantesw2/internal/relation"

// Categoria is a menu category (document entity, opaque string id). The Platos
// collection is the inverse side of the many-to-many: it exists in memory
// only, the persisted reference list lives on the plato document.
type Categoria struct {
	ID     string `json:"id" bson:"_id,omitempty"`
	Nombre string `json:"nombre" bson:"nombre"`

	Platos []*Plato `json:"-" bson:"-"`
}

func (c *Categoria) Equals(other *Categoria) bool {
	return other != nil && c.ID != "" && c.ID == other.ID
}

var categoriaPlatos = relation.ManyToMany[Categoria, Plato]{
	Left:  func(c *Categoria) *[]*Plato { return &c.Platos },
	Right: func(p *Plato) *[]*Categoria { return &p.Categorias },
}

func (c *Categoria) AddPlato(p *Plato) *Categoria {
	categoriaPlatos.Add(c, p)
	return c
}

func (c *Categoria) RemovePlato(p *Plato) *Categoria {
	categoriaPlatos.Remove(c, p)
	return c
}

func (c *Categoria) SetPlatos(ps []*Plato) {
	categoriaPlatos.Replace(c, ps)
}
