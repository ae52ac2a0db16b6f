package model

import (
	"github.com/shopspring/decimal"

	"github.com/HenrySago1/Restaurantesw2/internal/relation"
)

// Plato is a dish on the menu (document entity). It owns the many-to-many to
// Categoria — the plato document persists the category reference list — and
// is the inverse side of the one-to-many to Insumo.
type Plato struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	Nombre      string          `json:"nombre" bson:"nombre"`
	Descripcion *string         `json:"descripcion,omitempty" bson:"descripcion,omitempty"`
	Precio      decimal.Decimal `json:"precio" bson:"-"`
	Activo      *bool           `json:"activo,omitempty" bson:"activo,omitempty"`

	Categorias []*Categoria `json:"categorias,omitempty" bson:"-"`
	Insumos    []*Insumo    `json:"-" bson:"-"`
}

func (p *Plato) Equals(other *Plato) bool {
	return other != nil && p.ID != "" && p.ID == other.ID
}

var platoInsumos = relation.Edge[Plato, Insumo]{
	Children: func(p *Plato) *[]*Insumo { return &p.Insumos },
	Owner:    func(i *Insumo) **Plato { return &i.Plato },
}

func (p *Plato) AddCategoria(c *Categoria) *Plato {
	categoriaPlatos.Add(c, p)
	return p
}

func (p *Plato) RemoveCategoria(c *Categoria) *Plato {
	categoriaPlatos.Remove(c, p)
	return p
}

// SetCategorias bulk-replaces the owning reference list, detaching this plato
// from every category no longer referenced.
func (p *Plato) SetCategorias(cs []*Categoria) {
	platoCategorias.Replace(p, cs)
}

var platoCategorias = relation.ManyToMany[Plato, Categoria]{
	Left:  func(p *Plato) *[]*Categoria { return &p.Categorias },
	Right: func(c *Categoria) *[]*Plato { return &c.Platos },
}

func (p *Plato) AddInsumo(i *Insumo) *Plato {
	platoInsumos.Add(p, i)
	return p
}

func (p *Plato) RemoveInsumo(i *Insumo) *Plato {
	platoInsumos.Remove(p, i)
	return p
}

func (p *Plato) SetInsumos(is []*Insumo) {
	platoInsumos.Replace(p, is)
}
