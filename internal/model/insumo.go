package model

// Insumo is an ingredient or supply consumed by a dish (document entity).
type Insumo struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Nombre      string `json:"nombre" bson:"nombre"`
	StockMinimo *int   `json:"stockMinimo,omitempty" bson:"stock_minimo,omitempty"`
	StockActual *int   `json:"stockActual,omitempty" bson:"stock_actual,omitempty"`

	Plato *Plato `json:"plato,omitempty" bson:"-"`
}

func (i *Insumo) Equals(other *Insumo) bool {
	return other != nil && i.ID != "" && i.ID == other.ID
}

func (i *Insumo) SetPlato(p *Plato) {
	platoInsumos.SetOwner(i, p)
}
