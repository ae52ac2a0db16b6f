package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HenrySago1/Restaurantesw2/internal/identifier"
	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

// PlatoRepository defines CRUD operations for Plato documents. The plato
// document owns the many-to-many: it persists the category id list; insumos
// reference the plato from their own documents. The eager flag controls
// whether reads resolve both associations alongside the dish.
type PlatoRepository interface {
	Crear(ctx context.Context, m *model.Plato) error
	Listar(ctx context.Context, eager bool) ([]model.Plato, error)
	ObtenerPorID(ctx context.Context, id string, eager bool) (*model.Plato, error)
	Existe(ctx context.Context, id string) (bool, error)
	Actualizar(ctx context.Context, m *model.Plato) error
	Eliminar(ctx context.Context, id string) error
	Contar(ctx context.Context) (int64, error)
}

// platoDoc is the persisted shape: precio as an exact decimal string,
// categorias denormalized to an id list.
type platoDoc struct {
	ID           string   `bson:"_id"`
	Nombre       string   `bson:"nombre"`
	Descripcion  *string  `bson:"descripcion,omitempty"`
	Precio       string   `bson:"precio"`
	Activo       *bool    `bson:"activo,omitempty"`
	CategoriaIDs []string `bson:"categorias,omitempty"`
}

type platoRepository struct {
	col        *mongo.Collection
	categorias CategoriaRepository
	insumos    *mongo.Collection
}

func NewPlatoRepository(db *mongo.Database, categorias CategoriaRepository) PlatoRepository {
	return &platoRepository{
		col:        db.Collection("plato"),
		categorias: categorias,
		insumos:    db.Collection("insumo"),
	}
}

func platoToDoc(m *model.Plato) platoDoc {
	d := platoDoc{
		ID:          m.ID,
		Nombre:      m.Nombre,
		Descripcion: m.Descripcion,
		Precio:      m.Precio.String(),
		Activo:      m.Activo,
	}
	for _, c := range m.Categorias {
		d.CategoriaIDs = append(d.CategoriaIDs, c.ID)
	}
	return d
}

func (r *platoRepository) docToPlato(d platoDoc) (*model.Plato, error) {
	precio, err := decimal.NewFromString(d.Precio)
	if err != nil {
		return nil, err
	}
	m := &model.Plato{
		ID:          d.ID,
		Nombre:      d.Nombre,
		Descripcion: d.Descripcion,
		Precio:      precio,
		Activo:      d.Activo,
	}
	// Shallow category references; resolved fully only on eager reads.
	for _, id := range d.CategoriaIDs {
		m.Categorias = append(m.Categorias, &model.Categoria{ID: id})
	}
	return m, nil
}

func (r *platoRepository) Crear(ctx context.Context, m *model.Plato) error {
	if m.ID == "" {
		m.ID = identifier.NewDocumentID()
	}
	_, err := r.col.InsertOne(ctx, platoToDoc(m))
	return err
}

func (r *platoRepository) Listar(ctx context.Context, eager bool) ([]model.Plato, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var docs []platoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]model.Plato, 0, len(docs))
	for _, d := range docs {
		p, err := r.docToPlato(d)
		if err != nil {
			return nil, err
		}
		if eager {
			if err := r.resolver(ctx, p); err != nil {
				return nil, err
			}
		}
		list = append(list, *p)
	}
	return list, nil
}

func (r *platoRepository) ObtenerPorID(ctx context.Context, id string, eager bool) (*model.Plato, error) {
	var d platoDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, err
	}
	p, err := r.docToPlato(d)
	if err != nil {
		return nil, err
	}
	if eager {
		if err := r.resolver(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// resolver swaps shallow category references for full documents and loads the
// insumos that point back at this plato.
func (r *platoRepository) resolver(ctx context.Context, p *model.Plato) error {
	ids := make([]string, 0, len(p.Categorias))
	for _, c := range p.Categorias {
		ids = append(ids, c.ID)
	}
	cats, err := r.categorias.ObtenerPorIDs(ctx, ids)
	if err != nil {
		return err
	}
	p.Categorias = nil
	for i := range cats {
		p.Categorias = append(p.Categorias, &cats[i])
	}

	cur, err := r.insumos.Find(ctx, bson.M{"plato": p.ID})
	if err != nil {
		return err
	}
	var docs []insumoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return err
	}
	p.Insumos = nil
	for _, d := range docs {
		p.AddInsumo(&model.Insumo{
			ID:          d.ID,
			Nombre:      d.Nombre,
			StockMinimo: d.StockMinimo,
			StockActual: d.StockActual,
		})
	}
	return nil
}

func (r *platoRepository) Existe(ctx context.Context, id string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id})
	return n > 0, err
}

func (r *platoRepository) Actualizar(ctx context.Context, m *model.Plato) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": m.ID}, platoToDoc(m))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocumento
	}
	return nil
}

func (r *platoRepository) Eliminar(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *platoRepository) Contar(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{})
}
