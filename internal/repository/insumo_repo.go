package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HenrySago1/Restaurantesw2/internal/identifier"
	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

// InsumoRepository defines CRUD operations for Insumo documents. The insumo
// document holds the owning side of the Plato↔Insumo one-to-many as a single
// plato id reference.
type InsumoRepository interface {
	Crear(ctx context.Context, m *model.Insumo) error
	Listar(ctx context.Context) ([]model.Insumo, error)
	ObtenerPorID(ctx context.Context, id string) (*model.Insumo, error)
	Existe(ctx context.Context, id string) (bool, error)
	Actualizar(ctx context.Context, m *model.Insumo) error
	Eliminar(ctx context.Context, id string) error
	Contar(ctx context.Context) (int64, error)
}

type insumoDoc struct {
	ID          string  `bson:"_id"`
	Nombre      string  `bson:"nombre"`
	StockMinimo *int    `bson:"stock_minimo,omitempty"`
	StockActual *int    `bson:"stock_actual,omitempty"`
	PlatoID     *string `bson:"plato,omitempty"`
}

type insumoRepository struct{ col *mongo.Collection }

func NewInsumoRepository(db *mongo.Database) InsumoRepository {
	return &insumoRepository{col: db.Collection("insumo")}
}

func insumoToDoc(m *model.Insumo) insumoDoc {
	d := insumoDoc{
		ID:          m.ID,
		Nombre:      m.Nombre,
		StockMinimo: m.StockMinimo,
		StockActual: m.StockActual,
	}
	if m.Plato != nil {
		id := m.Plato.ID
		d.PlatoID = &id
	}
	return d
}

func docToInsumo(d insumoDoc) model.Insumo {
	m := model.Insumo{
		ID:          d.ID,
		Nombre:      d.Nombre,
		StockMinimo: d.StockMinimo,
		StockActual: d.StockActual,
	}
	if d.PlatoID != nil {
		// Shallow reference; the full plato lives at its own resource.
		m.Plato = &model.Plato{ID: *d.PlatoID}
	}
	return m
}

func (r *insumoRepository) Crear(ctx context.Context, m *model.Insumo) error {
	if m.ID == "" {
		m.ID = identifier.NewDocumentID()
	}
	_, err := r.col.InsertOne(ctx, insumoToDoc(m))
	return err
}

func (r *insumoRepository) Listar(ctx context.Context) ([]model.Insumo, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var docs []insumoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]model.Insumo, 0, len(docs))
	for _, d := range docs {
		list = append(list, docToInsumo(d))
	}
	return list, nil
}

func (r *insumoRepository) ObtenerPorID(ctx context.Context, id string) (*model.Insumo, error) {
	var d insumoDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, err
	}
	m := docToInsumo(d)
	return &m, nil
}

func (r *insumoRepository) Existe(ctx context.Context, id string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id})
	return n > 0, err
}

func (r *insumoRepository) Actualizar(ctx context.Context, m *model.Insumo) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": m.ID}, insumoToDoc(m))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocumento
	}
	return nil
}

func (r *insumoRepository) Eliminar(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *insumoRepository) Contar(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{})
}
