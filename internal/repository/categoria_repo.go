package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HenrySago1/Restaurantesw2/internal/identifier"
	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

// ErrNoDocumento is the document-store counterpart of gorm.ErrRecordNotFound.
var ErrNoDocumento = mongo.ErrNoDocuments

// CategoriaRepository defines CRUD operations for Categoria documents.
type CategoriaRepository interface {
	Crear(ctx context.Context, m *model.Categoria) error
	Listar(ctx context.Context) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id string) (*model.Categoria, error)
	ObtenerPorIDs(ctx context.Context, ids []string) ([]model.Categoria, error)
	Existe(ctx context.Context, id string) (bool, error)
	Actualizar(ctx context.Context, m *model.Categoria) error
	Eliminar(ctx context.Context, id string) error
	Contar(ctx context.Context) (int64, error)
}

type categoriaDoc struct {
	ID     string `bson:"_id"`
	Nombre string `bson:"nombre"`
}

type categoriaRepository struct{ col *mongo.Collection }

func NewCategoriaRepository(db *mongo.Database) CategoriaRepository {
	return &categoriaRepository{col: db.Collection("categoria")}
}

func (r *categoriaRepository) Crear(ctx context.Context, m *model.Categoria) error {
	if m.ID == "" {
		m.ID = identifier.NewDocumentID()
	}
	_, err := r.col.InsertOne(ctx, categoriaDoc{ID: m.ID, Nombre: m.Nombre})
	return err
}

func (r *categoriaRepository) Listar(ctx context.Context) ([]model.Categoria, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var docs []categoriaDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]model.Categoria, 0, len(docs))
	for _, d := range docs {
		list = append(list, model.Categoria{ID: d.ID, Nombre: d.Nombre})
	}
	return list, nil
}

func (r *categoriaRepository) ObtenerPorID(ctx context.Context, id string) (*model.Categoria, error) {
	var d categoriaDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, err
	}
	return &model.Categoria{ID: d.ID, Nombre: d.Nombre}, nil
}

func (r *categoriaRepository) ObtenerPorIDs(ctx context.Context, ids []string) ([]model.Categoria, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var docs []categoriaDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]model.Categoria, 0, len(docs))
	for _, d := range docs {
		list = append(list, model.Categoria{ID: d.ID, Nombre: d.Nombre})
	}
	return list, nil
}

func (r *categoriaRepository) Existe(ctx context.Context, id string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id})
	return n > 0, err
}

func (r *categoriaRepository) Actualizar(ctx context.Context, m *model.Categoria) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": m.ID}, categoriaDoc{ID: m.ID, Nombre: m.Nombre})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocumento
	}
	return nil
}

func (r *categoriaRepository) Eliminar(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *categoriaRepository) Contar(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{})
}
