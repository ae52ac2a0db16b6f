package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

// PedidoRepository defines CRUD operations for Pedido. Reads resolve the
// owning Factura and Mesa references. The NOT NULL + unique factura_id column
// makes "order without invoice" and "invoice shared by two orders" save-time
// constraint violations.
type PedidoRepository interface {
	Crear(ctx context.Context, m *model.Pedido) error
	Listar(ctx context.Context) ([]model.Pedido, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Pedido, error)
	Existe(ctx context.Context, id int64) (bool, error)
	Actualizar(ctx context.Context, m *model.Pedido) error
	Eliminar(ctx context.Context, id int64) error
	Contar(ctx context.Context) (int64, error)
}

type pedidoRepository struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository {
	return &pedidoRepository{db: db}
}

// Crear persists only the pedido row: associated entities are referenced by
// id, never upserted as a side effect.
func (r *pedidoRepository) Crear(ctx context.Context, m *model.Pedido) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *pedidoRepository) Listar(ctx context.Context) ([]model.Pedido, error) {
	var list []model.Pedido
	err := r.db.WithContext(ctx).Preload("Factura").Preload("Mesa").Order("id asc").Find(&list).Error
	return list, err
}

func (r *pedidoRepository) ObtenerPorID(ctx context.Context, id int64) (*model.Pedido, error) {
	var m model.Pedido
	if err := r.db.WithContext(ctx).Preload("Factura").Preload("Mesa").First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *pedidoRepository) Existe(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *pedidoRepository) Actualizar(ctx context.Context, m *model.Pedido) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
}

func (r *pedidoRepository) Eliminar(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Pedido{}, "id = ?", id).Error
}

func (r *pedidoRepository) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).Count(&n).Error
	return n, err
}
