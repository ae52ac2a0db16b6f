package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

// ItemPedidoRepository defines CRUD operations for ItemPedido.
type ItemPedidoRepository interface {
	Crear(ctx context.Context, m *model.ItemPedido) error
	Listar(ctx context.Context) ([]model.ItemPedido, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.ItemPedido, error)
	Existe(ctx context.Context, id int64) (bool, error)
	Actualizar(ctx context.Context, m *model.ItemPedido) error
	Eliminar(ctx context.Context, id int64) error
	Contar(ctx context.Context) (int64, error)
}

type itemPedidoRepository struct{ db *gorm.DB }

func NewItemPedidoRepository(db *gorm.DB) ItemPedidoRepository {
	return &itemPedidoRepository{db: db}
}

func (r *itemPedidoRepository) Crear(ctx context.Context, m *model.ItemPedido) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *itemPedidoRepository) Listar(ctx context.Context) ([]model.ItemPedido, error) {
	var list []model.ItemPedido
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

func (r *itemPedidoRepository) ObtenerPorID(ctx context.Context, id int64) (*model.ItemPedido, error) {
	var m model.ItemPedido
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *itemPedidoRepository) Existe(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ItemPedido{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *itemPedidoRepository) Actualizar(ctx context.Context, m *model.ItemPedido) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
}

func (r *itemPedidoRepository) Eliminar(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ItemPedido{}, "id = ?", id).Error
}

func (r *itemPedidoRepository) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ItemPedido{}).Count(&n).Error
	return n, err
}
