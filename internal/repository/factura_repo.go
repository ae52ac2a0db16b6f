package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

// FacturaRepository defines CRUD operations for Factura. Reads resolve the
// inverse Pedido reference so callers can derive the "unlinked invoice" view.
type FacturaRepository interface {
	Crear(ctx context.Context, m *model.Factura) error
	Listar(ctx context.Context) ([]model.Factura, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Factura, error)
	Existe(ctx context.Context, id int64) (bool, error)
	Actualizar(ctx context.Context, m *model.Factura) error
	Eliminar(ctx context.Context, id int64) error
	Contar(ctx context.Context) (int64, error)
}

type facturaRepository struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository {
	return &facturaRepository{db: db}
}

func (r *facturaRepository) Crear(ctx context.Context, m *model.Factura) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *facturaRepository) Listar(ctx context.Context) ([]model.Factura, error) {
	var list []model.Factura
	err := r.db.WithContext(ctx).Preload("Pedido").Order("id asc").Find(&list).Error
	return list, err
}

func (r *facturaRepository) ObtenerPorID(ctx context.Context, id int64) (*model.Factura, error) {
	var m model.Factura
	if err := r.db.WithContext(ctx).Preload("Pedido").First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *facturaRepository) Existe(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Factura{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *facturaRepository) Actualizar(ctx context.Context, m *model.Factura) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
}

func (r *facturaRepository) Eliminar(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Factura{}, "id = ?", id).Error
}

func (r *facturaRepository) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Factura{}).Count(&n).Error
	return n, err
}
