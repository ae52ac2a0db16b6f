// Package repository is the record-store layer: persistence by identifier,
// uniqueness and required-field enforcement delegated to the schema. Deletes
// are idempotent — removing an absent id is a no-op.
package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

// ClienteRepository defines CRUD operations for Cliente.
type ClienteRepository interface {
	Crear(ctx context.Context, c *model.Cliente) error
	Listar(ctx context.Context) ([]model.Cliente, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Cliente, error)
	Existe(ctx context.Context, id int64) (bool, error)
	Actualizar(ctx context.Context, c *model.Cliente) error
	Eliminar(ctx context.Context, id int64) error
	Contar(ctx context.Context) (int64, error)
}

type clienteRepository struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) Crear(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

func (r *clienteRepository) Listar(ctx context.Context) ([]model.Cliente, error) {
	var list []model.Cliente
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

func (r *clienteRepository) ObtenerPorID(ctx context.Context, id int64) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepository) Existe(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *clienteRepository) Actualizar(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error
}

func (r *clienteRepository) Eliminar(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, "id = ?", id).Error
}

func (r *clienteRepository) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).Count(&n).Error
	return n, err
}
