package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

// ContactoRepository defines CRUD operations for Contacto.
type ContactoRepository interface {
	Crear(ctx context.Context, m *model.Contacto) error
	Listar(ctx context.Context) ([]model.Contacto, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Contacto, error)
	Existe(ctx context.Context, id int64) (bool, error)
	Actualizar(ctx context.Context, m *model.Contacto) error
	Eliminar(ctx context.Context, id int64) error
	Contar(ctx context.Context) (int64, error)
}

type contactoRepository struct{ db *gorm.DB }

func NewContactoRepository(db *gorm.DB) ContactoRepository {
	return &contactoRepository{db: db}
}

func (r *contactoRepository) Crear(ctx context.Context, m *model.Contacto) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *contactoRepository) Listar(ctx context.Context) ([]model.Contacto, error) {
	var list []model.Contacto
	err := r.db.WithContext(ctx).Preload("Cliente").Order("id asc").Find(&list).Error
	return list, err
}

func (r *contactoRepository) ObtenerPorID(ctx context.Context, id int64) (*model.Contacto, error) {
	var m model.Contacto
	if err := r.db.WithContext(ctx).Preload("Cliente").First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *contactoRepository) Existe(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Contacto{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *contactoRepository) Actualizar(ctx context.Context, m *model.Contacto) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
}

func (r *contactoRepository) Eliminar(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Contacto{}, "id = ?", id).Error
}

func (r *contactoRepository) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Contacto{}).Count(&n).Error
	return n, err
}
