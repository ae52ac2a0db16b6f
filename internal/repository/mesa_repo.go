package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

// MesaRepository defines CRUD operations for Mesa. The unique index on numero
// turns duplicate table numbers into gorm.ErrDuplicatedKey at save time.
type MesaRepository interface {
	Crear(ctx context.Context, m *model.Mesa) error
	Listar(ctx context.Context) ([]model.Mesa, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Mesa, error)
	Existe(ctx context.Context, id int64) (bool, error)
	Actualizar(ctx context.Context, m *model.Mesa) error
	Eliminar(ctx context.Context, id int64) error
	Contar(ctx context.Context) (int64, error)
}

type mesaRepository struct{ db *gorm.DB }

func NewMesaRepository(db *gorm.DB) MesaRepository {
	return &mesaRepository{db: db}
}

func (r *mesaRepository) Crear(ctx context.Context, m *model.Mesa) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *mesaRepository) Listar(ctx context.Context) ([]model.Mesa, error) {
	var list []model.Mesa
	err := r.db.WithContext(ctx).Order("numero asc").Find(&list).Error
	return list, err
}

func (r *mesaRepository) ObtenerPorID(ctx context.Context, id int64) (*model.Mesa, error) {
	var m model.Mesa
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mesaRepository) Existe(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Mesa{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *mesaRepository) Actualizar(ctx context.Context, m *model.Mesa) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
}

func (r *mesaRepository) Eliminar(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Mesa{}, "id = ?", id).Error
}

func (r *mesaRepository) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Mesa{}).Count(&n).Error
	return n, err
}
