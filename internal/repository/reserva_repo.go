package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

// ReservaRepository defines CRUD operations for Reserva. Reads resolve the
// many-to-one Cliente reference alongside the row.
type ReservaRepository interface {
	Crear(ctx context.Context, m *model.Reserva) error
	Listar(ctx context.Context) ([]model.Reserva, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Reserva, error)
	Existe(ctx context.Context, id int64) (bool, error)
	Actualizar(ctx context.Context, m *model.Reserva) error
	Eliminar(ctx context.Context, id int64) error
	Contar(ctx context.Context) (int64, error)
}

type reservaRepository struct{ db *gorm.DB }

func NewReservaRepository(db *gorm.DB) ReservaRepository {
	return &reservaRepository{db: db}
}

func (r *reservaRepository) Crear(ctx context.Context, m *model.Reserva) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *reservaRepository) Listar(ctx context.Context) ([]model.Reserva, error) {
	var list []model.Reserva
	err := r.db.WithContext(ctx).Preload("Cliente").Order("id asc").Find(&list).Error
	return list, err
}

func (r *reservaRepository) ObtenerPorID(ctx context.Context, id int64) (*model.Reserva, error) {
	var m model.Reserva
	if err := r.db.WithContext(ctx).Preload("Cliente").First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *reservaRepository) Existe(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Reserva{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *reservaRepository) Actualizar(ctx context.Context, m *model.Reserva) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
}

func (r *reservaRepository) Eliminar(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Reserva{}, "id = ?", id).Error
}

func (r *reservaRepository) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Reserva{}).Count(&n).Error
	return n, err
}
