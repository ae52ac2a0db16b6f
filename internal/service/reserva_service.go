package service

import (
	"context"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/identifier"
	"github.com/HenrySago1/Restaurantesw2/internal/model"
	"github.com/HenrySago1/Restaurantesw2/internal/repository"
)

const reservaEntity = "reserva"

// ReservaService defines business operations for reservations.
type ReservaService interface {
	Crear(ctx context.Context, req dto.ReservaRequest) (dto.ReservaResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ReservaRequest) (dto.ReservaResponse, error)
	ActualizarParcial(ctx context.Context, id int64, req dto.ReservaPatchRequest) (dto.ReservaResponse, error)
	Listar(ctx context.Context) ([]dto.ReservaResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (dto.ReservaResponse, error)
	Eliminar(ctx context.Context, id int64) error
}

type reservaService struct {
	repo     repository.ReservaRepository
	clientes repository.ClienteRepository
}

func NewReservaService(repo repository.ReservaRepository, clientes repository.ClienteRepository) ReservaService {
	return &reservaService{repo: repo, clientes: clientes}
}

// vincularCliente resolves the client reference and rewires the association
// through the relation engine, so both sides of Cliente↔Reserva stay in sync
// before anything is persisted.
func (s *reservaService) vincularCliente(ctx context.Context, m *model.Reserva, ref *dto.EntityRef) error {
	if ref == nil {
		return nil
	}
	cliente, err := s.clientes.ObtenerPorID(ctx, ref.ID)
	if err != nil {
		if esNoEncontrado(err) {
			return apierror.Constraint(reservaEntity, "referenced cliente does not exist")
		}
		return err
	}
	m.SetCliente(cliente)
	return nil
}

func (s *reservaService) Crear(ctx context.Context, req dto.ReservaRequest) (dto.ReservaResponse, error) {
	if err := identifier.ValidateNumericCreate(reservaEntity, req.ID); err != nil {
		return dto.ReservaResponse{}, err
	}
	m := req.ToModel()
	if err := s.vincularCliente(ctx, m, req.Cliente); err != nil {
		return dto.ReservaResponse{}, err
	}
	if err := s.repo.Crear(ctx, m); err != nil {
		return dto.ReservaResponse{}, constraintError(reservaEntity, err)
	}
	return dto.NewReservaResponse(m), nil
}

func (s *reservaService) Actualizar(ctx context.Context, id int64, req dto.ReservaRequest) (dto.ReservaResponse, error) {
	if err := identifier.ValidateNumericUpdate(reservaEntity, id, req.ID); err != nil {
		return dto.ReservaResponse{}, err
	}
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return dto.ReservaResponse{}, err
	}
	if !existe {
		return dto.ReservaResponse{}, apierror.IDNotFound(reservaEntity)
	}
	m := req.ToModel()
	if err := s.vincularCliente(ctx, m, req.Cliente); err != nil {
		return dto.ReservaResponse{}, err
	}
	if err := s.repo.Actualizar(ctx, m); err != nil {
		return dto.ReservaResponse{}, constraintError(reservaEntity, err)
	}
	return dto.NewReservaResponse(m), nil
}

func (s *reservaService) ActualizarParcial(ctx context.Context, id int64, req dto.ReservaPatchRequest) (dto.ReservaResponse, error) {
	if err := identifier.ValidateNumericUpdate(reservaEntity, id, req.ID); err != nil {
		return dto.ReservaResponse{}, err
	}
	existing, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.ReservaResponse{}, apierror.IDNotFound(reservaEntity)
		}
		return dto.ReservaResponse{}, err
	}
	req.ApplyTo(existing)
	if err := s.vincularCliente(ctx, existing, req.Cliente); err != nil {
		return dto.ReservaResponse{}, err
	}
	if err := s.repo.Actualizar(ctx, existing); err != nil {
		return dto.ReservaResponse{}, constraintError(reservaEntity, err)
	}
	return dto.NewReservaResponse(existing), nil
}

func (s *reservaService) Listar(ctx context.Context) ([]dto.ReservaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ReservaResponse, 0, len(list))
	for i := range list {
		result = append(result, dto.NewReservaResponse(&list[i]))
	}
	return result, nil
}

func (s *reservaService) ObtenerPorID(ctx context.Context, id int64) (dto.ReservaResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.ReservaResponse{}, apierror.NotFound(reservaEntity)
		}
		return dto.ReservaResponse{}, err
	}
	return dto.NewReservaResponse(m), nil
}

func (s *reservaService) Eliminar(ctx context.Context, id int64) error {
	return s.repo.Eliminar(ctx, id)
}
