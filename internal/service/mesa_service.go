package service

import (
	"context"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/identifier"
	"github.com/HenrySago1/Restaurantesw2/internal/repository"
)

const mesaEntity = "mesa"

// MesaService defines business operations for tables.
type MesaService interface {
	Crear(ctx context.Context, req dto.MesaRequest) (dto.MesaResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.MesaRequest) (dto.MesaResponse, error)
	ActualizarParcial(ctx context.Context, id int64, req dto.MesaPatchRequest) (dto.MesaResponse, error)
	Listar(ctx context.Context) ([]dto.MesaResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (dto.MesaResponse, error)
	Eliminar(ctx context.Context, id int64) error
}

type mesaService struct {
	repo repository.MesaRepository
}

func NewMesaService(repo repository.MesaRepository) MesaService {
	return &mesaService{repo: repo}
}

func (s *mesaService) Crear(ctx context.Context, req dto.MesaRequest) (dto.MesaResponse, error) {
	if err := identifier.ValidateNumericCreate(mesaEntity, req.ID); err != nil {
		return dto.MesaResponse{}, err
	}
	m := req.ToModel()
	if err := s.repo.Crear(ctx, m); err != nil {
		return dto.MesaResponse{}, constraintError(mesaEntity, err)
	}
	return dto.NewMesaResponse(m), nil
}

func (s *mesaService) Actualizar(ctx context.Context, id int64, req dto.MesaRequest) (dto.MesaResponse, error) {
	if err := identifier.ValidateNumericUpdate(mesaEntity, id, req.ID); err != nil {
		return dto.MesaResponse{}, err
	}
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return dto.MesaResponse{}, err
	}
	if !existe {
		return dto.MesaResponse{}, apierror.IDNotFound(mesaEntity)
	}
	m := req.ToModel()
	if err := s.repo.Actualizar(ctx, m); err != nil {
		return dto.MesaResponse{}, constraintError(mesaEntity, err)
	}
	return dto.NewMesaResponse(m), nil
}

func (s *mesaService) ActualizarParcial(ctx context.Context, id int64, req dto.MesaPatchRequest) (dto.MesaResponse, error) {
	if err := identifier.ValidateNumericUpdate(mesaEntity, id, req.ID); err != nil {
		return dto.MesaResponse{}, err
	}
	existing, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.MesaResponse{}, apierror.IDNotFound(mesaEntity)
		}
		return dto.MesaResponse{}, err
	}
	req.ApplyTo(existing)
	if err := s.repo.Actualizar(ctx, existing); err != nil {
		return dto.MesaResponse{}, constraintError(mesaEntity, err)
	}
	return dto.NewMesaResponse(existing), nil
}

func (s *mesaService) Listar(ctx context.Context) ([]dto.MesaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MesaResponse, 0, len(list))
	for i := range list {
		result = append(result, dto.NewMesaResponse(&list[i]))
	}
	return result, nil
}

func (s *mesaService) ObtenerPorID(ctx context.Context, id int64) (dto.MesaResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.MesaResponse{}, apierror.NotFound(mesaEntity)
		}
		return dto.MesaResponse{}, err
	}
	return dto.NewMesaResponse(m), nil
}

func (s *mesaService) Eliminar(ctx context.Context, id int64) error {
	return s.repo.Eliminar(ctx, id)
}
