package service

import (
	"context"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/identifier"
	"github.com/HenrySago1/Restaurantesw2/internal/repository"
)

const clienteEntity = "cliente"

// ClienteService defines business operations for CRM clients.
type ClienteService interface {
	Crear(ctx context.Context, req dto.ClienteRequest) (dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ClienteRequest) (dto.ClienteResponse, error)
	ActualizarParcial(ctx context.Context, id int64, req dto.ClientePatchRequest) (dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id int64) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.ClienteRequest) (dto.ClienteResponse, error) {
	if err := identifier.ValidateNumericCreate(clienteEntity, req.ID); err != nil {
		return dto.ClienteResponse{}, err
	}
	m := req.ToModel()
	if err := s.repo.Crear(ctx, m); err != nil {
		return dto.ClienteResponse{}, constraintError(clienteEntity, err)
	}
	return dto.NewClienteResponse(m), nil
}

func (s *clienteService) Actualizar(ctx context.Context, id int64, req dto.ClienteRequest) (dto.ClienteResponse, error) {
	if err := identifier.ValidateNumericUpdate(clienteEntity, id, req.ID); err != nil {
		return dto.ClienteResponse{}, err
	}
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return dto.ClienteResponse{}, err
	}
	if !existe {
		return dto.ClienteResponse{}, apierror.IDNotFound(clienteEntity)
	}
	m := req.ToModel()
	if err := s.repo.Actualizar(ctx, m); err != nil {
		return dto.ClienteResponse{}, constraintError(clienteEntity, err)
	}
	return dto.NewClienteResponse(m), nil
}

func (s *clienteService) ActualizarParcial(ctx context.Context, id int64, req dto.ClientePatchRequest) (dto.ClienteResponse, error) {
	if err := identifier.ValidateNumericUpdate(clienteEntity, id, req.ID); err != nil {
		return dto.ClienteResponse{}, err
	}
	existing, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.ClienteResponse{}, apierror.IDNotFound(clienteEntity)
		}
		return dto.ClienteResponse{}, err
	}
	req.ApplyTo(existing)
	if err := s.repo.Actualizar(ctx, existing); err != nil {
		return dto.ClienteResponse{}, constraintError(clienteEntity, err)
	}
	return dto.NewClienteResponse(existing), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(list))
	for i := range list {
		result = append(result, dto.NewClienteResponse(&list[i]))
	}
	return result, nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id int64) (dto.ClienteResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.ClienteResponse{}, apierror.NotFound(clienteEntity)
		}
		return dto.ClienteResponse{}, err
	}
	return dto.NewClienteResponse(m), nil
}

func (s *clienteService) Eliminar(ctx context.Context, id int64) error {
	return s.repo.Eliminar(ctx, id)
}
