package service

import (
	"context"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/identifier"
	"github.com/HenrySago1/Restaurantesw2/internal/model"
	"github.com/HenrySago1/Restaurantesw2/internal/repository"
)

const insumoEntity = "insumo"

type InsumoService interface {
	Crear(ctx context.Context, req dto.InsumoRequest) (dto.InsumoResponse, error)
	Actualizar(ctx context.Context, id string, req dto.InsumoRequest) (dto.InsumoResponse, error)
	ActualizarParcial(ctx context.Context, id string, req dto.InsumoPatchRequest) (dto.InsumoResponse, error)
	Listar(ctx context.Context) ([]dto.InsumoResponse, error)
	ObtenerPorID(ctx context.Context, id string) (dto.InsumoResponse, error)
	Eliminar(ctx context.Context, id string) error
}

type insumoService struct {
	repo   repository.InsumoRepository
	platos repository.PlatoRepository
	cache  PlatoCache
}

// NewInsumoService wires the insumo CRUD. Insumos surface inside the eager
// plato listing, so their writes flush the plato cache.
func NewInsumoService(repo repository.InsumoRepository, platos repository.PlatoRepository, cache PlatoCache) InsumoService {
	return &insumoService{repo: repo, platos: platos, cache: cache}
}

func (s *insumoService) invalidarPlatos(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidar(ctx)
	}
}

func (s *insumoService) vincularPlato(ctx context.Context, m *model.Insumo, ref *dto.DocumentRef) error {
	if ref == nil {
		return nil
	}
	p, err := s.platos.ObtenerPorID(ctx, ref.ID, false)
	if err != nil {
		if esNoEncontrado(err) {
			return apierror.Constraint(insumoEntity, "referenced plato does not exist")
		}
		return err
	}
	m.SetPlato(p)
	return nil
}

func (s *insumoService) Crear(ctx context.Context, req dto.InsumoRequest) (dto.InsumoResponse, error) {
	if err := identifier.ValidateStringCreate(insumoEntity, req.ID); err != nil {
		return dto.InsumoResponse{}, err
	}
	m := req.ToModel()
	if err := s.vincularPlato(ctx, m, req.Plato); err != nil {
		return dto.InsumoResponse{}, err
	}
	if err := s.repo.Crear(ctx, m); err != nil {
		return dto.InsumoResponse{}, constraintError(insumoEntity, err)
	}
	s.invalidarPlatos(ctx)
	return dto.NewInsumoResponse(m), nil
}

func (s *insumoService) Actualizar(ctx context.Context, id string, req dto.InsumoRequest) (dto.InsumoResponse, error) {
	if err := identifier.ValidateStringUpdate(insumoEntity, id, req.ID); err != nil {
		return dto.InsumoResponse{}, err
	}
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return dto.InsumoResponse{}, err
	}
	if !existe {
		return dto.InsumoResponse{}, apierror.IDNotFound(insumoEntity)
	}
	m := req.ToModel()
	if err := s.vincularPlato(ctx, m, req.Plato); err != nil {
		return dto.InsumoResponse{}, err
	}
	if err := s.repo.Actualizar(ctx, m); err != nil {
		return dto.InsumoResponse{}, constraintError(insumoEntity, err)
	}
	s.invalidarPlatos(ctx)
	return dto.NewInsumoResponse(m), nil
}

func (s *insumoService) ActualizarParcial(ctx context.Context, id string, req dto.InsumoPatchRequest) (dto.InsumoResponse, error) {
	if err := identifier.ValidateStringUpdate(insumoEntity, id, req.ID); err != nil {
		return dto.InsumoResponse{}, err
	}
	existing, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.InsumoResponse{}, apierror.IDNotFound(insumoEntity)
		}
		return dto.InsumoResponse{}, err
	}
	req.ApplyTo(existing)
	if err := s.vincularPlato(ctx, existing, req.Plato); err != nil {
		return dto.InsumoResponse{}, err
	}
	if err := s.repo.Actualizar(ctx, existing); err != nil {
		return dto.InsumoResponse{}, constraintError(insumoEntity, err)
	}
	s.invalidarPlatos(ctx)
	return dto.NewInsumoResponse(existing), nil
}

func (s *insumoService) Listar(ctx context.Context) ([]dto.InsumoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InsumoResponse, 0, len(list))
	for i := range list {
		result = append(result, dto.NewInsumoResponse(&list[i]))
	}
	return result, nil
}

func (s *insumoService) ObtenerPorID(ctx context.Context, id string) (dto.InsumoResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.InsumoResponse{}, apierror.NotFound(insumoEntity)
		}
		return dto.InsumoResponse{}, err
	}
	return dto.NewInsumoResponse(m), nil
}

func (s *insumoService) Eliminar(ctx context.Context, id string) error {
	if err := s.repo.Eliminar(ctx, id); err != nil {
		return err
	}
	s.invalidarPlatos(ctx)
	return nil
}
