package service

import (
	"context"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/identifier"
	"github.com/HenrySago1/Restaurantesw2/internal/model"
	"github.com/HenrySago1/Restaurantesw2/internal/repository"
)

const platoEntity = "plato"

// PlatoService backs the menu catalog. Listings go through a read-through
// cache keyed by the eager flag; any write flushes both keys.
type PlatoService interface {
	Crear(ctx context.Context, req dto.PlatoRequest) (dto.PlatoResponse, error)
	Actualizar(ctx context.Context, id string, req dto.PlatoRequest) (dto.PlatoResponse, error)
	ActualizarParcial(ctx context.Context, id string, req dto.PlatoPatchRequest) (dto.PlatoResponse, error)
	Listar(ctx context.Context, eager bool) ([]dto.PlatoResponse, error)
	ObtenerPorID(ctx context.Context, id string) (dto.PlatoResponse, error)
	Eliminar(ctx context.Context, id string) error
}

type platoService struct {
	repo       repository.PlatoRepository
	categorias repository.CategoriaRepository
	cache      PlatoCache
}

func NewPlatoService(repo repository.PlatoRepository, categorias repository.CategoriaRepository, cache PlatoCache) PlatoService {
	return &platoService{repo: repo, categorias: categorias, cache: cache}
}

func (s *platoService) invalidar(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidar(ctx)
	}
}

// vincularCategorias replaces the dish's category set with the referenced
// documents, keeping both sides of the link in step. Repeated refs to the
// same categoria collapse to one.
func (s *platoService) vincularCategorias(ctx context.Context, m *model.Plato, refs []dto.DocumentRef) error {
	if refs == nil {
		return nil
	}
	ids := make([]string, 0, len(refs))
	vistos := make(map[string]bool, len(refs))
	for _, r := range refs {
		if vistos[r.ID] {
			continue
		}
		vistos[r.ID] = true
		ids = append(ids, r.ID)
	}
	cats, err := s.categorias.ObtenerPorIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(cats) != len(ids) {
		return apierror.Constraint(platoEntity, "referenced categoria does not exist")
	}
	next := make([]*model.Categoria, 0, len(cats))
	for i := range cats {
		next = append(next, &cats[i])
	}
	m.SetCategorias(next)
	return nil
}

func (s *platoService) Crear(ctx context.Context, req dto.PlatoRequest) (dto.PlatoResponse, error) {
	if err := identifier.ValidateStringCreate(platoEntity, req.ID); err != nil {
		return dto.PlatoResponse{}, err
	}
	m := req.ToModel()
	if err := s.vincularCategorias(ctx, m, req.Categorias); err != nil {
		return dto.PlatoResponse{}, err
	}
	if err := s.repo.Crear(ctx, m); err != nil {
		return dto.PlatoResponse{}, constraintError(platoEntity, err)
	}
	s.invalidar(ctx)
	return dto.NewPlatoResponse(m), nil
}

func (s *platoService) Actualizar(ctx context.Context, id string, req dto.PlatoRequest) (dto.PlatoResponse, error) {
	if err := identifier.ValidateStringUpdate(platoEntity, id, req.ID); err != nil {
		return dto.PlatoResponse{}, err
	}
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return dto.PlatoResponse{}, err
	}
	if !existe {
		return dto.PlatoResponse{}, apierror.IDNotFound(platoEntity)
	}
	m := req.ToModel()
	if err := s.vincularCategorias(ctx, m, req.Categorias); err != nil {
		return dto.PlatoResponse{}, err
	}
	if err := s.repo.Actualizar(ctx, m); err != nil {
		return dto.PlatoResponse{}, constraintError(platoEntity, err)
	}
	s.invalidar(ctx)
	return dto.NewPlatoResponse(m), nil
}

func (s *platoService) ActualizarParcial(ctx context.Context, id string, req dto.PlatoPatchRequest) (dto.PlatoResponse, error) {
	if err := identifier.ValidateStringUpdate(platoEntity, id, req.ID); err != nil {
		return dto.PlatoResponse{}, err
	}
	existing, err := s.repo.ObtenerPorID(ctx, id, false)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.PlatoResponse{}, apierror.IDNotFound(platoEntity)
		}
		return dto.PlatoResponse{}, err
	}
	req.ApplyTo(existing)
	if err := s.vincularCategorias(ctx, existing, req.Categorias); err != nil {
		return dto.PlatoResponse{}, err
	}
	if err := s.repo.Actualizar(ctx, existing); err != nil {
		return dto.PlatoResponse{}, constraintError(platoEntity, err)
	}
	s.invalidar(ctx)
	return dto.NewPlatoResponse(existing), nil
}

func (s *platoService) Listar(ctx context.Context, eager bool) ([]dto.PlatoResponse, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Obtener(ctx, eager); ok {
			return cached, nil
		}
	}
	list, err := s.repo.Listar(ctx, eager)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PlatoResponse, 0, len(list))
	for i := range list {
		result = append(result, dto.NewPlatoResponse(&list[i]))
	}
	if s.cache != nil {
		s.cache.Guardar(ctx, eager, result)
	}
	return result, nil
}

func (s *platoService) ObtenerPorID(ctx context.Context, id string) (dto.PlatoResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id, true)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.PlatoResponse{}, apierror.NotFound(platoEntity)
		}
		return dto.PlatoResponse{}, err
	}
	return dto.NewPlatoResponse(m), nil
}

func (s *platoService) Eliminar(ctx context.Context, id string) error {
	if err := s.repo.Eliminar(ctx, id); err != nil {
		return err
	}
	s.invalidar(ctx)
	return nil
}
