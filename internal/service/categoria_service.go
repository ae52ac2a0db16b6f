package service

import (
	"context"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/identifier"
	"github.com/HenrySago1/Restaurantesw2/internal/repository"
)

const categoriaEntity = "categoria"

type CategoriaService interface {
	Crear(ctx context.Context, req dto.CategoriaRequest) (dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id string, req dto.CategoriaRequest) (dto.CategoriaResponse, error)
	ActualizarParcial(ctx context.Context, id string, req dto.CategoriaPatchRequest) (dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	ObtenerPorID(ctx context.Context, id string) (dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id string) error
}

type categoriaService struct {
	repo  repository.CategoriaRepository
	cache PlatoCache
}

// NewCategoriaService wires the categoria CRUD. The cache is the plato
// listing cache: the eager listing embeds categoria names, so categoria
// writes flush it.
func NewCategoriaService(repo repository.CategoriaRepository, cache PlatoCache) CategoriaService {
	return &categoriaService{repo: repo, cache: cache}
}

func (s *categoriaService) invalidarPlatos(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidar(ctx)
	}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CategoriaRequest) (dto.CategoriaResponse, error) {
	if err := identifier.ValidateStringCreate(categoriaEntity, req.ID); err != nil {
		return dto.CategoriaResponse{}, err
	}
	m := req.ToModel()
	if err := s.repo.Crear(ctx, m); err != nil {
		return dto.CategoriaResponse{}, constraintError(categoriaEntity, err)
	}
	s.invalidarPlatos(ctx)
	return dto.NewCategoriaResponse(m), nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id string, req dto.CategoriaRequest) (dto.CategoriaResponse, error) {
	if err := identifier.ValidateStringUpdate(categoriaEntity, id, req.ID); err != nil {
		return dto.CategoriaResponse{}, err
	}
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return dto.CategoriaResponse{}, err
	}
	if !existe {
		return dto.CategoriaResponse{}, apierror.IDNotFound(categoriaEntity)
	}
	m := req.ToModel()
	if err := s.repo.Actualizar(ctx, m); err != nil {
		return dto.CategoriaResponse{}, constraintError(categoriaEntity, err)
	}
	s.invalidarPlatos(ctx)
	return dto.NewCategoriaResponse(m), nil
}

func (s *categoriaService) ActualizarParcial(ctx context.Context, id string, req dto.CategoriaPatchRequest) (dto.CategoriaResponse, error) {
	if err := identifier.ValidateStringUpdate(categoriaEntity, id, req.ID); err != nil {
		return dto.CategoriaResponse{}, err
	}
	existing, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.CategoriaResponse{}, apierror.IDNotFound(categoriaEntity)
		}
		return dto.CategoriaResponse{}, err
	}
	req.ApplyTo(existing)
	if err := s.repo.Actualizar(ctx, existing); err != nil {
		return dto.CategoriaResponse{}, constraintError(categoriaEntity, err)
	}
	s.invalidarPlatos(ctx)
	return dto.NewCategoriaResponse(existing), nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoriaResponse, 0, len(list))
	for i := range list {
		result = append(result, dto.NewCategoriaResponse(&list[i]))
	}
	return result, nil
}

func (s *categoriaService) ObtenerPorID(ctx context.Context, id string) (dto.CategoriaResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.CategoriaResponse{}, apierror.NotFound(categoriaEntity)
		}
		return dto.CategoriaResponse{}, err
	}
	return dto.NewCategoriaResponse(m), nil
}

func (s *categoriaService) Eliminar(ctx context.Context, id string) error {
	if err := s.repo.Eliminar(ctx, id); err != nil {
		return err
	}
	s.invalidarPlatos(ctx)
	return nil
}
