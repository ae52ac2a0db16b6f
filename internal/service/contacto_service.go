package service

import (
	"context"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/identifier"
	"github.com/HenrySago1/Restaurantesw2/internal/model"
	"github.com/HenrySago1/Restaurantesw2/internal/repository"
)

const contactoEntity = "contacto"

// ContactoService defines business operations for client contact log entries.
type ContactoService interface {
	Crear(ctx context.Context, req dto.ContactoRequest) (dto.ContactoResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ContactoRequest) (dto.ContactoResponse, error)
	ActualizarParcial(ctx context.Context, id int64, req dto.ContactoPatchRequest) (dto.ContactoResponse, error)
	Listar(ctx context.Context) ([]dto.ContactoResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (dto.ContactoResponse, error)
	Eliminar(ctx context.Context, id int64) error
}

type contactoService struct {
	repo     repository.ContactoRepository
	clientes repository.ClienteRepository
}

func NewContactoService(repo repository.ContactoRepository, clientes repository.ClienteRepository) ContactoService {
	return &contactoService{repo: repo, clientes: clientes}
}

func (s *contactoService) vincularCliente(ctx context.Context, m *model.Contacto, ref *dto.EntityRef) error {
	if ref == nil {
		return nil
	}
	cliente, err := s.clientes.ObtenerPorID(ctx, ref.ID)
	if err != nil {
		if esNoEncontrado(err) {
			return apierror.Constraint(contactoEntity, "referenced cliente does not exist")
		}
		return err
	}
	m.SetCliente(cliente)
	return nil
}

func (s *contactoService) Crear(ctx context.Context, req dto.ContactoRequest) (dto.ContactoResponse, error) {
	if err := identifier.ValidateNumericCreate(contactoEntity, req.ID); err != nil {
		return dto.ContactoResponse{}, err
	}
	m := req.ToModel()
	if err := s.vincularCliente(ctx, m, req.Cliente); err != nil {
		return dto.ContactoResponse{}, err
	}
	if err := s.repo.Crear(ctx, m); err != nil {
		return dto.ContactoResponse{}, constraintError(contactoEntity, err)
	}
	return dto.NewContactoResponse(m), nil
}

func (s *contactoService) Actualizar(ctx context.Context, id int64, req dto.ContactoRequest) (dto.ContactoResponse, error) {
	if err := identifier.ValidateNumericUpdate(contactoEntity, id, req.ID); err != nil {
		return dto.ContactoResponse{}, err
	}
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return dto.ContactoResponse{}, err
	}
	if !existe {
		return dto.ContactoResponse{}, apierror.IDNotFound(contactoEntity)
	}
	m := req.ToModel()
	if err := s.vincularCliente(ctx, m, req.Cliente); err != nil {
		return dto.ContactoResponse{}, err
	}
	if err := s.repo.Actualizar(ctx, m); err != nil {
		return dto.ContactoResponse{}, constraintError(contactoEntity, err)
	}
	return dto.NewContactoResponse(m), nil
}

func (s *contactoService) ActualizarParcial(ctx context.Context, id int64, req dto.ContactoPatchRequest) (dto.ContactoResponse, error) {
	if err := identifier.ValidateNumericUpdate(contactoEntity, id, req.ID); err != nil {
		return dto.ContactoResponse{}, err
	}
	existing, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.ContactoResponse{}, apierror.IDNotFound(contactoEntity)
		}
		return dto.ContactoResponse{}, err
	}
	req.ApplyTo(existing)
	if err := s.vincularCliente(ctx, existing, req.Cliente); err != nil {
		return dto.ContactoResponse{}, err
	}
	if err := s.repo.Actualizar(ctx, existing); err != nil {
		return dto.ContactoResponse{}, constraintError(contactoEntity, err)
	}
	return dto.NewContactoResponse(existing), nil
}

func (s *contactoService) Listar(ctx context.Context) ([]dto.ContactoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ContactoResponse, 0, len(list))
	for i := range list {
		result = append(result, dto.NewContactoResponse(&list[i]))
	}
	return result, nil
}

func (s *contactoService) ObtenerPorID(ctx context.Context, id int64) (dto.ContactoResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.ContactoResponse{}, apierror.NotFound(contactoEntity)
		}
		return dto.ContactoResponse{}, err
	}
	return dto.NewContactoResponse(m), nil
}

func (s *contactoService) Eliminar(ctx context.Context, id int64) error {
	return s.repo.Eliminar(ctx, id)
}
