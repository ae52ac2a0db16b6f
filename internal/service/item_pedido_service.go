package service

import (
	"context"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/identifier"
	"github.com/HenrySago1/Restaurantesw2/internal/model"
	"github.com/HenrySago1/Restaurantesw2/internal/repository"
)

const itemPedidoEntity = "itemPedido"

type ItemPedidoService interface {
	Crear(ctx context.Context, req dto.ItemPedidoRequest) (dto.ItemPedidoResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ItemPedidoRequest) (dto.ItemPedidoResponse, error)
	ActualizarParcial(ctx context.Context, id int64, req dto.ItemPedidoPatchRequest) (dto.ItemPedidoResponse, error)
	Listar(ctx context.Context) ([]dto.ItemPedidoResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (dto.ItemPedidoResponse, error)
	Eliminar(ctx context.Context, id int64) error
}

type itemPedidoService struct {
	repo    repository.ItemPedidoRepository
	pedidos repository.PedidoRepository
}

func NewItemPedidoService(repo repository.ItemPedidoRepository, pedidos repository.PedidoRepository) ItemPedidoService {
	return &itemPedidoService{repo: repo, pedidos: pedidos}
}

func (s *itemPedidoService) vincularPedido(ctx context.Context, m *model.ItemPedido, ref *dto.EntityRef) error {
	if ref == nil {
		return nil
	}
	p, err := s.pedidos.ObtenerPorID(ctx, ref.ID)
	if err != nil {
		if esNoEncontrado(err) {
			return apierror.Constraint(itemPedidoEntity, "referenced pedido does not exist")
		}
		return err
	}
	m.SetPedido(p)
	return nil
}

func (s *itemPedidoService) Crear(ctx context.Context, req dto.ItemPedidoRequest) (dto.ItemPedidoResponse, error) {
	if err := identifier.ValidateNumericCreate(itemPedidoEntity, req.ID); err != nil {
		return dto.ItemPedidoResponse{}, err
	}
	m := req.ToModel()
	if err := s.vincularPedido(ctx, m, req.Pedido); err != nil {
		return dto.ItemPedidoResponse{}, err
	}
	if err := s.repo.Crear(ctx, m); err != nil {
		return dto.ItemPedidoResponse{}, constraintError(itemPedidoEntity, err)
	}
	return dto.NewItemPedidoResponse(m), nil
}

func (s *itemPedidoService) Actualizar(ctx context.Context, id int64, req dto.ItemPedidoRequest) (dto.ItemPedidoResponse, error) {
	if err := identifier.ValidateNumericUpdate(itemPedidoEntity, id, req.ID); err != nil {
		return dto.ItemPedidoResponse{}, err
	}
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return dto.ItemPedidoResponse{}, err
	}
	if !existe {
		return dto.ItemPedidoResponse{}, apierror.IDNotFound(itemPedidoEntity)
	}
	m := req.ToModel()
	if err := s.vincularPedido(ctx, m, req.Pedido); err != nil {
		return dto.ItemPedidoResponse{}, err
	}
	if err := s.repo.Actualizar(ctx, m); err != nil {
		return dto.ItemPedidoResponse{}, constraintError(itemPedidoEntity, err)
	}
	return dto.NewItemPedidoResponse(m), nil
}

func (s *itemPedidoService) ActualizarParcial(ctx context.Context, id int64, req dto.ItemPedidoPatchRequest) (dto.ItemPedidoResponse, error) {
	if err := identifier.ValidateNumericUpdate(itemPedidoEntity, id, req.ID); err != nil {
		return dto.ItemPedidoResponse{}, err
	}
	existing, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.ItemPedidoResponse{}, apierror.IDNotFound(itemPedidoEntity)
		}
		return dto.ItemPedidoResponse{}, err
	}
	req.ApplyTo(existing)
	if err := s.vincularPedido(ctx, existing, req.Pedido); err != nil {
		return dto.ItemPedidoResponse{}, err
	}
	if err := s.repo.Actualizar(ctx, existing); err != nil {
		return dto.ItemPedidoResponse{}, constraintError(itemPedidoEntity, err)
	}
	return dto.NewItemPedidoResponse(existing), nil
}

func (s *itemPedidoService) Listar(ctx context.Context) ([]dto.ItemPedidoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ItemPedidoResponse, 0, len(list))
	for i := range list {
		result = append(result, dto.NewItemPedidoResponse(&list[i]))
	}
	return result, nil
}

func (s *itemPedidoService) ObtenerPorID(ctx context.Context, id int64) (dto.ItemPedidoResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.ItemPedidoResponse{}, apierror.NotFound(itemPedidoEntity)
		}
		return dto.ItemPedidoResponse{}, err
	}
	return dto.NewItemPedidoResponse(m), nil
}

func (s *itemPedidoService) Eliminar(ctx context.Context, id int64) error {
	return s.repo.Eliminar(ctx, id)
}
