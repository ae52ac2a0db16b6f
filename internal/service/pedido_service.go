package service

import (
	"context"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/identifier"
	"github.com/HenrySago1/Restaurantesw2/internal/model"
	"github.com/HenrySago1/Restaurantesw2/internal/repository"
)

const pedidoEntity = "pedido"

// PedidoService defines business operations for orders. Every order must hold
// its own invoice: the factura link is wired through the one-to-one engine and
// enforced again by the NOT NULL + unique column at save time.
type PedidoService interface {
	Crear(ctx context.Context, req dto.PedidoRequest) (dto.PedidoResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.PedidoRequest) (dto.PedidoResponse, error)
	ActualizarParcial(ctx context.Context, id int64, req dto.PedidoPatchRequest) (dto.PedidoResponse, error)
	Listar(ctx context.Context) ([]dto.PedidoResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (dto.PedidoResponse, error)
	Eliminar(ctx context.Context, id int64) error
}

type pedidoService struct {
	repo     repository.PedidoRepository
	facturas repository.FacturaRepository
	mesas    repository.MesaRepository
}

func NewPedidoService(repo repository.PedidoRepository, facturas repository.FacturaRepository, mesas repository.MesaRepository) PedidoService {
	return &pedidoService{repo: repo, facturas: facturas, mesas: mesas}
}

func (s *pedidoService) vincular(ctx context.Context, m *model.Pedido, factura, mesa *dto.EntityRef) error {
	if factura != nil {
		f, err := s.facturas.ObtenerPorID(ctx, factura.ID)
		if err != nil {
			if esNoEncontrado(err) {
				return apierror.Constraint(pedidoEntity, "referenced factura does not exist")
			}
			return err
		}
		m.SetFactura(f)
	}
	if m.FacturaID == nil {
		return apierror.Constraint(pedidoEntity, "pedido requires a factura")
	}
	if mesa != nil {
		t, err := s.mesas.ObtenerPorID(ctx, mesa.ID)
		if err != nil {
			if esNoEncontrado(err) {
				return apierror.Constraint(pedidoEntity, "referenced mesa does not exist")
			}
			return err
		}
		m.SetMesa(t)
	}
	return nil
}

func (s *pedidoService) Crear(ctx context.Context, req dto.PedidoRequest) (dto.PedidoResponse, error) {
	if err := identifier.ValidateNumericCreate(pedidoEntity, req.ID); err != nil {
		return dto.PedidoResponse{}, err
	}
	m := req.ToModel()
	if err := s.vincular(ctx, m, req.Factura, req.Mesa); err != nil {
		return dto.PedidoResponse{}, err
	}
	if err := s.repo.Crear(ctx, m); err != nil {
		return dto.PedidoResponse{}, constraintError(pedidoEntity, err)
	}
	return dto.NewPedidoResponse(m), nil
}

func (s *pedidoService) Actualizar(ctx context.Context, id int64, req dto.PedidoRequest) (dto.PedidoResponse, error) {
	if err := identifier.ValidateNumericUpdate(pedidoEntity, id, req.ID); err != nil {
		return dto.PedidoResponse{}, err
	}
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return dto.PedidoResponse{}, err
	}
	if !existe {
		return dto.PedidoResponse{}, apierror.IDNotFound(pedidoEntity)
	}
	m := req.ToModel()
	if err := s.vincular(ctx, m, req.Factura, req.Mesa); err != nil {
		return dto.PedidoResponse{}, err
	}
	if err := s.repo.Actualizar(ctx, m); err != nil {
		return dto.PedidoResponse{}, constraintError(pedidoEntity, err)
	}
	return dto.NewPedidoResponse(m), nil
}

func (s *pedidoService) ActualizarParcial(ctx context.Context, id int64, req dto.PedidoPatchRequest) (dto.PedidoResponse, error) {
	if err := identifier.ValidateNumericUpdate(pedidoEntity, id, req.ID); err != nil {
		return dto.PedidoResponse{}, err
	}
	existing, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.PedidoResponse{}, apierror.IDNotFound(pedidoEntity)
		}
		return dto.PedidoResponse{}, err
	}
	req.ApplyTo(existing)
	if err := s.vincular(ctx, existing, req.Factura, req.Mesa); err != nil {
		return dto.PedidoResponse{}, err
	}
	if err := s.repo.Actualizar(ctx, existing); err != nil {
		return dto.PedidoResponse{}, constraintError(pedidoEntity, err)
	}
	return dto.NewPedidoResponse(existing), nil
}

func (s *pedidoService) Listar(ctx context.Context) ([]dto.PedidoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PedidoResponse, 0, len(list))
	for i := range list {
		result = append(result, dto.NewPedidoResponse(&list[i]))
	}
	return result, nil
}

func (s *pedidoService) ObtenerPorID(ctx context.Context, id int64) (dto.PedidoResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.PedidoResponse{}, apierror.NotFound(pedidoEntity)
		}
		return dto.PedidoResponse{}, err
	}
	return dto.NewPedidoResponse(m), nil
}

func (s *pedidoService) Eliminar(ctx context.Context, id int64) error {
	return s.repo.Eliminar(ctx, id)
}
