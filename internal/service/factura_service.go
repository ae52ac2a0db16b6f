package service

import (
	"context"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/identifier"
	"github.com/HenrySago1/Restaurantesw2/internal/repository"
)

const facturaEntity = "factura"

// FiltroPedidoIsNull restricts a listing to invoices not yet attached to an
// order, so the order form can offer only the available ones.
const FiltroPedidoIsNull = "pedido-is-null"

type FacturaService interface {
	Crear(ctx context.Context, req dto.FacturaRequest) (dto.FacturaResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.FacturaRequest) (dto.FacturaResponse, error)
	ActualizarParcial(ctx context.Context, id int64, req dto.FacturaPatchRequest) (dto.FacturaResponse, error)
	Listar(ctx context.Context, filtro string) ([]dto.FacturaResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (dto.FacturaResponse, error)
	Eliminar(ctx context.Context, id int64) error
}

type facturaService struct {
	repo repository.FacturaRepository
}

func NewFacturaService(repo repository.FacturaRepository) FacturaService {
	return &facturaService{repo: repo}
}

func (s *facturaService) Crear(ctx context.Context, req dto.FacturaRequest) (dto.FacturaResponse, error) {
	if err := identifier.ValidateNumericCreate(facturaEntity, req.ID); err != nil {
		return dto.FacturaResponse{}, err
	}
	m := req.ToModel()
	if err := s.repo.Crear(ctx, m); err != nil {
		return dto.FacturaResponse{}, constraintError(facturaEntity, err)
	}
	return dto.NewFacturaResponse(m), nil
}

func (s *facturaService) Actualizar(ctx context.Context, id int64, req dto.FacturaRequest) (dto.FacturaResponse, error) {
	if err := identifier.ValidateNumericUpdate(facturaEntity, id, req.ID); err != nil {
		return dto.FacturaResponse{}, err
	}
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return dto.FacturaResponse{}, err
	}
	if !existe {
		return dto.FacturaResponse{}, apierror.IDNotFound(facturaEntity)
	}
	m := req.ToModel()
	if err := s.repo.Actualizar(ctx, m); err != nil {
		return dto.FacturaResponse{}, constraintError(facturaEntity, err)
	}
	return dto.NewFacturaResponse(m), nil
}

func (s *facturaService) ActualizarParcial(ctx context.Context, id int64, req dto.FacturaPatchRequest) (dto.FacturaResponse, error) {
	if err := identifier.ValidateNumericUpdate(facturaEntity, id, req.ID); err != nil {
		return dto.FacturaResponse{}, err
	}
	existing, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.FacturaResponse{}, apierror.IDNotFound(facturaEntity)
		}
		return dto.FacturaResponse{}, err
	}
	req.ApplyTo(existing)
	if err := s.repo.Actualizar(ctx, existing); err != nil {
		return dto.FacturaResponse{}, constraintError(facturaEntity, err)
	}
	return dto.NewFacturaResponse(existing), nil
}

func (s *facturaService) Listar(ctx context.Context, filtro string) ([]dto.FacturaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.FacturaResponse, 0, len(list))
	for i := range list {
		if filtro == FiltroPedidoIsNull && list[i].Pedido != nil {
			continue
		}
		result = append(result, dto.NewFacturaResponse(&list[i]))
	}
	return result, nil
}

func (s *facturaService) ObtenerPorID(ctx context.Context, id int64) (dto.FacturaResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return dto.FacturaResponse{}, apierror.NotFound(facturaEntity)
		}
		return dto.FacturaResponse{}, err
	}
	return dto.NewFacturaResponse(m), nil
}

func (s *facturaService) Eliminar(ctx context.Context, id int64) error {
	return s.repo.Eliminar(ctx, id)
}
