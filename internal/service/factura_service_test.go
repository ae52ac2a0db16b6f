package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

type stubFacturaRepo struct {
	facturas map[int64]*model.Factura
	nextID   int64
}

func newStubFacturaRepo() *stubFacturaRepo {
	return &stubFacturaRepo{facturas: make(map[int64]*model.Factura), nextID: 1}
}

func (r *stubFacturaRepo) Crear(_ context.Context, m *model.Factura) error {
	if m.ID == 0 {
		m.ID = r.nextID
		r.nextID++
	}
	cloned := *m
	r.facturas[m.ID] = &cloned
	return nil
}

func (r *stubFacturaRepo) Listar(_ context.Context) ([]model.Factura, error) {
	out := make([]model.Factura, 0, len(r.facturas))
	for _, f := range r.facturas {
		out = append(out, *f)
	}
	return out, nil
}

func (r *stubFacturaRepo) ObtenerPorID(_ context.Context, id int64) (*model.Factura, error) {
	f, ok := r.facturas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *f
	return &cloned, nil
}

func (r *stubFacturaRepo) Existe(_ context.Context, id int64) (bool, error) {
	_, ok := r.facturas[id]
	return ok, nil
}

func (r *stubFacturaRepo) Actualizar(_ context.Context, m *model.Factura) error {
	cloned := *m
	r.facturas[m.ID] = &cloned
	return nil
}

func (r *stubFacturaRepo) Eliminar(_ context.Context, id int64) error {
	delete(r.facturas, id)
	return nil
}

func (r *stubFacturaRepo) Contar(_ context.Context) (int64, error) {
	return int64(len(r.facturas)), nil
}

func facturaReq(id int64) dto.FacturaRequest {
	return dto.FacturaRequest{
		ID:           id,
		FechaFactura: time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC),
		MontoTotal:   decimal.NewFromInt(150),
		MetodoPago:   model.PagoEfectivo,
	}
}

func TestFacturaListarSinFiltroDevuelveTodas(t *testing.T) {
	repo := newStubFacturaRepo()
	svc := NewFacturaService(repo)
	_, err := svc.Crear(context.Background(), facturaReq(0))
	require.NoError(t, err)
	_, err = svc.Crear(context.Background(), facturaReq(0))
	require.NoError(t, err)

	list, err := svc.Listar(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestFacturaListarFiltraLasYaAsignadas(t *testing.T) {
	repo := newStubFacturaRepo()
	svc := NewFacturaService(repo)
	libre, err := svc.Crear(context.Background(), facturaReq(0))
	require.NoError(t, err)
	ocupada, err := svc.Crear(context.Background(), facturaReq(0))
	require.NoError(t, err)

	// Attach an order to the second invoice directly in the store.
	f := repo.facturas[ocupada.ID]
	f.Pedido = &model.Pedido{ID: 9}

	list, err := svc.Listar(context.Background(), FiltroPedidoIsNull)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, libre.ID, list[0].ID)
}

func TestFacturaListarFiltroDesconocidoNoFiltra(t *testing.T) {
	repo := newStubFacturaRepo()
	svc := NewFacturaService(repo)
	_, err := svc.Crear(context.Background(), facturaReq(0))
	require.NoError(t, err)

	list, err := svc.Listar(context.Background(), "otra-cosa")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
