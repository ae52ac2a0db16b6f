package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

type stubPedidoRepo struct {
	pedidos map[int64]*model.Pedido
	nextID  int64
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[int64]*model.Pedido), nextID: 1}
}

func (r *stubPedidoRepo) Crear(_ context.Context, m *model.Pedido) error {
	if m.ID == 0 {
		m.ID = r.nextID
		r.nextID++
	}
	cloned := *m
	r.pedidos[m.ID] = &cloned
	return nil
}

func (r *stubPedidoRepo) Listar(_ context.Context) ([]model.Pedido, error) {
	out := make([]model.Pedido, 0, len(r.pedidos))
	for _, p := range r.pedidos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPedidoRepo) ObtenerPorID(_ context.Context, id int64) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *p
	return &cloned, nil
}

func (r *stubPedidoRepo) Existe(_ context.Context, id int64) (bool, error) {
	_, ok := r.pedidos[id]
	return ok, nil
}

func (r *stubPedidoRepo) Actualizar(_ context.Context, m *model.Pedido) error {
	cloned := *m
	r.pedidos[m.ID] = &cloned
	return nil
}

func (r *stubPedidoRepo) Eliminar(_ context.Context, id int64) error {
	delete(r.pedidos, id)
	return nil
}

func (r *stubPedidoRepo) Contar(_ context.Context) (int64, error) {
	return int64(len(r.pedidos)), nil
}

type stubMesaRepo struct {
	mesas map[int64]*model.Mesa
}

func (r *stubMesaRepo) Crear(_ context.Context, m *model.Mesa) error { return nil }
func (r *stubMesaRepo) Listar(_ context.Context) ([]model.Mesa, error) {
	return nil, nil
}
func (r *stubMesaRepo) ObtenerPorID(_ context.Context, id int64) (*model.Mesa, error) {
	m, ok := r.mesas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}
func (r *stubMesaRepo) Existe(_ context.Context, id int64) (bool, error) {
	_, ok := r.mesas[id]
	return ok, nil
}
func (r *stubMesaRepo) Actualizar(_ context.Context, m *model.Mesa) error { return nil }
func (r *stubMesaRepo) Eliminar(_ context.Context, id int64) error        { return nil }
func (r *stubMesaRepo) Contar(_ context.Context) (int64, error)           { return 0, nil }

func pedidoReq(facturaID *int64, mesaID *int64) dto.PedidoRequest {
	req := dto.PedidoRequest{
		FechaPedido: time.Date(2025, 3, 1, 21, 0, 0, 0, time.UTC),
		Estado:      model.PedidoPendiente,
	}
	if facturaID != nil {
		req.Factura = &dto.EntityRef{ID: *facturaID}
	}
	if mesaID != nil {
		req.Mesa = &dto.EntityRef{ID: *mesaID}
	}
	return req
}

func i64(v int64) *int64 { return &v }

func TestPedidoCrearExigeFactura(t *testing.T) {
	svc := NewPedidoService(newStubPedidoRepo(), newStubFacturaRepo(), &stubMesaRepo{})

	_, err := svc.Crear(context.Background(), pedidoReq(nil, nil))
	var alert *apierror.AlertError
	require.ErrorAs(t, err, &alert)
	assert.Equal(t, "constraintviolation", alert.ErrorKey)
}

func TestPedidoCrearRechazaFacturaInexistente(t *testing.T) {
	svc := NewPedidoService(newStubPedidoRepo(), newStubFacturaRepo(), &stubMesaRepo{})

	_, err := svc.Crear(context.Background(), pedidoReq(i64(99), nil))
	var alert *apierror.AlertError
	require.ErrorAs(t, err, &alert)
	assert.Equal(t, "constraintviolation", alert.ErrorKey)
}

func TestPedidoCrearVinculaFacturaYMesa(t *testing.T) {
	facturas := newStubFacturaRepo()
	fsvc := NewFacturaService(facturas)
	f, err := fsvc.Crear(context.Background(), facturaReq(0))
	require.NoError(t, err)

	mesas := &stubMesaRepo{mesas: map[int64]*model.Mesa{
		4: {ID: 4, Numero: 4, Capacidad: 2, Estado: model.MesaLibre},
	}}
	svc := NewPedidoService(newStubPedidoRepo(), facturas, mesas)

	resp, err := svc.Crear(context.Background(), pedidoReq(i64(f.ID), i64(4)))
	require.NoError(t, err)
	require.NotNil(t, resp.Factura)
	assert.Equal(t, f.ID, resp.Factura.ID)
	require.NotNil(t, resp.Mesa)
	assert.Equal(t, 4, resp.Mesa.Numero)
}

func TestPedidoActualizarInexistente(t *testing.T) {
	facturas := newStubFacturaRepo()
	svc := NewPedidoService(newStubPedidoRepo(), facturas, &stubMesaRepo{})

	_, err := svc.Actualizar(context.Background(), 7, func() dto.PedidoRequest {
		r := pedidoReq(i64(1), nil)
		r.ID = 7
		return r
	}())
	var alert *apierror.AlertError
	require.ErrorAs(t, err, &alert)
	assert.Equal(t, "idnotfound", alert.ErrorKey)
}
