package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/model"
)

// ── In-memory ClienteRepository stub ─────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[int64]*model.Cliente
	nextID   int64
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[int64]*model.Cliente), nextID: 1}
}

func (r *stubClienteRepo) Crear(_ context.Context, c *model.Cliente) error {
	if c.ID == 0 {
		c.ID = r.nextID
		r.nextID++
	}
	cloned := *c
	r.clientes[c.ID] = &cloned
	return nil
}

func (r *stubClienteRepo) Listar(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) ObtenerPorID(_ context.Context, id int64) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *c
	return &cloned, nil
}

func (r *stubClienteRepo) Existe(_ context.Context, id int64) (bool, error) {
	_, ok := r.clientes[id]
	return ok, nil
}

func (r *stubClienteRepo) Actualizar(_ context.Context, c *model.Cliente) error {
	cloned := *c
	r.clientes[c.ID] = &cloned
	return nil
}

func (r *stubClienteRepo) Eliminar(_ context.Context, id int64) error {
	delete(r.clientes, id)
	return nil
}

func (r *stubClienteRepo) Contar(_ context.Context) (int64, error) {
	return int64(len(r.clientes)), nil
}

func strPtr(s string) *string { return &s }

// ── Tests ────────────────────────────────────────────────────────────────────

func TestClienteCrearAsignaID(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	resp, err := svc.Crear(context.Background(), dto.ClienteRequest{Nombre: "Ana", Apellido: "Ruiz"})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Ana", resp.Nombre)
}

func TestClienteCrearRechazaIDPresente(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	_, err := svc.Crear(context.Background(), dto.ClienteRequest{ID: 5, Nombre: "Ana", Apellido: "Ruiz"})
	var alert *apierror.AlertError
	require.ErrorAs(t, err, &alert)
	assert.Equal(t, "idexists", alert.ErrorKey)
	assert.Equal(t, 400, alert.Status)
	assert.Equal(t, "A new cliente cannot already have an ID", alert.Detail)
}

func TestClienteActualizarSinIDEnCuerpo(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	_, err := svc.Actualizar(context.Background(), 3, dto.ClienteRequest{Nombre: "Ana", Apellido: "Ruiz"})
	var alert *apierror.AlertError
	require.ErrorAs(t, err, &alert)
	assert.Equal(t, "idnull", alert.ErrorKey)
}

func TestClienteActualizarIDDiscrepante(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	_, err := svc.Actualizar(context.Background(), 3, dto.ClienteRequest{ID: 4, Nombre: "Ana", Apellido: "Ruiz"})
	var alert *apierror.AlertError
	require.ErrorAs(t, err, &alert)
	assert.Equal(t, "idinvalid", alert.ErrorKey)
}

func TestClienteActualizarInexistente(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	_, err := svc.Actualizar(context.Background(), 3, dto.ClienteRequest{ID: 3, Nombre: "Ana", Apellido: "Ruiz"})
	var alert *apierror.AlertError
	require.ErrorAs(t, err, &alert)
	assert.Equal(t, "idnotfound", alert.ErrorKey)
	assert.Equal(t, 400, alert.Status)
}

func TestClienteActualizarReemplazaTodo(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	created, err := svc.Crear(context.Background(), dto.ClienteRequest{
		Nombre: "Ana", Apellido: "Ruiz", Telefono: strPtr("555-0100"),
	})
	require.NoError(t, err)

	// PUT omits telefono: the stored record loses it (full replacement).
	resp, err := svc.Actualizar(context.Background(), created.ID, dto.ClienteRequest{
		ID: created.ID, Nombre: "Ana Maria", Apellido: "Ruiz",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", resp.Nombre)
	assert.Nil(t, resp.Telefono)
}

func TestClienteActualizarParcialNoDestructivo(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	created, err := svc.Crear(context.Background(), dto.ClienteRequest{
		Nombre: "Ana", Apellido: "Ruiz", Email: strPtr("ana@example.com"), Telefono: strPtr("555-0100"),
	})
	require.NoError(t, err)

	// PATCH carries only telefono: every other field survives.
	resp, err := svc.ActualizarParcial(context.Background(), created.ID, dto.ClientePatchRequest{
		ID: created.ID, Telefono: strPtr("555-0199"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.Nombre)
	require.NotNil(t, resp.Email)
	assert.Equal(t, "ana@example.com", *resp.Email)
	require.NotNil(t, resp.Telefono)
	assert.Equal(t, "555-0199", *resp.Telefono)
}

func TestClienteActualizarParcialInexistente(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	_, err := svc.ActualizarParcial(context.Background(), 9, dto.ClientePatchRequest{ID: 9, Nombre: strPtr("X")})
	var alert *apierror.AlertError
	require.ErrorAs(t, err, &alert)
	assert.Equal(t, "idnotfound", alert.ErrorKey)
}

func TestClienteObtenerInexistenteDa404(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	_, err := svc.ObtenerPorID(context.Background(), 42)
	var alert *apierror.AlertError
	require.ErrorAs(t, err, &alert)
	assert.Equal(t, 404, alert.Status)
	assert.Equal(t, "idnotfound", alert.ErrorKey)
}

func TestClienteEliminarEsIdempotente(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	created, err := svc.Crear(context.Background(), dto.ClienteRequest{Nombre: "Ana", Apellido: "Ruiz"})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), created.ID))
	// Second delete of the same id is still a no-op success.
	require.NoError(t, svc.Eliminar(context.Background(), created.ID))
}
