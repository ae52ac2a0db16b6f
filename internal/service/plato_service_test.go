package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/identifier"
	"github.com/HenrySago1/Restaurantesw2/internal/model"
	"github.com/HenrySago1/Restaurantesw2/internal/repository"
)

// ── Document-store stubs ─────────────────────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[string]*model.Categoria
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[string]*model.Categoria)}
}

func (r *stubCategoriaRepo) Crear(_ context.Context, m *model.Categoria) error {
	if m.ID == "" {
		m.ID = identifier.NewDocumentID()
	}
	cloned := *m
	r.categorias[m.ID] = &cloned
	return nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context) ([]model.Categoria, error) {
	out := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id string) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, repository.ErrNoDocumento
	}
	cloned := *c
	return &cloned, nil
}

func (r *stubCategoriaRepo) ObtenerPorIDs(_ context.Context, ids []string) ([]model.Categoria, error) {
	out := make([]model.Categoria, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.categorias[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoriaRepo) Existe(_ context.Context, id string) (bool, error) {
	_, ok := r.categorias[id]
	return ok, nil
}

func (r *stubCategoriaRepo) Actualizar(_ context.Context, m *model.Categoria) error {
	if _, ok := r.categorias[m.ID]; !ok {
		return repository.ErrNoDocumento
	}
	cloned := *m
	r.categorias[m.ID] = &cloned
	return nil
}

func (r *stubCategoriaRepo) Eliminar(_ context.Context, id string) error {
	delete(r.categorias, id)
	return nil
}

func (r *stubCategoriaRepo) Contar(_ context.Context) (int64, error) {
	return int64(len(r.categorias)), nil
}

type stubPlatoRepo struct {
	platos     map[string]*model.Plato
	listarCons []bool // eager flags seen by Listar
}

func newStubPlatoRepo() *stubPlatoRepo {
	return &stubPlatoRepo{platos: make(map[string]*model.Plato)}
}

func (r *stubPlatoRepo) Crear(_ context.Context, m *model.Plato) error {
	if m.ID == "" {
		m.ID = identifier.NewDocumentID()
	}
	cloned := *m
	r.platos[m.ID] = &cloned
	return nil
}

func (r *stubPlatoRepo) Listar(_ context.Context, eager bool) ([]model.Plato, error) {
	r.listarCons = append(r.listarCons, eager)
	out := make([]model.Plato, 0, len(r.platos))
	for _, p := range r.platos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPlatoRepo) ObtenerPorID(_ context.Context, id string, _ bool) (*model.Plato, error) {
	p, ok := r.platos[id]
	if !ok {
		return nil, repository.ErrNoDocumento
	}
	cloned := *p
	return &cloned, nil
}

func (r *stubPlatoRepo) Existe(_ context.Context, id string) (bool, error) {
	_, ok := r.platos[id]
	return ok, nil
}

func (r *stubPlatoRepo) Actualizar(_ context.Context, m *model.Plato) error {
	if _, ok := r.platos[m.ID]; !ok {
		return repository.ErrNoDocumento
	}
	cloned := *m
	r.platos[m.ID] = &cloned
	return nil
}

func (r *stubPlatoRepo) Eliminar(_ context.Context, id string) error {
	delete(r.platos, id)
	return nil
}

func (r *stubPlatoRepo) Contar(_ context.Context) (int64, error) {
	return int64(len(r.platos)), nil
}

// stubPlatoCache records hits and invalidations in memory.
type stubPlatoCache struct {
	entries        map[string][]dto.PlatoResponse
	invalidaciones int
}

func newStubPlatoCache() *stubPlatoCache {
	return &stubPlatoCache{entries: make(map[string][]dto.PlatoResponse)}
}

func (c *stubPlatoCache) Obtener(_ context.Context, eager bool) ([]dto.PlatoResponse, bool) {
	list, ok := c.entries[platoCacheKey(eager)]
	return list, ok
}

func (c *stubPlatoCache) Guardar(_ context.Context, eager bool, list []dto.PlatoResponse) {
	c.entries[platoCacheKey(eager)] = list
}

func (c *stubPlatoCache) Invalidar(_ context.Context) {
	c.invalidaciones++
	delete(c.entries, platoCacheKey(true))
	delete(c.entries, platoCacheKey(false))
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestPlatoCrearConCategorias(t *testing.T) {
	cats := newStubCategoriaRepo()
	csvc := NewCategoriaService(cats, nil)
	created, err := csvc.Crear(context.Background(), dto.CategoriaRequest{Nombre: "Principales"})
	require.NoError(t, err)

	svc := NewPlatoService(newStubPlatoRepo(), cats, nil)
	resp, err := svc.Crear(context.Background(), dto.PlatoRequest{
		Nombre:     "Milanesa",
		Precio:     decimal.NewFromInt(85),
		Categorias: []dto.DocumentRef{{ID: created.ID}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	require.Len(t, resp.Categorias, 1)
	assert.Equal(t, "Principales", resp.Categorias[0].Nombre)
}

func TestPlatoCrearRechazaCategoriaInexistente(t *testing.T) {
	svc := NewPlatoService(newStubPlatoRepo(), newStubCategoriaRepo(), nil)

	_, err := svc.Crear(context.Background(), dto.PlatoRequest{
		Nombre:     "Milanesa",
		Precio:     decimal.NewFromInt(85),
		Categorias: []dto.DocumentRef{{ID: "no-such"}},
	})
	var alert *apierror.AlertError
	require.ErrorAs(t, err, &alert)
	assert.Equal(t, "constraintviolation", alert.ErrorKey)
}

func TestPlatoCrearRechazaIDPresente(t *testing.T) {
	svc := NewPlatoService(newStubPlatoRepo(), newStubCategoriaRepo(), nil)

	_, err := svc.Crear(context.Background(), dto.PlatoRequest{
		ID:     "ya-tengo-id",
		Nombre: "Milanesa",
		Precio: decimal.NewFromInt(85),
	})
	var alert *apierror.AlertError
	require.ErrorAs(t, err, &alert)
	assert.Equal(t, "idexists", alert.ErrorKey)
}

func TestPlatoListarPropagaEagerload(t *testing.T) {
	repo := newStubPlatoRepo()
	svc := NewPlatoService(repo, newStubCategoriaRepo(), nil)

	_, err := svc.Listar(context.Background(), true)
	require.NoError(t, err)
	_, err = svc.Listar(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false}, repo.listarCons)
}

func TestPlatoCrearColapsaCategoriasRepetidas(t *testing.T) {
	cats := newStubCategoriaRepo()
	created, err := NewCategoriaService(cats, nil).Crear(context.Background(), dto.CategoriaRequest{Nombre: "Principales"})
	require.NoError(t, err)

	svc := NewPlatoService(newStubPlatoRepo(), cats, nil)
	resp, err := svc.Crear(context.Background(), dto.PlatoRequest{
		Nombre: "Milanesa",
		Precio: decimal.NewFromInt(85),
		Categorias: []dto.DocumentRef{
			{ID: created.ID},
			{ID: created.ID},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Categorias, 1)
	assert.Equal(t, created.ID, resp.Categorias[0].ID)
}

func TestPlatoListarUsaCacheYEscrituraLaInvalida(t *testing.T) {
	repo := newStubPlatoRepo()
	cache := newStubPlatoCache()
	svc := NewPlatoService(repo, newStubCategoriaRepo(), cache)

	_, err := svc.Listar(context.Background(), true)
	require.NoError(t, err)
	_, err = svc.Listar(context.Background(), true)
	require.NoError(t, err)
	// Second listing is served from the cache without touching the store.
	assert.Equal(t, []bool{true}, repo.listarCons)

	_, err = svc.Crear(context.Background(), dto.PlatoRequest{Nombre: "Milanesa", Precio: decimal.NewFromInt(85)})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidaciones)

	_, err = svc.Listar(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, repo.listarCons)
}

func TestCategoriaActualizarInvalidaCachePlatos(t *testing.T) {
	cats := newStubCategoriaRepo()
	cache := newStubPlatoCache()
	csvc := NewCategoriaService(cats, cache)

	created, err := csvc.Crear(context.Background(), dto.CategoriaRequest{Nombre: "Principales"})
	require.NoError(t, err)

	// Seed a cached eager listing that embeds the old categoria name.
	cache.Guardar(context.Background(), true, []dto.PlatoResponse{{Nombre: "Milanesa"}})

	_, err = csvc.Actualizar(context.Background(), created.ID, dto.CategoriaRequest{ID: created.ID, Nombre: "Platos fuertes"})
	require.NoError(t, err)
	_, ok := cache.Obtener(context.Background(), true)
	assert.False(t, ok)
}

func TestPlatoActualizarParcialConservaCampos(t *testing.T) {
	repo := newStubPlatoRepo()
	svc := NewPlatoService(repo, newStubCategoriaRepo(), nil)
	desc := "Con papas"
	created, err := svc.Crear(context.Background(), dto.PlatoRequest{
		Nombre: "Milanesa", Descripcion: &desc, Precio: decimal.NewFromInt(85),
	})
	require.NoError(t, err)

	nuevoPrecio := decimal.NewFromInt(95)
	resp, err := svc.ActualizarParcial(context.Background(), created.ID, dto.PlatoPatchRequest{
		ID: created.ID, Precio: &nuevoPrecio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Milanesa", resp.Nombre)
	require.NotNil(t, resp.Descripcion)
	assert.Equal(t, "Con papas", *resp.Descripcion)
	assert.True(t, resp.Precio.Equal(nuevoPrecio))
}
