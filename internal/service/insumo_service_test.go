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

type stubInsumoRepo struct {
	insumos map[string]*model.Insumo
}

func newStubInsumoRepo() *stubInsumoRepo {
	return &stubInsumoRepo{insumos: make(map[string]*model.Insumo)}
}

func (r *stubInsumoRepo) Crear(_ context.Context, m *model.Insumo) error {
	if m.ID == "" {
		m.ID = identifier.NewDocumentID()
	}
	cloned := *m
	r.insumos[m.ID] = &cloned
	return nil
}

func (r *stubInsumoRepo) Listar(_ context.Context) ([]model.Insumo, error) {
	out := make([]model.Insumo, 0, len(r.insumos))
	for _, m := range r.insumos {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubInsumoRepo) ObtenerPorID(_ context.Context, id string) (*model.Insumo, error) {
	m, ok := r.insumos[id]
	if !ok {
		return nil, repository.ErrNoDocumento
	}
	cloned := *m
	return &cloned, nil
}

func (r *stubInsumoRepo) Existe(_ context.Context, id string) (bool, error) {
	_, ok := r.insumos[id]
	return ok, nil
}

func (r *stubInsumoRepo) Actualizar(_ context.Context, m *model.Insumo) error {
	if _, ok := r.insumos[m.ID]; !ok {
		return repository.ErrNoDocumento
	}
	cloned := *m
	r.insumos[m.ID] = &cloned
	return nil
}

func (r *stubInsumoRepo) Eliminar(_ context.Context, id string) error {
	delete(r.insumos, id)
	return nil
}

func (r *stubInsumoRepo) Contar(_ context.Context) (int64, error) {
	return int64(len(r.insumos)), nil
}

func TestInsumoCrearVinculaPlato(t *testing.T) {
	platos := newStubPlatoRepo()
	psvc := NewPlatoService(platos, newStubCategoriaRepo(), nil)
	plato, err := psvc.Crear(context.Background(), dto.PlatoRequest{Nombre: "Milanesa", Precio: decimal.NewFromInt(85)})
	require.NoError(t, err)

	svc := NewInsumoService(newStubInsumoRepo(), platos, nil)
	resp, err := svc.Crear(context.Background(), dto.InsumoRequest{
		Nombre: "Carne",
		Plato:  &dto.DocumentRef{ID: plato.ID},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Plato)
	assert.Equal(t, plato.ID, resp.Plato.ID)
}

func TestInsumoCrearRechazaPlatoInexistente(t *testing.T) {
	svc := NewInsumoService(newStubInsumoRepo(), newStubPlatoRepo(), nil)

	_, err := svc.Crear(context.Background(), dto.InsumoRequest{
		Nombre: "Carne",
		Plato:  &dto.DocumentRef{ID: "no-such"},
	})
	var alert *apierror.AlertError
	require.ErrorAs(t, err, &alert)
	assert.Equal(t, "constraintviolation", alert.ErrorKey)
}

func TestInsumoCrearInvalidaCachePlatos(t *testing.T) {
	cache := newStubPlatoCache()
	svc := NewInsumoService(newStubInsumoRepo(), newStubPlatoRepo(), cache)

	// Seed a cached eager listing that embeds insumo fields.
	cache.Guardar(context.Background(), true, []dto.PlatoResponse{{Nombre: "Milanesa"}})

	_, err := svc.Crear(context.Background(), dto.InsumoRequest{Nombre: "Carne"})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidaciones)
	_, ok := cache.Obtener(context.Background(), true)
	assert.False(t, ok)
}
