package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/application/usecase"
	"github.com/jhoicas/Cuentas-api/internal/domain"
)

func TestBusiness_CreateYList(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: "  Acme ", Address: "1 Main St"})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, "Acme", created.Name, "el nombre se guarda sin espacios")
	assert.Equal(t, "u1", created.UserID)

	list, err := f.businesses.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Name)
	assert.Equal(t, "1 Main St", list[0].Address)
}

func TestBusiness_ListSinNegocios_SliceVacio(t *testing.T) {
	f := newFixture()
	list, err := f.businesses.List(context.Background(), "nadie")
	require.NoError(t, err)
	assert.NotNil(t, list, "debe serializarse como [] y no como null")
	assert.Empty(t, list)
}

func TestBusiness_ListSinUsuario_ErrInvalidInput(t *testing.T) {
	f := newFixture()
	_, err := f.businesses.List(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBusiness_CreateNombreVacio_NoCreaFila(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for _, name := range []string{"", "   "} {
		_, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: name, Address: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	list, err := f.businesses.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBusiness_CreateNormalizaNFC(t *testing.T) {
	f := newFixture()
	// "Café" con la tilde como carácter combinado (U+0301).
	created, err := f.businesses.Create(context.Background(), "u1", dto.CreateBusinessRequest{Name: "Cafe\u0301"})
	require.NoError(t, err)
	assert.Equal(t, "Caf\u00e9", created.Name)
}

func TestBusiness_DeleteNoDueno_ErrForbiddenYFilaIntacta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: "Acme"})
	require.NoError(t, err)

	deleted, err := f.businesses.Delete(ctx, "u2", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.False(t, deleted)

	list, err := f.businesses.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1, "el negocio no debe borrarse")
}

func TestBusiness_DeleteDueno_YSegundoIntento(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: "Acme"})
	require.NoError(t, err)

	deleted, err := f.businesses.Delete(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	list, err := f.businesses.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)

	// Segundo intento: ya no es del usuario; falla de autorización, no pánico.
	deleted, err = f.businesses.Delete(ctx, "u1", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.False(t, deleted)
}

func TestBusiness_FalloDelAlmacen_SePropaga(t *testing.T) {
	repo := failingBusinessRepo{}
	uc := usecase.NewBusinessUseCase(repo, nil, usecase.NewOwnershipVerifier(repo), testTimeout)

	_, err := uc.List(context.Background(), "u1")
	assert.ErrorIs(t, err, errStoreDown)

	_, err = uc.Create(context.Background(), "u1", dto.CreateBusinessRequest{Name: "Acme"})
	assert.ErrorIs(t, err, errStoreDown)
}

// Escenario: u1 crea Acme; u2 no ve nada y no puede borrarlo.
func TestBusiness_EscenarioDosUsuarios(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	acme, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: "Acme", Address: "1 Main St"})
	require.NoError(t, err)

	list, err := f.businesses.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Name)

	list, err = f.businesses.List(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, list)

	deleted, err := f.businesses.Delete(ctx, "u2", acme.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.False(t, deleted)
}
