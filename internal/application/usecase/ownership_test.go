package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/application/usecase"
	"github.com/jhoicas/Cuentas-api/internal/domain"
)

func TestOwnership_DuenoVerificadoOtroNo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: "Acme"})
	require.NoError(t, err)

	ok, err := f.verifier.Verify(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.True(t, ok, "el dueño debe quedar verificado")

	ok, err = f.verifier.Verify(ctx, "u2", created.ID)
	require.NoError(t, err)
	assert.False(t, ok, "otro usuario no debe quedar verificado")
}

func TestOwnership_NegocioInexistente(t *testing.T) {
	f := newFixture()
	ok, err := f.verifier.Verify(context.Background(), "u1", 12345)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOwnership_EntradaInvalida(t *testing.T) {
	f := newFixture()
	_, err := f.verifier.Verify(context.Background(), "", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.verifier.Verify(context.Background(), "u1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOwnership_FalloDelAlmacen_NoVerifica(t *testing.T) {
	verifier := usecase.NewOwnershipVerifier(failingBusinessRepo{})
	ok, err := verifier.Verify(context.Background(), "u1", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
	assert.False(t, ok, "un fallo del almacén nunca cuenta como verificado")
}

func TestOwnership_AlmacenColgado_Timeout(t *testing.T) {
	repo := blockingBusinessRepo{}
	verifier := usecase.NewOwnershipVerifier(repo)
	uc := usecase.NewBusinessUseCase(repo, nil, verifier, 50*time.Millisecond)

	start := time.Now()
	ok, err := uc.Verify(context.Background(), "u1", 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, ok)
	assert.Less(t, time.Since(start), time.Second, "el timeout debe cortar la espera")
}
