package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/domain"
)

func balance(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Escenario: u1 crea la cuenta Cash bajo Acme y solo la ve con el negocio verificado.
func TestAccount_EscenarioCash(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	acme, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: "Acme", Address: "1 Main St"})
	require.NoError(t, err)
	other, err := f.businesses.Create(ctx, "u2", dto.CreateBusinessRequest{Name: "Otro"})
	require.NoError(t, err)

	created, err := f.accounts.Create(ctx, "u1", acme.ID, dto.CreateAccountRequest{
		Name:           "Cash",
		Type:           "ASSET",
		OpeningBalance: balance("100"),
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	list, err := f.accounts.List(ctx, "u1", acme.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Cash", list[0].Name)
	assert.Equal(t, "ASSET", list[0].Type)
	assert.True(t, decimal.NewFromInt(100).Equal(list[0].OpeningBalance))

	_, err = f.accounts.List(ctx, "u1", other.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAccount_CreateNegocioNoVerificado_NoInserta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = f.accounts.Create(ctx, "u2", acme.ID, dto.CreateAccountRequest{Name: "Cash", Type: "ASSET"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.accounts.Create(ctx, "u1", 999, dto.CreateAccountRequest{Name: "Cash", Type: "ASSET"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := f.store.Accounts().ListByBusiness(ctx, acme.ID)
	require.NoError(t, err)
	assert.Empty(t, list, "no debe insertarse ninguna cuenta")
}

func TestAccount_CreateValidacion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: "Acme"})
	require.NoError(t, err)

	cases := map[string]dto.CreateAccountRequest{
		"sin nombre":     {Type: "ASSET"},
		"sin tipo":       {Name: "Cash"},
		"tipo inválido":  {Name: "Cash", Type: "LIABILITY"},
		"nombre espacio": {Name: "   ", Type: "ASSET"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.accounts.Create(ctx, "u1", acme.ID, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	list, err := f.accounts.List(ctx, "u1", acme.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAccount_CreateTipoSinDistinguirMayusculasYSaldoPorDefecto(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: "Acme"})
	require.NoError(t, err)

	created, err := f.accounts.Create(ctx, "u1", acme.ID, dto.CreateAccountRequest{
		Name:  "Proveedor X",
		Type:  " supplier ",
		Phone: "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, "SUPPLIER", created.Type)
	assert.True(t, created.OpeningBalance.IsZero(), "sin openingBalance el saldo es 0")
	assert.Equal(t, "555-0100", created.Phone)
	assert.Equal(t, acme.ID, created.BusinessID)
}

func TestAccount_ListSoloDelNegocioEnOrden(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: "Acme"})
	require.NoError(t, err)
	beta, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: "Beta"})
	require.NoError(t, err)

	for _, name := range []string{"Uno", "Dos", "Tres"} {
		_, err := f.accounts.Create(ctx, "u1", acme.ID, dto.CreateAccountRequest{Name: name, Type: "CUSTOMER"})
		require.NoError(t, err)
	}
	_, err = f.accounts.Create(ctx, "u1", beta.ID, dto.CreateAccountRequest{Name: "Ajena", Type: "EXPENSE"})
	require.NoError(t, err)

	list, err := f.accounts.List(ctx, "u1", acme.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, name := range []string{"Uno", "Dos", "Tres"} {
		assert.Equal(t, name, list[i].Name)
		assert.Equal(t, acme.ID, list[i].BusinessID)
	}
}

func TestAccount_ListNegocioSinCuentas_SliceVacio(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: "Acme"})
	require.NoError(t, err)

	list, err := f.accounts.List(ctx, "u1", acme.ID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestAccount_BorrarNegocioEliminaSusCuentas(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: "Acme"})
	require.NoError(t, err)
	_, err = f.accounts.Create(ctx, "u1", acme.ID, dto.CreateAccountRequest{Name: "Cash", Type: "ASSET"})
	require.NoError(t, err)

	deleted, err := f.businesses.Delete(ctx, "u1", acme.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	list, err := f.store.Accounts().ListByBusiness(ctx, acme.ID)
	require.NoError(t, err)
	assert.Empty(t, list, "ninguna cuenta puede quedar huérfana")
}

func TestAccount_CreateSaldoFueraDeNumeric18_2(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme, err := f.businesses.Create(ctx, "u1", dto.CreateBusinessRequest{Name: "Acme"})
	require.NoError(t, err)

	for _, amount := range []string{"1e30", "10000000000000000", "-10000000000000000", "9999999999999999.995"} {
		_, err := f.accounts.Create(ctx, "u1", acme.ID, dto.CreateAccountRequest{
			Name: "Cash", Type: "ASSET", OpeningBalance: balance(amount),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, amount)
	}

	list, err := f.accounts.List(ctx, "u1", acme.ID)
	require.NoError(t, err)
	assert.Empty(t, list, "ningún saldo fuera de rango debe insertarse")

	created, err := f.accounts.Create(ctx, "u1", acme.ID, dto.CreateAccountRequest{
		Name: "Tope", Type: "ASSET", OpeningBalance: balance("-9999999999999999.99"),
	})
	require.NoError(t, err, "el máximo de NUMERIC(18,2) es válido")
	assert.True(t, decimal.RequireFromString("-9999999999999999.99").Equal(created.OpeningBalance))
}
