package usecase_test

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Cuentas-api/internal/application/usecase"
	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
	"github.com/jhoicas/Cuentas-api/internal/infrastructure/memory"
)

const testTimeout = 2 * time.Second

// fixture agrupa los casos de uso construidos sobre un almacén en memoria.
type fixture struct {
	store      *memory.Store
	verifier   *usecase.OwnershipVerifier
	businesses *usecase.BusinessUseCase
	accounts   *usecase.AccountUseCase
}

func newFixture() *fixture {
	store := memory.New()
	verifier := usecase.NewOwnershipVerifier(store.Businesses())
	return &fixture{
		store:      store,
		verifier:   verifier,
		businesses: usecase.NewBusinessUseCase(store.Businesses(), store, verifier, testTimeout),
		accounts:   usecase.NewAccountUseCase(store.Accounts(), store, verifier, testTimeout),
	}
}

var errStoreDown = errors.New("conexión rechazada")

// failingBusinessRepo simula un almacén caído.
type failingBusinessRepo struct{}

func (failingBusinessRepo) Create(context.Context, *entity.Business) error { return errStoreDown }

func (failingBusinessRepo) ListByOwner(context.Context, string) ([]*entity.Business, error) {
	return nil, errStoreDown
}

func (failingBusinessRepo) CountOwned(context.Context, int64, string) (int, error) {
	return 0, errStoreDown
}

func (failingBusinessRepo) Delete(context.Context, int64, string) (int64, error) {
	return 0, errStoreDown
}

// blockingBusinessRepo no responde hasta que se cancela el contexto.
type blockingBusinessRepo struct{ failingBusinessRepo }

func (blockingBusinessRepo) CountOwned(ctx context.Context, _ int64, _ string) (int, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}
