package ports

import (
	"context"

	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace rollback; si no, commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		businessRepo repository.BusinessRepository,
		accountRepo repository.AccountRepository,
	) error) error
}
