package repository

import (
	"context"

	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account.
// Sin Update ni Delete: las cuentas solo se crean y se listan.
type AccountRepository interface {
	// Create persiste la cuenta y completa ID y CreatedAt.
	// Devuelve domain.ErrNotFound si el negocio referenciado no existe.
	Create(ctx context.Context, account *entity.Account) error
	// ListByBusiness lista las cuentas del negocio en orden de inserción.
	ListByBusiness(ctx context.Context, businessID int64) ([]*entity.Account, error)
}
