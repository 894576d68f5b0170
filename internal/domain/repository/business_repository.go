package repository

import (
	"context"

	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para Business (DIP).
// La implementación vive en infrastructure.
type BusinessRepository interface {
	// Create persiste el negocio y completa ID y CreatedAt.
	Create(ctx context.Context, business *entity.Business) error
	ListByOwner(ctx context.Context, userID string) ([]*entity.Business, error)
	// CountOwned cuenta los negocios con ese id cuyo dueño es userID (0 o 1).
	CountOwned(ctx context.Context, businessID int64, userID string) (int, error)
	// Delete borra el negocio del dueño y devuelve las filas afectadas.
	Delete(ctx context.Context, businessID int64, userID string) (int64, error)
}
