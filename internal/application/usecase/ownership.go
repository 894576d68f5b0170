package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
	"github.com/jhoicas/Cuentas-api/pkg/metrics"
)

// OwnershipVerifier confirma que un negocio pertenece a un usuario.
// Es una lectura pura: debe llamarse antes de cualquier operación sobre cuentas
// y antes de borrar un negocio.
type OwnershipVerifier struct {
	repo repository.BusinessRepository
}

// NewOwnershipVerifier construye el verificador sobre el repositorio compartido (pool).
func NewOwnershipVerifier(repo repository.BusinessRepository) *OwnershipVerifier {
	return &OwnershipVerifier{repo: repo}
}

// Verify informa si businessID pertenece a userID.
// Un fallo del almacén se devuelve como error, nunca como verificado.
func (v *OwnershipVerifier) Verify(ctx context.Context, userID string, businessID int64) (bool, error) {
	return v.VerifyWith(ctx, v.repo, userID, businessID)
}

// VerifyWith hace la misma comprobación con un repositorio atado a una transacción,
// de modo que la verificación y la mutación siguiente compartan la tx.
func (v *OwnershipVerifier) VerifyWith(ctx context.Context, repo repository.BusinessRepository, userID string, businessID int64) (bool, error) {
	if userID == "" || businessID <= 0 {
		return false, domain.ErrInvalidInput
	}
	n, err := repo.CountOwned(ctx, businessID, userID)
	if err != nil {
		metrics.RecordOwnershipCheck(metrics.OwnershipError)
		return false, fmt.Errorf("verificar propiedad del negocio %d: %w", businessID, err)
	}
	if n > 0 {
		metrics.RecordOwnershipCheck(metrics.OwnershipVerified)
		return true, nil
	}
	metrics.RecordOwnershipCheck(metrics.OwnershipRejected)
	return false, nil
}
