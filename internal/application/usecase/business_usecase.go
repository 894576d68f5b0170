package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/application/ports"
	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
)

// BusinessUseCase aplica reglas de negocio para negocios, siempre acotados a su dueño.
type BusinessUseCase struct {
	repo     repository.BusinessRepository
	tx       ports.TxRunner
	verifier *OwnershipVerifier
	timeout  time.Duration
}

// NewBusinessUseCase construye el caso de uso. timeout acota cada operación contra el almacén.
func NewBusinessUseCase(repo repository.BusinessRepository, tx ports.TxRunner, verifier *OwnershipVerifier, timeout time.Duration) *BusinessUseCase {
	return &BusinessUseCase{repo: repo, tx: tx, verifier: verifier, timeout: storeTimeout(timeout)}
}

// List devuelve los negocios de userID; slice vacío si no tiene ninguno.
func (uc *BusinessUseCase) List(ctx context.Context, userID string) ([]dto.BusinessResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	var list []*entity.Business
	err := storeCall(ctx, uc.timeout, "business.list", func(ctx context.Context) error {
		var err error
		list, err = uc.repo.ListByOwner(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		out = append(out, entityToBusinessResponse(b))
	}
	return out, nil
}

// Create crea un negocio cuyo dueño es userID. Devuelve domain.ErrInvalidInput si falta el nombre.
func (uc *BusinessUseCase) Create(ctx context.Context, userID string, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	name := normalizeText(in.Name)
	if userID == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	business := &entity.Business{
		Name:    name,
		Address: normalizeText(in.Address),
		UserID:  userID,
	}
	err := storeCall(ctx, uc.timeout, "business.create", func(ctx context.Context) error {
		return uc.repo.Create(ctx, business)
	})
	if err != nil {
		return nil, err
	}
	out := entityToBusinessResponse(business)
	return &out, nil
}

// Verify informa si businessID pertenece a userID.
func (uc *BusinessUseCase) Verify(ctx context.Context, userID string, businessID int64) (bool, error) {
	var ok bool
	err := storeCall(ctx, uc.timeout, "business.verify", func(ctx context.Context) error {
		var err error
		ok, err = uc.verifier.Verify(ctx, userID, businessID)
		return err
	})
	return ok, err
}

// Delete borra el negocio si pertenece a userID.
// Verificación y borrado corren en la misma transacción; si userID no es el dueño
// devuelve domain.ErrForbidden sin borrar nada. true solo si se borró exactamente una fila.
func (uc *BusinessUseCase) Delete(ctx context.Context, userID string, businessID int64) (bool, error) {
	var deleted bool
	err := storeCall(ctx, uc.timeout, "business.delete", func(ctx context.Context) error {
		return uc.tx.Run(ctx, func(businessRepo repository.BusinessRepository, _ repository.AccountRepository) error {
			ok, err := uc.verifier.VerifyWith(ctx, businessRepo, userID, businessID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrForbidden
			}
			n, err := businessRepo.Delete(ctx, businessID, userID)
			if err != nil {
				return err
			}
			deleted = n == 1
			return nil
		})
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func entityToBusinessResponse(b *entity.Business) dto.BusinessResponse {
	return dto.BusinessResponse{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		UserID:    b.UserID,
		CreatedAt: b.CreatedAt,
	}
}
