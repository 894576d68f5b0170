package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/application/ports"
	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// AccountUseCase casos de uso para cuentas de un negocio verificado.
// Solo List y Create: las cuentas no se actualizan ni se borran por diseño del producto.
type AccountUseCase struct {
	repo     repository.AccountRepository
	tx       ports.TxRunner
	verifier *OwnershipVerifier
	timeout  time.Duration
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.AccountRepository, tx ports.TxRunner, verifier *OwnershipVerifier, timeout time.Duration) *AccountUseCase {
	return &AccountUseCase{repo: repo, tx: tx, verifier: verifier, timeout: storeTimeout(timeout)}
}

// List lista las cuentas del negocio en orden de inserción.
// Devuelve domain.ErrForbidden si el negocio no pertenece a userID.
func (uc *AccountUseCase) List(ctx context.Context, userID string, businessID int64) ([]dto.AccountResponse, error) {
	var list []*entity.Account
	err := storeCall(ctx, uc.timeout, "account.list", func(ctx context.Context) error {
		ok, err := uc.verifier.Verify(ctx, userID, businessID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrForbidden
		}
		list, err = uc.repo.ListByBusiness(ctx, businessID)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		out = append(out, entityToAccountResponse(a))
	}
	return out, nil
}

// Create crea una cuenta bajo businessID.
// domain.ErrInvalidInput si falta el nombre, el tipo no es válido o el saldo no cabe en NUMERIC(18,2);
// domain.ErrForbidden si el negocio no pertenece a userID. En ambos casos no se inserta nada.
func (uc *AccountUseCase) Create(ctx context.Context, userID string, businessID int64, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	name := normalizeText(in.Name)
	accountType, validType := entity.ParseAccountType(in.Type)
	if userID == "" || businessID <= 0 || name == "" || !validType {
		return nil, domain.ErrInvalidInput
	}
	balance := decimal.Zero
	if in.OpeningBalance != nil {
		balance = *in.OpeningBalance
	}
	if !entity.ValidOpeningBalance(balance) {
		return nil, domain.ErrInvalidInput
	}
	account := &entity.Account{
		BusinessID:     businessID,
		Name:           name,
		Address:        normalizeText(in.Address),
		Phone:          normalizeText(in.Phone),
		Type:           accountType,
		OpeningBalance: balance,
	}

	err := storeCall(ctx, uc.timeout, "account.create", func(ctx context.Context) error {
		return uc.tx.Run(ctx, func(businessRepo repository.BusinessRepository, accountRepo repository.AccountRepository) error {
			ok, err := uc.verifier.VerifyWith(ctx, businessRepo, userID, businessID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrForbidden
			}
			return accountRepo.Create(ctx, account)
		})
	})
	if err != nil {
		return nil, err
	}
	out := entityToAccountResponse(account)
	return &out, nil
}

func entityToAccountResponse(a *entity.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:             a.ID,
		BusinessID:     a.BusinessID,
		Name:           a.Name,
		Address:        a.Address,
		Phone:          a.Phone,
		Type:           string(a.Type),
		OpeningBalance: a.OpeningBalance,
		CreatedAt:      a.CreatedAt,
	}
}
