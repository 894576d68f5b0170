package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una nueva cuenta. El saldo devuelto es el almacenado (NUMERIC(18,2)).
func (r *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (business_id, name, address, phone, type, opening_balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, opening_balance, created_at`
	err := r.q.QueryRow(ctx, query,
		account.BusinessID, account.Name, account.Address, account.Phone,
		string(account.Type), account.OpeningBalance,
	).Scan(&account.ID, &account.OpeningBalance, &account.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		if isCheckViolation(err) || isNumericOutOfRange(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// ListByBusiness lista las cuentas del negocio en orden de inserción.
func (r *AccountRepo) ListByBusiness(ctx context.Context, businessID int64) ([]*entity.Account, error) {
	query := `
		SELECT id, business_id, name, address, phone, type, opening_balance, created_at
		FROM accounts WHERE business_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		var accountType string
		if err := rows.Scan(&a.ID, &a.BusinessID, &a.Name, &a.Address, &a.Phone, &accountType, &a.OpeningBalance, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		a.Type = entity.AccountType(accountType)
		list = append(list, &a)
	}
	return list, rows.Err()
}
