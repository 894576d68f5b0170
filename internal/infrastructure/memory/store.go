package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Cuentas-api/internal/application/ports"
	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
)

// Store es una implementación en memoria de los repositorios y del TxRunner.
// Es segura para uso concurrente y pensada para tests y desarrollo local
// (STORAGE_DRIVER=memory). Replica las restricciones del esquema SQL:
// nombre obligatorio, FK de cuentas a negocios con borrado en cascada y saldo NUMERIC(18,2).
type Store struct {
	mu  sync.Mutex
	st  state
	now func() time.Time
}

type state struct {
	nextBusinessID int64
	nextAccountID  int64
	businesses     []entity.Business
	accounts       []entity.Account
}

var _ ports.TxRunner = (*Store)(nil)

// New crea un almacén vacío.
func New() *Store {
	return &Store{
		st:  state{nextBusinessID: 1, nextAccountID: 1},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Businesses devuelve el repositorio de negocios fuera de transacción.
func (s *Store) Businesses() repository.BusinessRepository {
	return &businessRepo{s: s}
}

// Accounts devuelve el repositorio de cuentas fuera de transacción.
func (s *Store) Accounts() repository.AccountRepository {
	return &accountRepo{s: s}
}

// Run ejecuta fn con el almacén bloqueado. Si fn devuelve error se restaura el estado previo.
func (s *Store) Run(ctx context.Context, fn func(
	businessRepo repository.BusinessRepository,
	accountRepo repository.AccountRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(&businessRepo{s: s, inTx: true}, &accountRepo{s: s, inTx: true}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (st state) clone() state {
	out := st
	out.businesses = append([]entity.Business(nil), st.businesses...)
	out.accounts = append([]entity.Account(nil), st.accounts...)
	return out
}

// lock toma el mutex salvo dentro de Run, que ya lo tiene.
func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// Negocios ----------------------------------------------------------------------

type businessRepo struct {
	s    *Store
	inTx bool
}

func (r *businessRepo) Create(ctx context.Context, business *entity.Business) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if business.Name == "" {
		return domain.ErrInvalidInput
	}
	defer r.s.lock(r.inTx)()

	st := &r.s.st
	business.ID = st.nextBusinessID
	business.CreatedAt = r.s.now()
	st.nextBusinessID++
	st.businesses = append(st.businesses, *business)
	return nil
}

func (r *businessRepo) ListByOwner(ctx context.Context, userID string) ([]*entity.Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.s.lock(r.inTx)()

	var out []*entity.Business
	for _, b := range r.s.st.businesses {
		if b.UserID == userID {
			b := b
			out = append(out, &b)
		}
	}
	return out, nil
}

func (r *businessRepo) CountOwned(ctx context.Context, businessID int64, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	defer r.s.lock(r.inTx)()

	n := 0
	for _, b := range r.s.st.businesses {
		if b.ID == businessID && b.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *businessRepo) Delete(ctx context.Context, businessID int64, userID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	defer r.s.lock(r.inTx)()

	st := &r.s.st
	var affected int64
	kept := st.businesses[:0]
	for _, b := range st.businesses {
		if b.ID == businessID && b.UserID == userID {
			affected++
			continue
		}
		kept = append(kept, b)
	}
	st.businesses = kept
	if affected > 0 {
		// ON DELETE CASCADE
		accounts := st.accounts[:0]
		for _, a := range st.accounts {
			if a.BusinessID != businessID {
				accounts = append(accounts, a)
			}
		}
		st.accounts = accounts
	}
	return affected, nil
}

// Cuentas -----------------------------------------------------------------------

type accountRepo struct {
	s    *Store
	inTx bool
}

func (r *accountRepo) Create(ctx context.Context, account *entity.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if account.Name == "" {
		return domain.ErrInvalidInput
	}
	if _, ok := entity.ParseAccountType(string(account.Type)); !ok {
		return domain.ErrInvalidInput
	}
	if !entity.ValidOpeningBalance(account.OpeningBalance) {
		return domain.ErrInvalidInput
	}
	defer r.s.lock(r.inTx)()

	st := &r.s.st
	if !st.hasBusiness(account.BusinessID) {
		return domain.ErrNotFound
	}
	account.ID = st.nextAccountID
	account.OpeningBalance = account.OpeningBalance.Round(2)
	account.CreatedAt = r.s.now()
	st.nextAccountID++
	st.accounts = append(st.accounts, *account)
	return nil
}

func (r *accountRepo) ListByBusiness(ctx context.Context, businessID int64) ([]*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.s.lock(r.inTx)()

	var out []*entity.Account
	for _, a := range r.s.st.accounts {
		if a.BusinessID == businessID {
			a := a
			out = append(out, &a)
		}
	}
	return out, nil
}

func (st *state) hasBusiness(id int64) bool {
	for _, b := range st.businesses {
		if b.ID == id {
			return true
		}
	}
	return false
}
