package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/internal/domain/entity"
	"github.com/jhoicas/Cuentas-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación de BusinessRepository (usable con pool o tx).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create persiste un nuevo negocio y completa ID y CreatedAt.
func (r *BusinessRepo) Create(ctx context.Context, business *entity.Business) error {
	query := `
		INSERT INTO businesses (name, address, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, business.Name, business.Address, business.UserID).
		Scan(&business.ID, &business.CreatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// ListByOwner lista los negocios del usuario en orden de creación.
func (r *BusinessRepo) ListByOwner(ctx context.Context, userID string) ([]*entity.Business, error) {
	query := `
		SELECT id, name, address, user_id, created_at
		FROM businesses WHERE user_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Business
	for rows.Next() {
		var b entity.Business
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.UserID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// CountOwned cuenta los negocios con ese id y dueño.
// Dentro de una transacción bloquea la fila (FOR SHARE) hasta el commit, de modo que
// un borrado concurrente no puede colarse entre la verificación y la mutación.
// FOR SHARE no se admite junto a un agregado, por eso se cuenta sobre una subconsulta.
func (r *BusinessRepo) CountOwned(ctx context.Context, businessID int64, userID string) (int, error) {
	const query = `
		SELECT count(*) FROM (
			SELECT 1 FROM businesses
			 WHERE id      = $1
			   AND user_id = $2
			   FOR SHARE
		) AS owned`
	var n int64
	if err := r.q.QueryRow(ctx, query, businessID, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count owned business: %w", err)
	}
	return int(n), nil
}

// Delete elimina el negocio del dueño y devuelve las filas afectadas.
// Las cuentas dependientes las elimina la FK (ON DELETE CASCADE).
func (r *BusinessRepo) Delete(ctx context.Context, businessID int64, userID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM businesses WHERE id = $1 AND user_id = $2`, businessID, userID)
	if err != nil {
		return 0, fmt.Errorf("delete business: %w", err)
	}
	return cmd.RowsAffected(), nil
}
