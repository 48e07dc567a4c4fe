package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/davidmr/almacen-api/internal/domain/entity"
	"github.com/davidmr/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del historial de movimientos sobre PostgreSQL
// (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. Los movimientos nunca se actualizan.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, user_id, direction, quantity, moved_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.UserID,
		movement.Direction, movement.Quantity, movement.MovedAt, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByProduct lista movimientos de un producto, del más reciente al más antiguo.
func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, product_id, user_id, direction, quantity, moved_at, created_at
		FROM movements WHERE product_id = $1
		ORDER BY moved_at DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.UserID, &m.Direction,
			&m.Quantity, &m.MovedAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// DeleteByProduct elimina el historial de un producto (limpieza en cascada al borrarlo).
func (r *MovementRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}
	return nil
}
